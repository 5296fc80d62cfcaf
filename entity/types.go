// Package entity defines the value taxonomy and the record model populated by
// the FGD parser.
package entity

import (
	"fmt"
	"strings"
)

// ValueType enumerates the types a keyvalue or IO definition can carry.
type ValueType int

const (
	// Special cases:
	ValVoid       ValueType = iota // nothing
	ValChoices                     // preset value list, as strings
	ValSpawnFlags                  // binary flag values

	// Simple values
	ValString
	ValBool
	ValInt
	ValFloat
	ValVec    // offset or the like
	ValAngles // rotation

	// String targetname values (need fixups)
	ValTargDest       // targetname of another ent
	ValTargDestClass  // above, plus classnames
	ValTargSource     // the 'targetname' keyvalue
	ValTargNPCClass   // targetnames filtered to NPC ents
	ValTargPointClass // targetnames filtered to point entities
	ValTargFilterName // targetnames of filters
	ValTargNodeDest   // name of a node
	ValTargNodeSource // name of us

	// Strings, no fixups needed
	ValStrScene    // VCD files
	ValStrSound    // WAV and soundscripts
	ValStrParticle // particle systems
	ValStrSprite   // sprite materials
	ValStrDecal    // decal materials
	ValStrMaterial // materials
	ValStrModel    // models
	ValStrVScript  // list of vscripts

	// More complex
	ValAngleNegPitch // inverse pitch of 'angles'
	ValVecLine       // absolute vector, line drawn from origin to point
	ValVecOrigin     // used for the 'origin' keyvalue
	ValVecAxis
	ValColor1   // RGB 0-1 plus extra
	ValColor255 // RGB 0-255 plus extra
	ValSideList // space-separated list of sides

	// Instances
	ValInstFile   // file of func_instance
	ValInstVarDef // $fixup definition
	ValInstVarRep // $fixup usage
)

var valueTypeTags = map[ValueType]string{
	ValVoid:           "void",
	ValChoices:        "choices",
	ValSpawnFlags:     "flags",
	ValString:         "string",
	ValBool:           "boolean",
	ValInt:            "integer",
	ValFloat:          "float",
	ValVec:            "vector",
	ValAngles:         "angle",
	ValTargDest:       "target_destination",
	ValTargDestClass:  "target_name_or_class",
	ValTargSource:     "target_source",
	ValTargNPCClass:   "npcclass",
	ValTargPointClass: "pointentityclass",
	ValTargFilterName: "filterclass",
	ValTargNodeDest:   "node_dest",
	ValTargNodeSource: "node_id",
	ValStrScene:       "scene",
	ValStrSound:       "sound",
	ValStrParticle:    "particlesystem",
	ValStrSprite:      "sprite",
	ValStrDecal:       "decal",
	ValStrMaterial:    "material",
	ValStrModel:       "studio",
	ValStrVScript:     "scriptlist",
	ValAngleNegPitch:  "angle_negative_pitch",
	ValVecLine:        "vecline",
	ValVecOrigin:      "origin",
	ValVecAxis:        "axis",
	ValColor1:         "color1",
	ValColor255:       "color255",
	ValSideList:       "sidelist",
	ValInstFile:       "instance_file",
	ValInstVarDef:     "instance_parm",
	ValInstVarRep:     "instance_variable",
}

var valueTypeByTag = map[string]ValueType{}

func init() {
	for typ, tag := range valueTypeTags {
		valueTypeByTag[tag] = typ
	}
	// These two tags are aliases pointing to the same types.
	valueTypeByTag["bool"] = ValBool
	valueTypeByTag["int"] = ValInt
}

// ValueTypeError reports a tag not naming any known value type.
type ValueTypeError struct {
	Tag string
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("unknown keyvalue type %q", e.Tag)
}

// LookupValueType resolves a case-folded source tag to its value type.
func LookupValueType(tag string) (ValueType, error) {
	typ, has := valueTypeByTag[strings.ToLower(tag)]
	if !has {
		return ValVoid, &ValueTypeError{Tag: tag}
	}
	return typ, nil
}

// Tag returns the canonical lowercase source tag.
func (v ValueType) Tag() string {
	return valueTypeTags[v]
}

func (v ValueType) String() string {
	return v.Tag()
}

// HasList reports whether the type carries a bracketed value list.
// True only for choices and spawnflags.
func (v ValueType) HasList() bool {
	return v == ValChoices || v == ValSpawnFlags
}

// Class enumerates entity class categories, selected by the @-prefixed
// keyword opening an entity definition.
type Class int

const (
	ClassBase   Class = iota // not an entity, others inherit from this
	ClassPoint               // point entity
	ClassBrush               // brush entity, can't have 'model'
	ClassRopes               // used for move_rope etc
	ClassTrack               // used for path_track etc
	ClassFilter              // used for filters
	ClassNPC                 // an NPC
)

var classTags = map[Class]string{
	ClassBase:   "baseclass",
	ClassPoint:  "pointclass",
	ClassBrush:  "solidclass",
	ClassRopes:  "keyframeclass",
	ClassTrack:  "moveclass",
	ClassFilter: "filterclass",
	ClassNPC:    "npcclass",
}

var classByTag = map[string]Class{}

func init() {
	for class, tag := range classTags {
		classByTag[tag] = class
	}
}

// LookupClass resolves a case-folded header keyword (without the @ marker).
func LookupClass(tag string) (Class, bool) {
	class, has := classByTag[strings.ToLower(tag)]
	return class, has
}

func (c Class) Tag() string {
	return classTags[c]
}

func (c Class) String() string {
	return c.Tag()
}

// HelperKind enumerates editor-rendering helper invocations in an entity
// header. HelperInherit is special: it is never stored as a helper, its
// arguments populate the base-class list instead.
type HelperKind int

const (
	HelperInherit HelperKind = iota // base()

	// Snap to 1/2 of grid. Special, takes no arguments.
	HelperHalfGridSnap

	// Simple helpers
	HelperSize  // sets size of the purple cube
	HelperBBox  // sets bounding box of entity
	HelperColor // tint
	HelperSphere
	HelperLine
	HelperFrustum
	HelperCylinder
	HelperSideList // brush sides
	HelperWireBox  // bounding box from two keyvalues

	// Complex helpers using resources
	HelperIconSprite
	HelperStudio
	HelperStudioProp
	HelperLightProp // uses separate pitch keyvalue

	// Specialty for certain ents
	HelperSprite
	HelperInstance
	HelperDecal
	HelperOverlay
	HelperOverlayTransition
	HelperLight
	HelperLightCone
	HelperKeyframe
	HelperAnimator
	HelperQuadBounds // sets the 4 corners on save
)

var helperTags = map[HelperKind]string{
	HelperInherit:           "base",
	HelperHalfGridSnap:      "halfgridsnap",
	HelperSize:              "size",
	HelperBBox:              "bbox",
	HelperColor:             "color",
	HelperSphere:            "sphere",
	HelperLine:              "line",
	HelperFrustum:           "frustum",
	HelperCylinder:          "cylinder",
	HelperSideList:          "sidelist",
	HelperWireBox:           "wirebox",
	HelperIconSprite:        "iconsprite",
	HelperStudio:            "studio",
	HelperStudioProp:        "studioprop",
	HelperLightProp:         "lightprop",
	HelperSprite:            "sprite",
	HelperInstance:          "instance",
	HelperDecal:             "decal",
	HelperOverlay:           "overlay",
	HelperOverlayTransition: "overlay_transition",
	HelperLight:             "light",
	HelperLightCone:         "lightcone",
	HelperKeyframe:          "keyframe",
	HelperAnimator:          "animator",
	HelperQuadBounds:        "quadbounds",
}

var helperByTag = map[string]HelperKind{}

func init() {
	for kind, tag := range helperTags {
		helperByTag[tag] = kind
	}
}

// LookupHelper resolves a helper tag. The match is exact, helper tags are
// not case-folded.
func LookupHelper(tag string) (HelperKind, bool) {
	kind, has := helperByTag[tag]
	return kind, has
}

func (h HelperKind) Tag() string {
	return helperTags[h]
}

func (h HelperKind) String() string {
	return h.Tag()
}
