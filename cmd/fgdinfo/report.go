package main

import (
	"sort"

	"github.com/forgetools/fgd/entity"
	"github.com/forgetools/fgd/parser"
)

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// The report types are the serializable view of a registry used by the dump
// and show commands. Maps become name-sorted slices so output is stable.

type registryReport struct {
	MapSizeMin int            `yaml:"mapsize_min" toml:"mapsize_min"`
	MapSizeMax int            `yaml:"mapsize_max" toml:"mapsize_max"`
	Entities   []entityReport `yaml:"entities" toml:"entities"`
}

type entityReport struct {
	Classname string           `yaml:"classname" toml:"classname"`
	Class     string           `yaml:"class" toml:"class"`
	Desc      string           `yaml:"desc,omitempty" toml:"desc,omitempty"`
	Bases     []string         `yaml:"bases,omitempty" toml:"bases,omitempty"`
	Helpers   []helperReport   `yaml:"helpers,omitempty" toml:"helpers,omitempty"`
	Keyvalues []keyValueReport `yaml:"keyvalues,omitempty" toml:"keyvalues,omitempty"`
	Inputs    []ioReport       `yaml:"inputs,omitempty" toml:"inputs,omitempty"`
	Outputs   []ioReport       `yaml:"outputs,omitempty" toml:"outputs,omitempty"`
}

type helperReport struct {
	Kind string   `yaml:"kind" toml:"kind"`
	Args []string `yaml:"args,omitempty" toml:"args,omitempty"`
}

type keyValueReport struct {
	Name     string      `yaml:"name" toml:"name"`
	Type     string      `yaml:"type" toml:"type"`
	DispName string      `yaml:"disp_name" toml:"disp_name"`
	Default  *string     `yaml:"default,omitempty" toml:"default,omitempty"`
	Desc     string      `yaml:"desc,omitempty" toml:"desc,omitempty"`
	ReadOnly bool        `yaml:"readonly,omitempty" toml:"readonly,omitempty"`
	Values   []rowReport `yaml:"values,omitempty" toml:"values,omitempty"`
}

type rowReport struct {
	Value   string `yaml:"value" toml:"value"`
	Label   string `yaml:"label" toml:"label"`
	Default bool   `yaml:"default,omitempty" toml:"default,omitempty"`
}

type ioReport struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
	Desc string `yaml:"desc,omitempty" toml:"desc,omitempty"`
}

func reportRegistry(reg *parser.FGD) registryReport {
	rep := registryReport{
		MapSizeMin: reg.MapSizeMin,
		MapSizeMax: reg.MapSizeMax,
		Entities:   make([]entityReport, 0, len(reg.Entities)),
	}
	for _, name := range reg.Classnames() {
		rep.Entities = append(rep.Entities, reportEntity(reg.Entities[name]))
	}
	return rep
}

func reportEntity(def *entity.Def) entityReport {
	rep := entityReport{
		Classname: def.Classname,
		Class:     def.Class.Tag(),
		Desc:      def.Desc,
	}

	if def.Bases.Resolved() {
		for _, base := range def.Bases.Refs() {
			rep.Bases = append(rep.Bases, base.Classname)
		}
	} else {
		rep.Bases = def.Bases.Names()
	}

	for _, h := range def.Helpers {
		rep.Helpers = append(rep.Helpers, helperReport{Kind: h.Kind.Tag(), Args: h.Args})
	}
	for _, name := range sortedKeys(def.Keyvalues) {
		rep.Keyvalues = append(rep.Keyvalues, reportKeyValue(def.Keyvalues[name]))
	}
	for _, name := range sortedKeys(def.Inputs) {
		rep.Inputs = append(rep.Inputs, reportIO(def.Inputs[name]))
	}
	for _, name := range sortedKeys(def.Outputs) {
		rep.Outputs = append(rep.Outputs, reportIO(def.Outputs[name]))
	}
	return rep
}

func reportKeyValue(kv *entity.KeyValue) keyValueReport {
	rep := keyValueReport{
		Name:     kv.Name,
		Type:     kv.Type.Tag(),
		DispName: kv.DispName,
		Desc:     kv.Desc,
		ReadOnly: kv.ReadOnly,
	}
	if kv.HasDefault {
		def := kv.Default
		rep.Default = &def
	}
	for _, row := range kv.ValList {
		rep.Values = append(rep.Values, rowReport(row))
	}
	return rep
}

func reportIO(io *entity.IODef) ioReport {
	return ioReport{Name: io.Name, Type: io.Type.Tag(), Desc: io.Desc}
}
