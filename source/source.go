// Package source defines source files and the nested-source queue consumed by the lexer.
package source

import (
	"bytes"
	"unicode/utf8"
)

// Source is a named piece of FGD text with cached line positions.
type Source struct {
	name          string
	content       []byte
	lineStarts    []int
	prevLineIndex int
}

func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content, prevLineIndex: -1}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts a byte offset to 1-based line and column numbers.
// Columns count runes, not bytes.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

func (s *Source) findLineIndex(pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	index := 0
	for leftIndex < rightIndex {
		index = (leftIndex + rightIndex + 1) >> 1
		lineStart := s.lineStarts[index]
		if lineStart == pos {
			s.prevLineIndex = index
			return index
		}

		if lineStart < pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
			index = rightIndex
		}
	}
	s.prevLineIndex = leftIndex
	return leftIndex
}

// Pos is a resolved position inside a Source.
type Pos struct {
	src            *Source
	pos, line, col int
}

func NewPos(src *Source, pos int) Pos {
	p := Pos{src: src, pos: pos}
	if src != nil {
		p.line, p.col = src.LineCol(pos)
	}
	return p
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}

type queueItem struct {
	source *Source
	pos    int
}

// Queue holds the source being read plus the sources suspended by includes.
// Pushing a source suspends the current one at its current position; when the
// pushed source is exhausted the suspended one resumes. Include nesting is
// strictly last-in first-out.
type Queue struct {
	source *Source
	pos    int
	stack  []queueItem
}

func NewQueue() *Queue {
	return &Queue{}
}

// Source returns the source currently being read, or nil if the queue is empty.
func (q *Queue) Source() *Source {
	return q.source
}

func (q *Queue) Pos() int {
	return q.pos
}

// SourcePos returns the current position resolved to line and column.
func (q *Queue) SourcePos() Pos {
	return NewPos(q.source, q.pos)
}

// Push makes s the current source, suspending the one being read.
func (q *Queue) Push(s *Source) *Queue {
	if q.source != nil {
		q.stack = append(q.stack, queueItem{q.source, q.pos})
	}
	q.source = s
	q.pos = 0
	return q
}

// IsEmpty reports whether there is nothing left to read in any source.
func (q *Queue) IsEmpty() bool {
	return (q.source == nil || q.pos >= q.source.Len()) && len(q.stack) == 0
}

// ContentPos returns the current source content and read position.
func (q *Queue) ContentPos() ([]byte, int) {
	if q.source == nil {
		return []byte{}, 0
	}
	return q.source.Content(), q.pos
}

// Skip advances the read position inside the current source.
func (q *Queue) Skip(size int) {
	if q.source == nil || size <= 0 {
		return
	}

	q.pos += size
	if q.pos > q.source.Len() {
		q.pos = q.source.Len()
	}
}

// NextSource discards the exhausted current source and resumes the suspended
// one, if any.
func (q *Queue) NextSource() {
	if len(q.stack) == 0 {
		q.source = nil
		q.pos = 0
		return
	}

	top := q.stack[len(q.stack)-1]
	q.stack = q.stack[:len(q.stack)-1]
	q.source = top.source
	q.pos = top.pos
}
