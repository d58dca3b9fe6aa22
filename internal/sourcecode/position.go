package sourcecode

import (
	"bytes"
	"fmt"
)

// A NodeSpan is a [start,end) byte range inside a source file.
type NodeSpan struct {
	Start int32 `json:"start"`
	End   int32 `json:"end"` //exclusive
}

func (s NodeSpan) Len() int32 {
	return s.End - s.Start
}

func (s NodeSpan) Contains(i int32) bool {
	return i >= s.Start && i < s.End
}

func (s NodeSpan) HasPositionEndIncluded(i int32) bool {
	return i >= s.Start && i <= s.End
}

// A PositionRange locates a NodeSpan inside a named source, lines and
// columns are 1-indexed.
type PositionRange struct {
	SourceName  string   `json:"sourceName"`
	StartLine   int32    `json:"line"`
	StartColumn int32    `json:"column"`
	EndLine     int32    `json:"endLine"`
	EndColumn   int32    `json:"endColumn"`
	Span        NodeSpan `json:"span"`
}

func (pos PositionRange) String() string {
	return fmt.Sprintf("%s:%d:%d:", pos.SourceName, pos.StartLine, pos.StartColumn)
}

type PositionStack []PositionRange

func (stack PositionStack) String() string {
	buff := bytes.NewBuffer(nil)
	for _, pos := range stack {
		buff.WriteString(pos.String())
		buff.WriteRune(' ')
	}
	return buff.String()
}
