package sourcecode

import (
	"sync"
)

// A File is a named piece of ucode source. It computes line/column
// information for spans; the line index is built lazily and cached, the
// code itself is never mutated.
type File struct {
	Name string //unique name: path or URI
	Code string

	lineStartsLock sync.Mutex
	lineStarts     []int32 //byte offset of the first byte of each line
}

func NewFile(name, code string) *File {
	return &File{Name: name, Code: code}
}

func (f *File) lineStartOffsets() []int32 {
	f.lineStartsLock.Lock()
	defer f.lineStartsLock.Unlock()

	if f.lineStarts != nil {
		return f.lineStarts
	}

	starts := []int32{0}
	for i := 0; i < len(f.Code); i++ {
		if f.Code[i] == '\n' {
			starts = append(starts, int32(i+1))
		}
	}
	f.lineStarts = starts
	return starts
}

// LineColumn returns the 1-indexed line and column of a byte offset.
// Offsets past the end of the code are clamped to the last position.
func (f *File) LineColumn(offset int32) (line int32, column int32) {
	if offset > int32(len(f.Code)) {
		offset = int32(len(f.Code))
	}
	if offset < 0 {
		offset = 0
	}

	starts := f.lineStartOffsets()

	//binary search for the last line start <= offset
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return int32(lo + 1), offset - starts[lo] + 1
}

// LineOf returns the 1-indexed line a byte offset falls on.
func (f *File) LineOf(offset int32) int32 {
	line, _ := f.LineColumn(offset)
	return line
}

// Offset returns the byte offset of a 1-indexed line/column position,
// clamped to the code's bounds.
func (f *File) Offset(line, column int32) int32 {
	starts := f.lineStartOffsets()

	if line < 1 {
		return 0
	}
	if int(line) > len(starts) {
		return int32(len(f.Code))
	}

	offset := starts[line-1] + column - 1
	if offset > int32(len(f.Code)) {
		offset = int32(len(f.Code))
	}
	return offset
}

// SpanPosition converts a span to a full position range within the file.
func (f *File) SpanPosition(span NodeSpan) PositionRange {
	startLine, startCol := f.LineColumn(span.Start)
	endLine, endCol := f.LineColumn(span.End)

	return PositionRange{
		SourceName:  f.Name,
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
		Span:        span,
	}
}

// LineCount returns the number of lines in the file, a trailing newline
// starts a final empty line.
func (f *File) LineCount() int {
	return len(f.lineStartOffsets())
}
