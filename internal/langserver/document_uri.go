package langserver

import (
	"net/url"
	"strings"

	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
	"github.com/ucodelang/ucls/internal/sourcecode"
)

// documentPath returns the filesystem path of a file: URI; URIs with other
// schemes are returned as-is so they stay usable as analysis source names.
func documentPath(uri defines.DocumentUri) string {
	u, err := url.Parse(string(uri))
	if err != nil || u.Scheme != "file" {
		return string(uri)
	}
	return u.Path
}

// documentURI builds the file: URI of a filesystem path.
func documentURI(path string) defines.DocumentUri {
	if strings.Contains(path, "://") {
		return defines.DocumentUri(path)
	}
	u := url.URL{Scheme: "file", Path: path}
	return defines.DocumentUri(u.String())
}

// rangeToLspRange converts the engine's 1-indexed position range to the
// protocol's 0-indexed range.
func rangeToLspRange(pos sourcecode.PositionRange) defines.Range {
	return defines.Range{
		Start: defines.Position{
			Line:      uint(pos.StartLine) - 1,
			Character: uint(pos.StartColumn) - 1,
		},
		End: defines.Position{
			Line:      uint(pos.EndLine) - 1,
			Character: uint(pos.EndColumn) - 1,
		},
	}
}

// lspPositionToOffset converts a protocol position to a byte offset inside
// the analyzed file.
func lspPositionToOffset(src *sourcecode.File, pos defines.Position) int32 {
	return src.Offset(int32(pos.Line)+1, int32(pos.Character)+1)
}
