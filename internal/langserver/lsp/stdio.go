package lsp

import (
	"io"
	"os"

	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
)

type stdioReaderWriter struct {
	reader   io.Reader
	writer   io.Writer
	isClosed bool
}

// newStdio returns a ReaderWriter over the given streams, defaulting to the
// process's stdin and stdout.
func newStdio(input io.Reader, output io.Writer) jsonrpc.ReaderWriter {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	return &stdioReaderWriter{
		reader: input,
		writer: output,
	}
}

func (s *stdioReaderWriter) Read(p []byte) (n int, err error) {
	if s.isClosed {
		return 0, io.EOF
	}
	return s.reader.Read(p)
}

func (s *stdioReaderWriter) Write(p []byte) (n int, err error) {
	if s.isClosed {
		return 0, io.EOF
	}
	return s.writer.Write(p)
}

func (s *stdioReaderWriter) Close() error {
	s.isClosed = true
	return nil
}
