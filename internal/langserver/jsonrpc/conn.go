package jsonrpc

import (
	"fmt"
	"io"
)

var (
	_ MessageReaderWriter = (*FnMessageReaderWriter)(nil)
)

// ReaderWriter is a readable and writable byte stream carrying
// Content-Length framed messages (stdio, TCP socket, ...).
type ReaderWriter interface {
	io.Reader
	io.Writer
	io.Closer
}

// MessageReaderWriter is a connection that transports whole messages on its
// own (a websocket for example), no framing needed.
type MessageReaderWriter interface {
	//ReadMessage reads an entire message and returns it, the returned bytes should not be modified by the caller.
	ReadMessage() (msg []byte, err error)

	//WriteMessage writes an entire message, the written bytes should not be modified by the implementation.
	WriteMessage(msg []byte) error

	io.Closer
}

type FnMessageReaderWriter struct {
	ReadMessageFn  func() (msg []byte, err error)
	WriteMessageFn func(msg []byte) error
	CloseFn        func() error
}

func (rw FnMessageReaderWriter) ReadMessage() (msg []byte, err error) {
	return rw.ReadMessageFn()
}

func (rw FnMessageReaderWriter) WriteMessage(msg []byte) error {
	return rw.WriteMessageFn(msg)
}

func (rw FnMessageReaderWriter) Close() error {
	return rw.CloseFn()
}

type CloserReader interface {
	io.Reader
	io.Closer
}

type CloserWriter interface {
	io.Writer
	io.Closer
}

type fakeCloserReader struct {
	io.Reader
}

func (f *fakeCloserReader) Close() error {
	return nil
}

type fakeCloserWriter struct {
	io.Writer
}

func (f *fakeCloserWriter) Close() error {
	return nil
}

// Conn pairs an arbitrary reader and writer into a ReaderWriter, it is not
// limited to net.Conn.
type Conn struct {
	reader CloserReader
	writer CloserWriter
}

func NewConn(reader CloserReader, writer CloserWriter) *Conn {
	return &Conn{reader: reader, writer: writer}
}

func NewNotCloseConn(reader io.Reader, writer io.Writer) *Conn {
	return &Conn{
		reader: &fakeCloserReader{reader},
		writer: &fakeCloserWriter{writer},
	}
}

func (c *Conn) Read(p []byte) (n int, err error) {
	return c.reader.Read(p)
}

func (c *Conn) Write(p []byte) (n int, err error) {
	return c.writer.Write(p)
}

func (c *Conn) Close() error {
	readerErr := c.reader.Close()
	writerErr := c.writer.Close()
	if readerErr == nil && writerErr == nil {
		return nil
	}
	if readerErr == nil {
		return writerErr
	}
	if writerErr == nil {
		return readerErr
	}
	return fmt.Errorf("two errors, reader: %w, writer: %v", readerErr, writerErr)
}
