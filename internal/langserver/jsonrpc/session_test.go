package jsonrpc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsoniter "github.com/json-iterator/go"
)

type echoParams struct {
	Value string `json:"value"`
}

func startFramedSession(t *testing.T) (input *io.PipeWriter, output *bufio.Reader) {
	t.Helper()

	server := NewServer(zerolog.Nop(), nil)
	server.RegisterMethod(MethodInfo{
		Name: "echo",
		NewRequest: func() interface{} {
			return &echoParams{}
		},
		Handler: func(ctx context.Context, req interface{}) (interface{}, error) {
			return req, nil
		},
	})

	inReader, inWriter := io.Pipe()
	outReader, outWriter := io.Pipe()

	go server.ConnComeIn(NewNotCloseConn(inReader, outWriter))

	t.Cleanup(func() {
		inWriter.CloseWithError(io.EOF)
	})

	return inWriter, bufio.NewReader(outReader)
}

// readFramedMessage reads one Content-Length framed message.
func readFramedMessage(t *testing.T, r *bufio.Reader) []byte {
	t.Helper()

	header, err := r.ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(header, "Content-Length: "))

	length, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(header, "Content-Length: ")))
	require.NoError(t, err)

	//empty line terminating the header part
	emptyLine, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "\r\n", emptyLine)

	content := make([]byte, length)
	_, err = io.ReadFull(r, content)
	require.NoError(t, err)
	return content
}

func TestSessionContentLengthFraming(t *testing.T) {

	t.Run("request and framed response", func(t *testing.T) {
		input, output := startFramedSession(t)

		payload := `{"jsonrpc":"2.0","id":1,"method":"echo","params":{"value":"hello"}}`
		_, err := fmt.Fprintf(input, "Content-Length: %d\r\n\r\n%s", len(payload), payload)
		require.NoError(t, err)

		var resp ResponseMessage
		require.NoError(t, jsoniter.Unmarshal(readFramedMessage(t, output), &resp))

		assert.EqualValues(t, 1, resp.ID)
		assert.Nil(t, resp.Error)
		assert.Equal(t, map[string]interface{}{"value": "hello"}, resp.Result)
	})

	t.Run("header name is case-insensitive", func(t *testing.T) {
		input, output := startFramedSession(t)

		payload := `{"jsonrpc":"2.0","id":2,"method":"echo","params":{"value":"x"}}`
		_, err := fmt.Fprintf(input, "content-length: %d\r\n\r\n%s", len(payload), payload)
		require.NoError(t, err)

		var resp ResponseMessage
		require.NoError(t, jsoniter.Unmarshal(readFramedMessage(t, output), &resp))

		assert.EqualValues(t, 2, resp.ID)
		assert.Nil(t, resp.Error)
	})

	t.Run("unknown method", func(t *testing.T) {
		input, output := startFramedSession(t)

		payload := `{"jsonrpc":"2.0","id":3,"method":"frobnicate"}`
		_, err := fmt.Fprintf(input, "Content-Length: %d\r\n\r\n%s", len(payload), payload)
		require.NoError(t, err)

		var resp ResponseMessage
		require.NoError(t, jsoniter.Unmarshal(readFramedMessage(t, output), &resp))

		assert.EqualValues(t, 3, resp.ID)
		require.NotNil(t, resp.Error)
		assert.EqualValues(t, MethodNotFoundCode, resp.Error.Code)
	})

	t.Run("consecutive requests on the same connection", func(t *testing.T) {
		input, output := startFramedSession(t)

		for i := 1; i <= 3; i++ {
			payload := fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"method":"echo","params":{"value":"msg"}}`, i)
			_, err := fmt.Fprintf(input, "Content-Length: %d\r\n\r\n%s", len(payload), payload)
			require.NoError(t, err)

			var resp ResponseMessage
			require.NoError(t, jsoniter.Unmarshal(readFramedMessage(t, output), &resp))
			assert.EqualValues(t, i, resp.ID)
		}
	})
}
