package jsonrpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

type executor struct {
	id     interface{}
	cancel context.CancelFunc
}

// A Session reads messages from one connection, dispatches them to the
// server's registered methods and writes back responses. Each request runs
// in its own goroutine with a cancellable context, $/cancelRequest cancels
// the matching context.
type Session struct {
	id     string
	server *Server
	logger zerolog.Logger

	//only one connection is non-nil
	conn    ReaderWriter
	msgConn MessageReaderWriter

	executors    map[interface{}]*executor
	executorLock sync.Mutex
	writeLock    sync.Mutex
	closed       chan struct{}
}

// ID returns the session's ULID.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) Logger() zerolog.Logger {
	return s.logger
}

// GetSession retrieves the session from a handler context.
func GetSession(ctx context.Context) *Session {
	val := ctx.Value(sessionKey)
	if isNil(val) {
		return nil
	}
	return val.(*Session)
}

func (s *Session) Start() {
	for {
		s.handle()
		select {
		case <-s.closed:
			return
		default:
		}
	}
}

func (s *Session) handle() {
	req, err := s.readRequest()
	if err != nil {
		if err := s.writeResponse(nil, nil, err); err != nil {
			s.handleTransportError(err)
		}
		return
	}
	s.logger.Debug().Msgf("request: [%v] [%s]", req.ID, req.Method)
	if err := s.dispatch(req); err != nil {
		if err := s.writeResponse(req.ID, nil, err); err != nil {
			s.handleTransportError(err)
		}
	}
}

func (s *Session) readSize(n int) ([]byte, error) {
	buf := make([]byte, n)
	read := 0
	for read != n {
		c, err := s.conn.Read(buf[read:])
		if err != nil {
			return buf, err
		}
		read += c
	}
	return buf, nil
}

func (s *Session) readRequest() (RequestMessage, error) {
	var contentBytes []byte

	if s.msgConn != nil {
		msg, err := s.msgConn.ReadMessage()
		if err != nil {
			return RequestMessage{}, err
		}
		contentBytes = msg
	} else {
		lenHeader, err := s.readSize(15)
		if err != nil {
			return RequestMessage{}, err
		}
		if !strings.EqualFold(string(lenHeader), "content-length:") {
			return RequestMessage{}, ParseError
		}

		//read the header value and the terminating \r\n\r\n
		var buf []byte
		state := 0
		for max := 0; max < 20; max++ {
			b, err := s.readSize(1)
			if err != nil {
				return RequestMessage{}, err
			}
			if state == 0 {
				buf = append(buf, b[0])
			} else if b[0] != '\r' && b[0] != '\n' {
				return RequestMessage{}, ParseError
			}
			if b[0] == '\r' {
				if state%2 != 0 {
					return RequestMessage{}, ParseError
				}
				state++
			}
			if b[0] == '\n' {
				if state%2 != 1 {
					return RequestMessage{}, ParseError
				}
				state++
				if state == 4 {
					break
				}
			}
		}
		if state != 4 {
			return RequestMessage{}, ParseError
		}

		contentLen, err := strconv.Atoi(strings.TrimSpace(string(buf)))
		if err != nil {
			e := ParseError
			e.Data = err
			return RequestMessage{}, e
		}
		contentBytes, err = s.readSize(contentLen)
		if err != nil {
			return RequestMessage{}, err
		}
	}

	req := RequestMessage{}
	if err := jsoniter.Unmarshal(contentBytes, &req); err != nil {
		e := ParseError
		e.Data = err
		return RequestMessage{}, e
	}
	return req, nil
}

func (s *Session) dispatch(req RequestMessage) error {
	mtdInfo, ok := s.server.methods[req.Method]
	if !ok {
		return MethodNotFound
	}
	reqArgs := mtdInfo.NewRequest()
	if len(req.Params) != 0 {
		if err := jsoniter.Unmarshal(req.Params, reqArgs); err != nil {
			return ParseError
		}
	}
	s.execute(mtdInfo, req, reqArgs)
	return nil
}

func (s *Session) execute(mtdInfo MethodInfo, req RequestMessage, args interface{}) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = context.WithValue(ctx, sessionKey, s)
	exec := &executor{
		id:     req.ID,
		cancel: cancel,
	}
	if req.ID != nil {
		s.registerExecutor(exec)
	}
	go func() {
		defer s.removeExecutor(exec)
		resp, err := mtdInfo.Handler(ctx, args)
		select {
		case <-ctx.Done():
			return
		default:
		}
		if isNil(resp) && isNil(err) && isNil(req.ID) {
			return
		}
		if err := s.writeResponse(req.ID, resp, err); err != nil {
			s.handleTransportError(err)
		}
	}()
}

func (s *Session) registerExecutor(exec *executor) {
	s.executorLock.Lock()
	defer s.executorLock.Unlock()
	s.executors[exec.id] = exec
}

func (s *Session) removeExecutor(exec *executor) {
	s.executorLock.Lock()
	defer s.executorLock.Unlock()
	delete(s.executors, exec.id)
}

func (s *Session) cancelJob(id interface{}) {
	if isNil(id) {
		return
	}
	s.executorLock.Lock()
	exec := s.executors[id]
	s.executorLock.Unlock()
	if exec == nil {
		return
	}
	exec.cancel()
	s.removeExecutor(exec)
}

func (s *Session) writeResponse(id interface{}, result interface{}, err error) error {
	resp := ResponseMessage{ID: id}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		if e, ok := err.(ResponseError); ok {
			resp.Error = &e
		} else {
			return err
		}
	}
	resp.Result = result
	return s.write(resp)
}

func (s *Session) write(resp ResponseMessage) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	res, err := jsoniter.Marshal(resp)
	if err != nil {
		return err
	}
	s.logger.Debug().Msgf("response: [%v]", resp.ID)
	return s.writeFramed(res)
}

// Notify sends a server-to-client notification.
func (s *Session) Notify(notif NotificationMessage) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	notif.BaseMessage = BaseMessage{Jsonrpc: JSONRPC_VERSION}
	res, err := jsoniter.Marshal(notif)
	if err != nil {
		return err
	}
	s.logger.Debug().Msgf("notification: [%s]", notif.Method)
	return s.writeFramed(res)
}

func (s *Session) writeFramed(msg []byte) error {
	if s.msgConn != nil {
		return s.msgConn.WriteMessage(msg)
	}
	if err := s.writeAll([]byte(fmt.Sprintf("Content-Length: %d\r\n\r\n", len(msg)))); err != nil {
		return err
	}
	return s.writeAll(msg)
}

func (s *Session) writeAll(data []byte) error {
	written := 0
	for written != len(data) {
		n, err := s.conn.Write(data[written:])
		if err != nil {
			return err
		}
		written += n
	}
	return nil
}

func (s *Session) handleTransportError(err error) {
	isEOF := errors.Is(err, io.EOF)
	isWebsocketClose := websocket.IsUnexpectedCloseError(err) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)

	if isEOF || isWebsocketClose {
		//connection done, close it and remove the session

		var closeErr error
		if s.conn != nil {
			closeErr = s.conn.Close()
		} else {
			closeErr = s.msgConn.Close()
		}
		if closeErr != nil {
			s.logger.Debug().Err(closeErr).Msg("close error")
		}

		func() {
			s.executorLock.Lock()
			defer s.executorLock.Unlock()
			for _, exec := range s.executors {
				if exec != nil {
					exec.cancel()
				}
			}
		}()

		select {
		case s.closed <- struct{}{}:
		default:
		}
		s.server.removeSession(s.id)
		return
	}
	s.logger.Err(err).Msg("session error")
}

func isNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
