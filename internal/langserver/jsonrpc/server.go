package jsonrpc

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type MethodInfo struct {
	Name       string
	NewRequest func() interface{}
	Handler    func(ctx context.Context, req interface{}) (interface{}, error)
}

// SessionCreationCallbackFn is called before each new session starts
// handling messages; returning an error aborts the session.
type SessionCreationCallbackFn func(*Session) error

type Server struct {
	sessions    map[string]*Session
	sessionLock sync.Mutex
	methods     map[string]MethodInfo
	onSession   SessionCreationCallbackFn
	logger      zerolog.Logger
	entropy     *rand.Rand
	entropyLock sync.Mutex
}

func NewServer(logger zerolog.Logger, onSession SessionCreationCallbackFn) *Server {
	if onSession == nil {
		onSession = func(s *Session) error { return nil }
	}

	s := &Server{
		sessions:  make(map[string]*Session),
		methods:   make(map[string]MethodInfo),
		onSession: onSession,
		logger:    logger,
		entropy:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	s.RegisterMethod(CancelRequest())
	return s
}

func (s *Server) RegisterMethod(m MethodInfo) {
	s.methods[m.Name] = m
}

// ConnComeIn handles a new Content-Length framed connection, it returns when
// the connection is closed.
func (s *Server) ConnComeIn(conn ReaderWriter) {
	session := s.newSession(conn, nil)
	if err := s.onSession(session); err != nil {
		s.logger.Err(err).Str("session", session.id).Msg("session rejected")
		return
	}
	session.Start()
}

// MsgConnComeIn handles a new message-based connection (websocket), it
// returns when the connection is closed.
func (s *Server) MsgConnComeIn(conn MessageReaderWriter) {
	session := s.newSession(nil, conn)
	if err := s.onSession(session); err != nil {
		s.logger.Err(err).Str("session", session.id).Msg("session rejected")
		return
	}
	session.Start()
}

func (s *Server) newSession(conn ReaderWriter, msgConn MessageReaderWriter) *Session {
	s.entropyLock.Lock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
	s.entropyLock.Unlock()

	session := &Session{
		id:        id,
		server:    s,
		conn:      conn,
		msgConn:   msgConn,
		executors: make(map[interface{}]*executor),
		closed:    make(chan struct{}, 1),
		logger:    s.logger.With().Str("session", id).Logger(),
	}

	s.sessionLock.Lock()
	s.sessions[id] = session
	s.sessionLock.Unlock()
	return session
}

func (s *Server) removeSession(id string) {
	s.sessionLock.Lock()
	defer s.sessionLock.Unlock()
	delete(s.sessions, id)
}
