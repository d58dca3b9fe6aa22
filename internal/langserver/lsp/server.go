package lsp

import (
	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
)

type Server struct {
	Methods
	rpcServer *jsonrpc.Server
}

func NewServer(opt *Config) *Server {
	s := &Server{}
	s.Opt = *opt
	s.rpcServer = jsonrpc.NewServer(opt.Logger, opt.OnSession)
	return s
}

// Run registers the method handlers and serves connections; it blocks until
// the transport is closed.
func (s *Server) Run() error {
	for _, m := range s.GetMethods() {
		if m != nil {
			s.rpcServer.RegisterMethod(*m)
		}
	}

	logger := s.Opt.Logger

	switch {
	case s.Opt.MessageReaderWriter != nil:
		logger.Info().Msg("use message connection")
		s.rpcServer.MsgConnComeIn(s.Opt.MessageReaderWriter)
		return nil
	case s.Opt.Websocket != nil:
		logger.Info().Msgf("use websocket mode, addr: %s", s.Opt.Websocket.Addr)
		wsServer := newWebsocketServer(s.Opt.Websocket.Addr, s.rpcServer, logger)
		return wsServer.listen()
	default:
		logger.Info().Msg("use stdio mode")
		s.rpcServer.ConnComeIn(newStdio(s.Opt.StdioInput, s.Opt.StdioOutput))
		return nil
	}
}
