package lsp

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
)

var (
	_ jsonrpc.MessageReaderWriter = (*jsonRpcWebsocket)(nil)
)

// jsonRpcWebsocket adapts a websocket connection to the message connection
// interface of the jsonrpc package.
type jsonRpcWebsocket struct {
	conn   *websocket.Conn
	lock   sync.Mutex
	logger zerolog.Logger
}

func newJsonRpcWebsocket(conn *websocket.Conn, logger zerolog.Logger) *jsonRpcWebsocket {
	return &jsonRpcWebsocket{conn: conn, logger: logger}
}

func (s *jsonRpcWebsocket) ReadMessage() ([]byte, error) {
	msgType, msg, err := s.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	if msgType != websocket.TextMessage {
		s.logger.Debug().Msg("a non text message was received, type is " + strconv.Itoa(msgType))
		return nil, nil
	}

	return msg, nil
}

func (s *jsonRpcWebsocket) WriteMessage(msg []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.conn.WriteMessage(websocket.TextMessage, msg)
}

func (s *jsonRpcWebsocket) Close() error {
	return s.conn.Close()
}

type websocketServer struct {
	httpServer *http.Server
	upgrader   websocket.Upgrader
	rpcServer  *jsonrpc.Server
	logger     zerolog.Logger
}

func newWebsocketServer(addr string, rpcServer *jsonrpc.Server, logger zerolog.Logger) *websocketServer {
	server := &websocketServer{
		rpcServer: rpcServer,
		logger:    logger.With().Str("src", "websocket-server").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	server.httpServer = &http.Server{
		Addr:              addr,
		Handler:           http.HandlerFunc(server.handleNew),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server
}

func (server *websocketServer) listen() error {
	server.logger.Info().Msgf("listen on %s", server.httpServer.Addr)
	return server.httpServer.ListenAndServe()
}

func (server *websocketServer) handleNew(w http.ResponseWriter, r *http.Request) {
	conn, err := server.upgrader.Upgrade(w, r, nil)
	if err != nil {
		server.logger.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	socket := newJsonRpcWebsocket(conn, server.logger)
	server.rpcServer.MsgConnComeIn(socket)
}
