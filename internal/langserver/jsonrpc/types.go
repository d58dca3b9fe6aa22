package jsonrpc

import (
	"encoding/json"
	"fmt"
)

const JSONRPC_VERSION = "2.0"

type BaseMessage struct {
	Jsonrpc string `json:"jsonrpc"`
}

type RequestMessage struct {
	BaseMessage
	ID     interface{}     `json:"id"` //int or string
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

type NotificationMessage struct {
	BaseMessage
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

type ResponseMessage struct {
	BaseMessage
	ID     interface{}    `json:"id"`
	Result interface{}    `json:"result"`
	Error  *ResponseError `json:"error,omitempty"`
}

type ResponseError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (r ResponseError) Error() string {
	return fmt.Sprintf("code: %d, message: %s, data: %v", r.Code, r.Message, r.Data)
}

const (
	ParseErrorCode           = -32700
	InvalidRequestCode       = -32600
	MethodNotFoundCode       = -32601
	InvalidParamsCode        = -32602
	InternalErrorCode        = -32603
	ServerNotInitializedCode = -32002
	UnknownErrorCodeCode     = -32001
	ContentModifiedCode      = -32801
	RequestCancelledCode     = -32800
)

var (
	ParseError           = ResponseError{Code: ParseErrorCode, Message: "ParseError"}
	InvalidRequest       = ResponseError{Code: InvalidRequestCode, Message: "InvalidRequest"}
	MethodNotFound       = ResponseError{Code: MethodNotFoundCode, Message: "MethodNotFound"}
	InvalidParams        = ResponseError{Code: InvalidParamsCode, Message: "InvalidParams"}
	InternalError        = ResponseError{Code: InternalErrorCode, Message: "InternalError"}
	ServerNotInitialized = ResponseError{Code: ServerNotInitializedCode, Message: "ServerNotInitialized"}
	RequestCancelled     = ResponseError{Code: RequestCancelledCode, Message: "RequestCancelled"}
)
