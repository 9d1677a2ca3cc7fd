package jsonrpc

import (
	"errors"
)

// Standard JSON-RPC 2.0 error codes.
const (
	ParseError          = -32700
	InvalidRequestError = -32600
	MethodNotFoundError = -32601
	InvalidParamsError  = -32602
	InternalError       = -32603
)

// ErrInvalidID is returned when decoding an id that is not a string,
// a whole number or null.
var ErrInvalidID = errors.New("id must be a string, number or null")

// Client-side outcomes of a call, for transports consuming payloads built
// here. The builder itself never returns these; it only defines the set so
// all consumers distinguish the same failure kinds.
var (
	ErrNoResponse       = errors.New("no response received")
	ErrUnwantedResponse = errors.New("unexpected response to a notification")
	ErrParseResponse    = errors.New("response could not be parsed")
	ErrInvalidResponse  = errors.New("response is not a valid JSON-RPC response")
	ErrIDMismatch       = errors.New("response id does not match request id")
)
