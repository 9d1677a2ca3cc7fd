package jsonrpc

import (
	"encoding/json"
	"fmt"

	"github.com/seniorGolang/rpckit/logger"
)

const (
	Version     = "2.0"
	ContentType = "application/json; charset=utf-8"
)

var log = logger.Log.WithField("module", "jsonrpc")

// Payload is a JSON-RPC 2.0 request or notification object. Field order is
// the canonical key order of the serialized form: jsonrpc, method, params, id.
// Params is either an ordered list or a mapping, never both; nil means the
// key is omitted. A nil ID makes the payload a notification.
type Payload struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
	ID      *ID         `json:"id,omitempty"`
}

// IsNotification reports whether the payload carries no id.
func (p Payload) IsNotification() bool {
	return p.ID == nil
}

func (p Payload) String() string {

	data, err := json.Marshal(p)

	if err != nil {
		log.WithError(err).Error("payload encode error")
		return ""
	}
	return string(data)
}

// Batch is a list of payloads serialized as one JSON array.
type Batch []Payload

func (b Batch) String() string {

	data, err := json.Marshal(b)

	if err != nil {
		log.WithError(err).Error("batch encode error")
		return ""
	}
	return string(data)
}

// Response represents a response object.
type Response struct {
	// JSONRPC specifies the version of the JSON-RPC protocol, equals to "2.0"
	JSONRPC string `json:"jsonrpc"`
	// Result contains the result of the called method
	Result json.RawMessage `json:"result,omitempty"`
	// Error contains the error object if an error occurred while processing the request
	Error *Error `json:"error,omitempty"`
	// ID contains the client established request id or null
	ID *ID `json:"id,omitempty"`
}

// Error represents a response error object.
type Error struct {
	// Code indicates the error type that occurred
	Code int `json:"code"`
	// Message provides a short description of the error
	Message string `json:"message"`
	// Data can contain additional information about the error
	Data interface{} `json:"data,omitempty"`
}

func (e Error) Error() string {
	return fmt.Sprintf("JSON-RPC error: %d, %s", e.Code, e.Message)
}
