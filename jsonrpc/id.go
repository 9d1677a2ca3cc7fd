package jsonrpc

import (
	"encoding/json"
	"math"
	"strconv"
)

// ID is a JSON-RPC request identifier. It holds a number, a string or null;
// the zero value is null. Arrays and objects are excluded by contract.
type ID struct {
	value interface{}
}

func NumberID(n int64) ID {
	return ID{value: n}
}

func StringID(s string) ID {
	return ID{value: s}
}

func NullID() ID {
	return ID{}
}

// Value returns the underlying id value: int64, string or nil.
func (id ID) Value() interface{} {
	return id.value
}

func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

func (id ID) String() string {

	switch v := id.value.(type) {
	case nil:
		return "null"
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	}
	return ""
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts strings, whole numbers and null; whole numbers are
// stored as int64. Anything else fails with ErrInvalidID.
func (id *ID) UnmarshalJSON(data []byte) error {

	var value interface{}

	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case nil:
		id.value = nil
	case string:
		id.value = v
	case float64:
		if math.Trunc(v) != v {
			return ErrInvalidID
		}
		id.value = int64(v)
	default:
		return ErrInvalidID
	}
	return nil
}
