package types

import (
	"reflect"
)

type KeyValue struct {
	key   string
	value interface{}
}

func KV(key string, value interface{}) KeyValue {
	return KeyValue{key: key, value: value}
}

func (kv KeyValue) Key() string {
	return kv.key
}

func (kv KeyValue) Value() interface{} {
	return kv.value
}

func (kv KeyValue) IsZero() bool {
	return reflect.ValueOf(kv.value).IsZero()
}

// Map collects pairs into a mapping. Later pairs win on key collision.
func Map(pairs ...KeyValue) map[string]interface{} {

	if len(pairs) == 0 {
		return nil
	}

	m := make(map[string]interface{}, len(pairs))

	for _, kv := range pairs {
		m[kv.key] = kv.value
	}
	return m
}
