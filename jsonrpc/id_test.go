package jsonrpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDMarshal(t *testing.T) {

	tests := []struct {
		name     string
		id       ID
		expected string
	}{
		{name: "number", id: NumberID(7), expected: `7`},
		{name: "string", id: StringID("abc"), expected: `"abc"`},
		{name: "null", id: NullID(), expected: `null`},
		{name: "zero value is null", id: ID{}, expected: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestIDUnmarshal(t *testing.T) {

	tests := []struct {
		name     string
		data     string
		expected ID
		invalid  bool
	}{
		{name: "number", data: `42`, expected: NumberID(42)},
		{name: "whole float normalized to integer", data: `42.0`, expected: NumberID(42)},
		{name: "string", data: `"abc"`, expected: StringID("abc")},
		{name: "null", data: `null`, expected: NullID()},
		{name: "fractional number rejected", data: `1.5`, invalid: true},
		{name: "boolean rejected", data: `true`, invalid: true},
		{name: "array rejected", data: `[1]`, invalid: true},
		{name: "object rejected", data: `{"a":1}`, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.data), &id)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(id))
		})
	}
}

func TestIDString(t *testing.T) {

	assert.Equal(t, "7", NumberID(7).String())
	assert.Equal(t, "abc", StringID("abc").String())
	assert.Equal(t, "null", NullID().String())
}

func TestIDEqual(t *testing.T) {

	assert.True(t, NumberID(1).Equal(NumberID(1)))
	assert.False(t, NumberID(1).Equal(NumberID(2)))
	assert.False(t, NumberID(1).Equal(StringID("1")))
	assert.True(t, NullID().Equal(ID{}))
}
