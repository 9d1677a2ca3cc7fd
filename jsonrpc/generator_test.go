package jsonrpc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seniorGolang/rpckit/types/uuid"
)

func TestDecimalGenerator(t *testing.T) {

	tests := []struct {
		name     string
		options  []DecimalOption
		expected []ID
	}{
		{
			name:     "defaults start at one with step one",
			expected: []ID{NumberID(1), NumberID(2), NumberID(3)},
		},
		{
			name:     "custom start",
			options:  []DecimalOption{DecimalStart(41)},
			expected: []ID{NumberID(41), NumberID(42), NumberID(43)},
		},
		{
			name:     "custom start and step",
			options:  []DecimalOption{DecimalStart(7), DecimalStep(3)},
			expected: []ID{NumberID(7), NumberID(10), NumberID(13)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDecimalGenerator(tt.options...)
			for _, expected := range tt.expected {
				assert.Equal(t, expected, g.Generate())
			}
		})
	}
}

func TestDecimalGeneratorsAreIndependent(t *testing.T) {

	a := NewDecimalGenerator()
	b := NewDecimalGenerator()

	a.Generate()
	a.Generate()

	assert.Equal(t, NumberID(1), b.Generate())
}

func TestRandomGenerator(t *testing.T) {

	g := NewRandomGenerator()

	id := g.Generate()
	s, ok := id.Value().(string)
	require.True(t, ok)
	assert.Len(t, s, 8)

	for _, c := range s {
		assert.Contains(t, alphanumeric, string(c))
	}

	assert.NotEqual(t, id, g.Generate())
}

func TestRandomGeneratorOptions(t *testing.T) {

	g := NewRandomGenerator(RandomLength(16), RandomCharset("abc"))

	s := g.Generate().Value().(string)
	require.Len(t, s, 16)

	for _, c := range s {
		assert.Contains(t, "abc", string(c))
	}
}

func TestUUIDGenerator(t *testing.T) {

	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()
	assert.NotEqual(t, first, second)

	id, err := uuid.FromString(first.Value().(string))
	require.NoError(t, err)
	assert.False(t, id.IsNil())
}

func TestXIDGenerator(t *testing.T) {

	g := NewXIDGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.NotEqual(t, first, second)
	assert.Len(t, first.Value().(string), 20)
}

func TestSynchronizedGenerator(t *testing.T) {

	const workers = 20
	const perWorker = 50

	g := Synchronized(NewDecimalGenerator())

	var wg sync.WaitGroup
	ids := make(chan ID, workers*perWorker)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- g.Generate()
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[interface{}]bool)
	for id := range ids {
		assert.False(t, seen[id.Value()], "duplicate id %v", id.Value())
		seen[id.Value()] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
