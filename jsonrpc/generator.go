package jsonrpc

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/seniorGolang/rpckit/types/uuid"
)

// Generator produces request identifiers, one per Generate call. The
// sequence only restarts by constructing a new generator. Implementations
// are not safe for concurrent use unless documented otherwise; wrap a shared
// generator with Synchronized.
type Generator interface {
	Generate() ID
}

type decimalGenerator struct {
	next int64
	step int64
}

type DecimalOption func(*decimalGenerator)

func DecimalStart(start int64) DecimalOption {
	return func(g *decimalGenerator) { g.next = start }
}

func DecimalStep(step int64) DecimalOption {
	return func(g *decimalGenerator) { g.step = step }
}

// NewDecimalGenerator yields consecutive numeric ids, by default 1, 2, 3 ...
func NewDecimalGenerator(options ...DecimalOption) Generator {

	g := &decimalGenerator{
		next: 1,
		step: 1,
	}

	for _, option := range options {
		option(g)
	}
	return g
}

func (g *decimalGenerator) Generate() ID {

	id := NumberID(g.next)
	g.next += g.step
	return id
}

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type randomGenerator struct {
	length  int
	charset string
	rnd     *rand.Rand
}

type RandomOption func(*randomGenerator)

func RandomLength(length int) RandomOption {
	return func(g *randomGenerator) { g.length = length }
}

func RandomCharset(charset string) RandomOption {
	return func(g *randomGenerator) { g.charset = charset }
}

// NewRandomGenerator yields random string ids, by default 8 alphanumeric
// characters.
func NewRandomGenerator(options ...RandomOption) Generator {

	g := &randomGenerator{
		length:  8,
		charset: alphanumeric,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, option := range options {
		option(g)
	}
	return g
}

func (g *randomGenerator) Generate() ID {

	buf := make([]byte, g.length)

	for i := range buf {
		buf[i] = g.charset[g.rnd.Intn(len(g.charset))]
	}
	return StringID(string(buf))
}

type uuidGenerator struct{}

// NewUUIDGenerator yields random UUID v4 string ids.
func NewUUIDGenerator() Generator {
	return &uuidGenerator{}
}

func (g *uuidGenerator) Generate() ID {
	return StringID(uuid.NewV4().String())
}

type xidGenerator struct{}

// NewXIDGenerator yields globally unique short string ids.
func NewXIDGenerator() Generator {
	return &xidGenerator{}
}

func (g *xidGenerator) Generate() ID {
	return StringID(xid.New().String())
}

type syncGenerator struct {
	mu    sync.Mutex
	inner Generator
}

// Synchronized wraps a generator so it is safe for concurrent use.
func Synchronized(g Generator) Generator {
	return &syncGenerator{inner: g}
}

func (g *syncGenerator) Generate() ID {

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inner.Generate()
}
