package jsonrpc

import (
	"encoding/json"
	"reflect"

	"github.com/seniorGolang/rpckit/types"
)

// Builder constructs request and notification payloads. Its generator
// supplies ids for requests built without an explicit one.
type Builder struct {
	generator Generator
}

type BuilderOption func(*Builder)

// BuilderGenerator replaces the generator used when a call supplies neither
// an explicit id nor a generator of its own.
func BuilderGenerator(g Generator) BuilderOption {
	return func(b *Builder) { b.generator = g }
}

func NewBuilder(options ...BuilderOption) *Builder {

	b := &Builder{
		generator: NewDecimalGenerator(),
	}

	for _, option := range options {
		option(b)
	}
	return b
}

// DefaultBuilder serves NewRequest and NewNotification. Swap it, or use a
// dedicated Builder, to change the process-wide id sequence.
var DefaultBuilder = NewBuilder()

type call struct {
	args      []interface{}
	kwargs    map[string]interface{}
	id        *ID
	generator Generator
}

type Option func(*call)

// Args appends positional arguments in call order.
func Args(args ...interface{}) Option {
	return func(c *call) { c.args = append(c.args, args...) }
}

// NamedArgs merges keyword arguments into the call.
func NamedArgs(kwargs map[string]interface{}) Option {

	return func(c *call) {

		if len(kwargs) == 0 {
			return
		}

		if c.kwargs == nil {
			c.kwargs = make(map[string]interface{}, len(kwargs))
		}

		for k, v := range kwargs {
			c.kwargs[k] = v
		}
	}
}

// Named merges keyword arguments given as pairs.
func Named(pairs ...types.KeyValue) Option {
	return func(c *call) { NamedArgs(types.Map(pairs...))(c) }
}

// WithID sets the id verbatim; no generator is consulted or advanced.
func WithID(id ID) Option {
	return func(c *call) { c.id = &id }
}

// WithGenerator pulls the id for this call from g instead of the builder's
// generator. Ignored when WithID is also given.
func WithGenerator(g Generator) Option {
	return func(c *call) { c.generator = g }
}

// Request builds a payload that expects a response. Method is taken as-is,
// any string is accepted; validation is the server's concern, not the
// builder's.
func (b *Builder) Request(method string, options ...Option) Payload {

	c := apply(options)

	id := c.id

	if id == nil {

		g := c.generator
		if g == nil {
			g = b.generator
		}

		next := g.Generate()
		id = &next
	}

	return Payload{
		JSONRPC: Version,
		Method:  method,
		Params:  buildParams(c.args, c.kwargs),
		ID:      id,
	}
}

// Notification builds a payload without an id. Id and generator options are
// ignored; no generator is advanced.
func (b *Builder) Notification(method string, options ...Option) Payload {

	c := apply(options)

	return Payload{
		JSONRPC: Version,
		Method:  method,
		Params:  buildParams(c.args, c.kwargs),
	}
}

func apply(options []Option) *call {

	c := new(call)

	for _, option := range options {
		option(c)
	}
	return c
}

func NewRequest(method string, options ...Option) Payload {
	return DefaultBuilder.Request(method, options...)
}

func NewNotification(method string, options ...Option) Payload {
	return DefaultBuilder.Notification(method, options...)
}

// Method is the method-as-identifier form: Method("cat").Request() builds
// the same payload as NewRequest("cat").
type Method string

func (m Method) Request(options ...Option) Payload {
	return DefaultBuilder.Request(string(m), options...)
}

func (m Method) Notification(options ...Option) Payload {
	return DefaultBuilder.Notification(string(m), options...)
}

// buildParams collapses positional and keyword arguments into the params
// value. Keyword arguments ride as one trailing element of the positional
// list; a lone sequence or mapping becomes params itself instead of being
// wrapped; an empty list omits params.
func buildParams(args []interface{}, kwargs map[string]interface{}) interface{} {

	list := args

	if len(kwargs) > 0 {
		list = append(list, kwargs)
	}

	switch {
	case len(list) == 0:
		return nil
	case len(list) == 1 && isContainer(list[0]):
		return list[0]
	}
	return list
}

// isContainer reports whether v is a sequence or a mapping in the JSON
// sense. Byte slices encode as strings, so they stay scalar; raw messages
// pass through as pre-encoded params.
func isContainer(v interface{}) bool {

	if v == nil {
		return false
	}

	if _, ok := v.(json.RawMessage); ok {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map:
		return true
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}
