package schema

import (
	"github.com/coregx/logexa/restx"
)

// Builder assembles a Schema. Use NewBuilder, then AddDelimiters,
// AddTimestamp, and AddVariable in the order patterns should take
// priority, then Build.
type Builder struct {
	delimiterBytes []byte
	timestamps     []string
	variables      []namedPattern
}

type namedPattern struct {
	name   string
	source string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddDelimiters declares each byte in s as a segment-boundary delimiter.
// '\n' is always treated as a delimiter whether or not it appears here.
func (b *Builder) AddDelimiters(s string) *Builder {
	b.delimiterBytes = append(b.delimiterBytes, []byte(s)...)
	return b
}

// AddTimestamp appends pattern to the ordered timestamp list. Earlier
// calls take priority over later ones.
func (b *Builder) AddTimestamp(pattern string) *Builder {
	b.timestamps = append(b.timestamps, pattern)
	return b
}

// AddVariable appends a named variable pattern. Earlier calls take
// priority over later ones.
func (b *Builder) AddVariable(name, pattern string) *Builder {
	b.variables = append(b.variables, namedPattern{name: name, source: pattern})
	return b
}

// Build validates and finalizes the Schema. It fails with ErrNonASCII if
// any declared delimiter is outside the ASCII range, or with
// ErrBadPattern (wrapping the underlying *restx.ParseError) if any
// timestamp or variable pattern fails to parse. An empty schema (no
// patterns declared at all) is valid.
func (b *Builder) Build() (*Schema, error) {
	s := &Schema{}
	for _, db := range b.delimiterBytes {
		if db >= 128 {
			return nil, &SchemaError{Kind: ErrNonASCII, Message: "delimiter byte out of ASCII range"}
		}
		s.delimiters[db] = true
	}
	s.delimiters['\n'] = true

	for i, src := range b.timestamps {
		node, err := restx.Parse(src)
		if err != nil {
			return nil, &SchemaError{Kind: ErrBadPattern, Message: "timestamp pattern " + src, Cause: err}
		}
		s.timestamps = append(s.timestamps, TimestampPattern{ID: i, Source: src, AST: node})
	}

	for i, np := range b.variables {
		node, err := restx.Parse(np.source)
		if err != nil {
			return nil, &SchemaError{Kind: ErrBadPattern, Message: "variable pattern " + np.source, Cause: err}
		}
		s.variables = append(s.variables, VariablePattern{ID: i, Name: np.name, Source: np.source, AST: node})
	}

	return s, nil
}
