package schemaconfig

import "fmt"

// ErrorKind classifies why loading a YAML schema document failed.
type ErrorKind int

const (
	// ErrOpen is a failure opening the document's underlying file.
	ErrOpen ErrorKind = iota
	// ErrRead is a failure reading the document's bytes once opened.
	ErrRead
	// ErrDecode is a YAML syntax error.
	ErrDecode
	// ErrMalformed is a structurally invalid document: a missing key, a
	// key holding the wrong YAML node kind, or an empty document.
	ErrMalformed
	// ErrSchema wraps a *schema.SchemaError from the underlying
	// schema.Builder.Build call.
	ErrSchema
)

func (k ErrorKind) String() string {
	switch k {
	case ErrOpen:
		return "open error"
	case ErrRead:
		return "read error"
	case ErrDecode:
		return "decode error"
	case ErrMalformed:
		return "malformed document"
	case ErrSchema:
		return "schema error"
	default:
		return "schemaconfig error"
	}
}

// ConfigError reports why Load or LoadFile failed.
type ConfigError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schemaconfig: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("schemaconfig: %s: %s", e.Kind, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// Is reports whether target is a *ConfigError with the same Kind.
func (e *ConfigError) Is(target error) bool {
	other, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}
