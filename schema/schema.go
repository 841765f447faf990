package schema

import "github.com/coregx/logexa/ast"

// TimestampPattern is one declared timestamp pattern. ID is its position
// in declaration order, which doubles as its priority rank (lower wins
// ties; timestamps as a group outrank variables).
type TimestampPattern struct {
	ID     int
	Source string
	AST    *ast.Node
}

// VariablePattern is one declared, named variable pattern. ID is its
// position among variables in declaration order.
type VariablePattern struct {
	ID     int
	Name   string
	Source string
	AST    *ast.Node
}

// Schema is the immutable compiled schema value described in the data
// model: a delimiter set plus ordered timestamp and variable pattern
// lists. Values are only ever produced by Builder.Build, so every
// accessible Schema has already passed the ASCII invariant check.
type Schema struct {
	delimiters [128]bool
	timestamps []TimestampPattern
	variables  []VariablePattern
}

// HasDelimiter reports whether b is a declared delimiter. '\n' always
// reports true regardless of declaration.
func (s *Schema) HasDelimiter(b byte) bool {
	if b >= 128 {
		return false
	}
	return s.delimiters[b]
}

// Delimiters returns the declared delimiter bytes in ascending order.
func (s *Schema) Delimiters() []byte {
	var out []byte
	for b := 0; b < 128; b++ {
		if s.delimiters[b] {
			out = append(out, byte(b))
		}
	}
	return out
}

// Timestamps returns the declared timestamp patterns in priority order.
func (s *Schema) Timestamps() []TimestampPattern { return s.timestamps }

// Variables returns the declared variable patterns in priority order.
func (s *Schema) Variables() []VariablePattern { return s.variables }

// VariableName returns the name of the variable with the given ID, or ""
// if no such variable was declared.
func (s *Schema) VariableName(id int) string {
	for _, v := range s.variables {
		if v.ID == id {
			return v.Name
		}
	}
	return ""
}

// Empty reports whether neither timestamp nor variable patterns were
// declared. Per the data model this is a valid, non-error schema: every
// segment simply becomes StaticText.
func (s *Schema) Empty() bool {
	return len(s.timestamps) == 0 && len(s.variables) == 0
}
