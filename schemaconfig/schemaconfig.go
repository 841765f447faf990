// Package schemaconfig loads a schema.Schema from a YAML document.
// Schema loading is a separate, optional collaborator to the core
// regex/lexer engine, so this package only ever produces a schema.Schema
// via the public schema.Builder API; it holds no engine internals of its
// own.
//
// Document shape:
//
//	timestamp:
//	  - "\\d{4}-\\d{2}-\\d{2} \\d{2}:\\d{2}:\\d{2}"
//	variables:
//	  int: "\\-?\\d+"
//	  loglevel: "(INFO|DEBUG|WARN|ERROR)"
//	delimiters: " \t\r\n:,"
//
// timestamp is a sequence (order is priority order); variables is a
// mapping whose key order is priority order — decoded via yaml.Node
// rather than into a plain Go map, since map iteration order is not
// specified.
package schemaconfig

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coregx/logexa/schema"
)

const (
	timestampKey  = "timestamp"
	variablesKey  = "variables"
	delimitersKey = "delimiters"
)

// LoadFile reads and parses the YAML schema document at path.
func LoadFile(path string) (*schema.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Kind: ErrOpen, Message: path, Cause: err}
	}
	defer f.Close()
	return Load(f)
}

// Load parses a YAML schema document from r.
func Load(r io.Reader) (*schema.Schema, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &ConfigError{Kind: ErrRead, Message: "reading document", Cause: err}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &ConfigError{Kind: ErrDecode, Message: "parsing yaml", Cause: err}
	}
	if len(doc.Content) == 0 {
		return nil, &ConfigError{Kind: ErrMalformed, Message: "empty document"}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &ConfigError{Kind: ErrMalformed, Message: "document root must be a mapping"}
	}

	fields := mappingFields(root)

	b := schema.NewBuilder()

	tsNode, ok := fields[timestampKey]
	if !ok {
		return nil, &ConfigError{Kind: ErrMalformed, Message: "missing key " + timestampKey}
	}
	if tsNode.Kind != yaml.SequenceNode {
		return nil, &ConfigError{Kind: ErrMalformed, Message: timestampKey + " must be a sequence"}
	}
	for _, item := range tsNode.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, &ConfigError{Kind: ErrMalformed, Message: timestampKey + " entries must be strings"}
		}
		b.AddTimestamp(item.Value)
	}

	varsNode, ok := fields[variablesKey]
	if !ok {
		return nil, &ConfigError{Kind: ErrMalformed, Message: "missing key " + variablesKey}
	}
	if varsNode.Kind != yaml.MappingNode {
		return nil, &ConfigError{Kind: ErrMalformed, Message: variablesKey + " must be a mapping"}
	}
	for i := 0; i+1 < len(varsNode.Content); i += 2 {
		nameNode, patternNode := varsNode.Content[i], varsNode.Content[i+1]
		if nameNode.Kind != yaml.ScalarNode || patternNode.Kind != yaml.ScalarNode {
			return nil, &ConfigError{Kind: ErrMalformed, Message: variablesKey + " entries must be string:string"}
		}
		b.AddVariable(nameNode.Value, patternNode.Value)
	}

	delimNode, ok := fields[delimitersKey]
	if !ok {
		return nil, &ConfigError{Kind: ErrMalformed, Message: "missing key " + delimitersKey}
	}
	if delimNode.Kind != yaml.ScalarNode {
		return nil, &ConfigError{Kind: ErrMalformed, Message: delimitersKey + " must be a string"}
	}
	b.AddDelimiters(delimNode.Value)

	s, err := b.Build()
	if err != nil {
		return nil, &ConfigError{Kind: ErrSchema, Message: "building schema", Cause: err}
	}
	return s, nil
}

// mappingFields returns node's top-level key -> value node pairs. node
// must be a MappingNode.
func mappingFields(node *yaml.Node) map[string]*yaml.Node {
	out := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out[node.Content[i].Value] = node.Content[i+1]
	}
	return out
}
