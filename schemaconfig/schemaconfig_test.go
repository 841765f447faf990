package schemaconfig

import (
	"strings"
	"testing"
)

const sampleYAML = `
timestamp:
  - "\\d{4}-\\d{2}-\\d{2} \\d{2}:\\d{2}:\\d{2}"
variables:
  int: "\\-?\\d+"
  loglevel: "(INFO|DEBUG|WARN|ERROR)"
delimiters: " \t\r\n:,"
`

func TestLoadSampleSchema(t *testing.T) {
	s, err := Load(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Timestamps()) != 1 {
		t.Fatalf("got %d timestamps, want 1", len(s.Timestamps()))
	}
	if len(s.Variables()) != 2 {
		t.Fatalf("got %d variables, want 2", len(s.Variables()))
	}
	if s.Variables()[0].Name != "int" || s.Variables()[1].Name != "loglevel" {
		t.Fatalf("variable order not preserved: %+v", s.Variables())
	}
	if !s.HasDelimiter(' ') || !s.HasDelimiter(':') || !s.HasDelimiter('\n') {
		t.Fatalf("expected delimiters missing")
	}
}

func TestLoadMissingKeyFails(t *testing.T) {
	_, err := Load(strings.NewReader("timestamp: []\nvariables: {}\n"))
	if err == nil {
		t.Fatalf("expected error for missing delimiters key")
	}
	ce, ok := err.(*ConfigError)
	if !ok || ce.Kind != ErrMalformed {
		t.Fatalf("got %#v, want *ConfigError{Kind: ErrMalformed}", err)
	}
}

func TestLoadBadPatternFails(t *testing.T) {
	yamlDoc := `
timestamp: []
variables:
  bad: "("
delimiters: " "
`
	_, err := Load(strings.NewReader(yamlDoc))
	if err == nil {
		t.Fatalf("expected error for unbalanced pattern")
	}
	ce, ok := err.(*ConfigError)
	if !ok || ce.Kind != ErrSchema {
		t.Fatalf("got %#v, want *ConfigError{Kind: ErrSchema}", err)
	}
}
