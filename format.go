package describe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedFormat is returned by ParseFormat and Write for unknown
// format names.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format selects an output rendering for [Write] and [Marshal].
type Format string

const (
	// Text is the Generate string followed by a newline.
	Text Format = "text"
	// JSON is a {"type": ..., "fields": [...]} document.
	JSON Format = "json"
	// YAML is the same document as JSON, YAML-encoded.
	YAML Format = "yaml"
	// Table is a bordered two-column FIELD/VALUE table.
	Table Format = "table"
)

var formats = []Format{Text, JSON, YAML, Table}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string, e.g. from a CLI flag.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// document is the structured form shared by the JSON and YAML writers.
// Fields stay an ordered list so the output is deterministic and respects
// the comparators.
type document struct {
	Type   string  `json:"type" yaml:"type"`
	Fields []Entry `json:"fields" yaml:"fields"`
}

// Write renders d in the given format and writes it to w. A nil target
// renders as each format's own null document.
func Write(w io.Writer, f Format, d *Describer) error {
	switch f {
	case Text:
		_, err := io.WriteString(w, d.Generate()+"\n")
		return err
	case JSON:
		return writeJSON(w, d)
	case YAML:
		return writeYAML(w, d)
	case Table:
		return writeTable(w, d)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders d in the given format and returns the bytes.
func Marshal(f Format, d *Describer) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
