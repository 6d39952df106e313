package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Numeric holds a numeric form input exactly as the input widget produced it.
// Defaults are numbers; anything typed by a user arrives as text. The value is
// never coerced before it reaches the transport, so a typed "1000" is sent as
// the JSON string "1000" and the default 500 as the JSON number 500.
type Numeric struct {
	text   string
	value  float64
	isText bool
}

// Number wraps a numeric value.
func Number(v float64) Numeric {
	return Numeric{value: v}
}

// Text wraps raw widget text.
func Text(raw string) Numeric {
	return Numeric{text: raw, isText: true}
}

// Equal reports whether both values hold the same kind and content.
func (n Numeric) Equal(other Numeric) bool {
	return n == other
}

// String returns the value as it would appear in an input box.
func (n Numeric) String() string {
	if n.isText {
		return n.text
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

// MarshalJSON emits a JSON string for text values and a JSON number otherwise.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.isText {
		return json.Marshal(n.text)
	}
	return []byte(strconv.FormatFloat(n.value, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*n = Numeric{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("model: decode numeric text: %w", err)
		}
		*n = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return fmt.Errorf("model: decode numeric: %w", err)
	}
	*n = Number(f)
	return nil
}

// UnmarshalYAML keeps quoted scalars as text and decodes bare scalars as numbers.
func (n *Numeric) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("model: numeric field must be a scalar (line %d)", node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("model: decode numeric (line %d): %w", node.Line, err)
		}
		*n = Number(f)
	case "!!null":
		*n = Numeric{}
	default:
		*n = Text(node.Value)
	}
	return nil
}
