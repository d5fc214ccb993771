package prefid

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"
)

// AppendText appends the textual encoding of the identifier to b.
func (id ID[P]) AppendText(b []byte) ([]byte, error) {
	return id.appendText(b), nil
}

// MarshalText encodes the identifier as "<prefix>-<uuid>".
func (id ID[P]) MarshalText() ([]byte, error) {
	return id.appendText(make([]byte, 0, EncodedLen(id.Prefix()))), nil
}

// UnmarshalText parses text with the same rules as Parse. It is also used for
// JSON object keys, so errors are flattened like the other decoders.
func (id *ID[P]) UnmarshalText(text []byte) error {
	return id.decode(string(text))
}

// MarshalJSON encodes the identifier as a JSON string.
func (id ID[P]) MarshalJSON() ([]byte, error) {
	prefix := id.Prefix()
	if needsJSONEscape(prefix) {
		return json.Marshal(id.String())
	}
	b := make([]byte, 0, EncodedLen(prefix)+2)
	b = append(b, '"')
	b = id.appendText(b)
	return append(b, '"'), nil
}

// UnmarshalJSON decodes a JSON string. A JSON null leaves the identifier
// unchanged.
func (id *ID[P]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return decodeError(id.Prefix(), err)
	}
	return id.decode(s)
}

// MarshalYAML encodes the identifier as a YAML string scalar.
func (id ID[P]) MarshalYAML() (any, error) {
	return id.String(), nil
}

// UnmarshalYAML decodes a YAML string scalar. A null scalar leaves the
// identifier unchanged.
func (id *ID[P]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return decodeError(id.Prefix(), fmt.Errorf("line %d: expected a string scalar", value.Line))
	}
	if value.ShortTag() == "!!null" {
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return decodeError(id.Prefix(), err)
	}
	return id.decode(s)
}

// UnmarshalParam implements echo.BindUnmarshaler so identifiers can be bound
// from path, query and form parameters.
func (id *ID[P]) UnmarshalParam(param string) error {
	return id.decode(param)
}

func (id ID[P]) LogValue() slog.Value {
	return slog.StringValue(id.String())
}

// decode parses s and replaces the wrapped UUID. Parse errors are flattened
// with decodeError.
func (id *ID[P]) decode(s string) error {
	prefix := id.Prefix()
	u, perr := parse(prefix, s)
	if perr != nil {
		return perr.decodeError(prefix)
	}
	id.uuid = u
	return nil
}

func needsJSONEscape(s string) bool {
	return slices.ContainsFunc([]byte(s), func(c byte) bool {
		return c < 0x20 || c == '"' || c == '\\' || c >= 0x80
	})
}
