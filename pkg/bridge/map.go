package bridge

import (
	"fmt"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v2"
)

// Map is the untyped, string-keyed configuration object handed over by the
// host bridge. Values are scalars (bool, number, string) or nil.
type Map map[string]any

var jsonAPI = sonic.Config{UseNumber: true}.Froze()

// Get returns the Value stored under key, or the absent Value if m has no such key.
func (m Map) Get(key string) Value {
	raw, ok := m[key]
	if !ok {
		return Absent()
	}
	return Of(raw)
}

// Has reports whether key exists in m, regardless of its value.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// IsEmpty reports whether m is nil or holds no keys.
func (m Map) IsEmpty() bool {
	return len(m) == 0
}

// DecodeJSON parses a JSON object into a Map. Integers are preserved exactly.
// A JSON null document yields a nil Map.
func DecodeJSON(data []byte) (Map, error) {
	var m Map
	if err := jsonAPI.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode json payload: %w", err)
	}
	return m, nil
}

// DecodeYAML parses a YAML mapping into a Map. An empty document yields a nil Map.
func DecodeYAML(data []byte) (Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode yaml payload: %w", err)
	}
	return m, nil
}

// EncodeYAML renders m as YAML with keys in sorted order.
func EncodeYAML(m Map) ([]byte, error) {
	out, err := yaml.Marshal(map[string]any(m))
	if err != nil {
		return nil, fmt.Errorf("encode yaml payload: %w", err)
	}
	return out, nil
}
