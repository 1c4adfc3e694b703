package row

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the row as a JSON object with keys in field order
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", f.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the value as a JSON string, object or array
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindRow:
		return v.row.MarshalJSON()
	case KindTable:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, r := range v.table {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := r.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return json.Marshal(v.str)
	}
}

// MarshalYAML encodes the row as a YAML mapping with keys in field order
func (r Row) MarshalYAML() (interface{}, error) {
	return r.node(), nil
}

// MarshalYAML encodes the value as a YAML scalar, mapping or sequence
func (v Value) MarshalYAML() (interface{}, error) {
	return v.node(), nil
}

func (r Row) node() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r.fields {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			f.Value.node(),
		)
	}
	return n
}

func (v Value) node() *yaml.Node {
	switch v.kind {
	case KindRow:
		return v.row.node()
	case KindTable:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, r := range v.table {
			n.Content = append(n.Content, r.node())
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
	}
}
