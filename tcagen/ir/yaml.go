package ir

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements yaml.Unmarshaler. Mapping keys keep document order.
func (m *MapValue) UnmarshalYAML(node *yaml.Node) error {
	v, err := FromNode(node)
	if err != nil {
		return err
	}
	mv, ok := v.(*MapValue)
	if !ok {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, v.Kind())
	}
	*m = *mv
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *ListValue) UnmarshalYAML(node *yaml.Node) error {
	v, err := FromNode(node)
	if err != nil {
		return err
	}
	lv, ok := v.(*ListValue)
	if !ok {
		return fmt.Errorf("line %d: expected a sequence, got %s", node.Line, v.Kind())
	}
	*l = *lv
	return nil
}

// FromNode converts a YAML node into a literal value.
// Mappings keep their key order; integer keys become integer keys.
func FromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return FromNode(node.Content[0])
	case yaml.AliasNode:
		return FromNode(node.Alias)
	case yaml.ScalarNode:
		return fromScalar(node)
	case yaml.SequenceNode:
		l := List()
		for _, child := range node.Content {
			v, err := FromNode(child)
			if err != nil {
				return nil, err
			}
			l.Append(v)
		}
		return l, nil
	case yaml.MappingNode:
		m := Map()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			v, err := FromNode(valueNode)
			if err != nil {
				return nil, err
			}
			if keyNode.ShortTag() == "!!int" {
				if n, err := strconv.Atoi(keyNode.Value); err == nil {
					m.SetKey(IntKey(n), v)
					continue
				}
			}
			m.Set(keyNode.Value, v)
		}
		return m, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, err
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return Float(f), nil
	default:
		return String(node.Value), nil
	}
}
