package convert

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is an insertion-ordered mapping that marshals to block-style YAML.
// yaml.v3 sorts plain maps alphabetically; frontmatter keys must keep their
// declared order, so the record builds an explicit node tree instead.
type Record struct {
	keys   []string
	values []any
}

// Set appends a key/value pair. Values may be scalars, time.Time, *Record,
// []*Record, or []string.
func (r *Record) Set(key string, value any) {
	r.keys = append(r.keys, key)
	r.values = append(r.values, value)
}

// Len reports the number of keys in the record.
func (r *Record) Len() int {
	return len(r.keys)
}

// Get returns the value stored under key, for tests and introspection.
func (r *Record) Get(key string) (any, bool) {
	for i, k := range r.keys {
		if k == key {
			return r.values[i], true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// MarshalYAML implements yaml.Marshaler with an ordered mapping node.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, key := range r.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, fmt.Errorf("encoding key %s: %w", key, err)
		}
		valueNode, err := encodeValue(r.values[i])
		if err != nil {
			return nil, fmt.Errorf("encoding value for %s: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// encodeValue converts a record value into a yaml node, recursing into
// nested records and sequences.
func encodeValue(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *Record:
		marshaled, err := v.MarshalYAML()
		if err != nil {
			return nil, err
		}
		return marshaled.(*yaml.Node), nil
	case []*Record:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v {
			child, err := encodeValue(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	case []string:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v {
			child := &yaml.Node{}
			if err := child.Encode(item); err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// renderFrontmatter serializes a record between horizontal-rule delimiters.
func renderFrontmatter(record *Record) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(record); err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("flushing frontmatter: %w", err)
	}

	buf.WriteString("---\n")
	return buf.String(), nil
}
