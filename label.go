package ctmigrate

import (
	"iter"
	"strings"
)

// LabelPrefix starts every label reference.
const LabelPrefix = "LLL:"

// IsLabelRef reports whether s is a label reference (LLL:<file>:<key>).
func IsLabelRef(s string) bool {
	return strings.HasPrefix(s, LabelPrefix)
}

// LabelMap maps label keys to literal strings in insertion order.
// Setting an existing key replaces its value in place.
type LabelMap struct {
	keys   []string
	values map[string]string
}

// NewLabelMap returns an empty label map.
func NewLabelMap() *LabelMap {
	return &LabelMap{values: make(map[string]string)}
}

// Set stores value under key.
func (m *LabelMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *LabelMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of labels.
func (m *LabelMap) Len() int { return len(m.keys) }

// Keys returns the label keys in insertion order.
func (m *LabelMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// All iterates over key, value pairs in insertion order.
func (m *LabelMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// LabelExtractor moves literal strings into a label map and replaces them
// with references into the language file the map is written to.
type LabelExtractor struct {
	// File is the language file in EXT: notation.
	File string

	// Labels collects the extracted strings.
	Labels *LabelMap
}

// NewLabelExtractor returns an extractor for the given language file.
func NewLabelExtractor(file string) *LabelExtractor {
	return &LabelExtractor{File: file, Labels: NewLabelMap()}
}

// Ref returns the label reference for key.
func (x *LabelExtractor) Ref(key string) string {
	return LabelPrefix + x.File + ":" + key
}

// Extract stores value under key and returns the reference to it.
// Values that already are label references are returned unchanged.
func (x *LabelExtractor) Extract(value, key string) string {
	if IsLabelRef(value) {
		return value
	}
	x.Labels.Set(key, value)
	return x.Ref(key)
}

// ExtractOptional is Extract for optional texts: empty values stay empty.
func (x *LabelExtractor) ExtractOptional(value, key string) string {
	if value == "" {
		return ""
	}
	return x.Extract(value, key)
}
