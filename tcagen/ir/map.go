package ir

import (
	"fmt"
	"strconv"
)

// Key is a map key: either an integer or a string.
type Key struct {
	str   string
	index int
	isInt bool
}

// StrKey returns a string key.
func StrKey(s string) Key { return Key{str: s} }

// IntKey returns an integer key.
func IntKey(i int) Key { return Key{index: i, isInt: true} }

// IsInt reports whether the key is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of an integer key.
func (k Key) Int() int { return k.index }

// String returns the key as text. Integer keys are formatted in base 10.
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.index)
	}
	return k.str
}

// Entry is a single key-value pair of a map.
type Entry struct {
	Key   Key
	Value Value
}

// MapValue is an insertion-ordered mapping.
type MapValue struct {
	entries []Entry
	index   map[Key]int
}

func (*MapValue) Kind() ValueKind { return KindMap }
func (*MapValue) sealed()         {}

// Map returns an empty map.
func Map() *MapValue {
	return &MapValue{index: make(map[Key]int)}
}

// MapOf returns a map with the given string-keyed pairs, in argument order.
// Arguments alternate key, value; values are converted with From. Int
// keys become integer keys.
func MapOf(pairs ...any) *MapValue {
	m := Map()
	for i := 0; i+1 < len(pairs); i += 2 {
		switch key := pairs[i].(type) {
		case int:
			m.SetKey(IntKey(key), From(pairs[i+1]))
		case string:
			m.Set(key, From(pairs[i+1]))
		default:
			m.Set(fmt.Sprint(key), From(pairs[i+1]))
		}
	}
	return m
}

// Len returns the number of entries.
func (m *MapValue) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns the entries in insertion order.
// The returned slice must not be modified.
func (m *MapValue) Entries() []Entry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Keys returns the keys in insertion order.
func (m *MapValue) Keys() []Key {
	keys := make([]Key, 0, m.Len())
	for _, e := range m.Entries() {
		keys = append(keys, e.Key)
	}
	return keys
}

// Set stores v under a string key. An existing key keeps its position.
func (m *MapValue) Set(key string, v Value) *MapValue {
	return m.SetKey(StrKey(key), v)
}

// SetKey stores v under k. An existing key keeps its position.
func (m *MapValue) SetKey(k Key, v Value) *MapValue {
	if m.index == nil {
		m.index = make(map[Key]int)
	}
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = v
		return m
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: k, Value: v})
	return m
}

// Get returns the value stored under a string key.
func (m *MapValue) Get(key string) (Value, bool) {
	return m.GetKey(StrKey(key))
}

// GetKey returns the value stored under k.
func (m *MapValue) GetKey(k Key) (Value, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}
	i, ok := m.index[k]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// GetString returns the string stored under key, if the value is a string.
func (m *MapValue) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(StringValue)
	return string(s), ok
}

// Delete removes a string key. Remaining entries keep their order.
func (m *MapValue) Delete(key string) bool {
	return m.DeleteKey(StrKey(key))
}

// DeleteKey removes k. Remaining entries keep their order.
func (m *MapValue) DeleteKey(k Key) bool {
	if m == nil || m.index == nil {
		return false
	}
	i, ok := m.index[k]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, k)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
	return true
}

// IsList reports whether the keys are the integers 0..n-1 in order.
// Such maps are emitted as positional lists. An empty map is not a list.
func (m *MapValue) IsList() bool {
	if m.Len() == 0 {
		return false
	}
	for i, e := range m.entries {
		if !e.Key.isInt || e.Key.index != i {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of m.
func (m *MapValue) Clone() *MapValue {
	if m == nil {
		return nil
	}
	out := Map()
	for _, e := range m.entries {
		out.SetKey(e.Key, Clone(e.Value))
	}
	return out
}

// Clone returns a deep copy of v. Scalars are returned as-is.
func Clone(v Value) Value {
	switch t := v.(type) {
	case *MapValue:
		return t.Clone()
	case *ListValue:
		if t == nil {
			return t
		}
		items := make([]Value, len(t.Items))
		for i, item := range t.Items {
			items[i] = Clone(item)
		}
		return &ListValue{Items: items}
	case *EnumValue:
		if t == nil {
			return t
		}
		c := *t
		return &c
	default:
		return v
	}
}
