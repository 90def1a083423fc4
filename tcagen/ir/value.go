// Package ir defines the literal value tree that code generators turn into
// source text. Values are language-agnostic; the php package renders them as
// PHP array literals.
package ir

import "strconv"

// ValueKind identifies the category of a literal value.
type ValueKind int

const (
	// Scalars
	KindNull   ValueKind = iota // null
	KindBool                    // true or false
	KindInt                     // integer
	KindFloat                   // floating point number
	KindString                  // quoted string
	KindEnum                    // enumeration case, backed or unit
	KindRaw                     // verbatim source expression

	// Containers
	KindList // positional sequence
	KindMap  // ordered key-value mapping
)

// String returns the string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindEnum:
		return "Enum"
	case KindRaw:
		return "Raw"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Value is the base interface for all literal values.
type Value interface {
	// Kind returns the value kind for type switching.
	Kind() ValueKind

	// Ensure only types in this package can implement Value.
	sealed()
}

// NullValue is the null literal.
type NullValue struct{}

func (NullValue) Kind() ValueKind { return KindNull }
func (NullValue) sealed()         {}

// BoolValue is a boolean literal.
type BoolValue bool

func (BoolValue) Kind() ValueKind { return KindBool }
func (BoolValue) sealed()         {}

// IntValue is an integer literal.
type IntValue int64

func (IntValue) Kind() ValueKind { return KindInt }
func (IntValue) sealed()         {}

// FloatValue is a floating point literal.
type FloatValue float64

func (FloatValue) Kind() ValueKind { return KindFloat }
func (FloatValue) sealed()         {}

// StringValue is a string literal. Generators quote and escape it.
type StringValue string

func (StringValue) Kind() ValueKind { return KindString }
func (StringValue) sealed()         {}

// RawValue is emitted verbatim. It carries values the tree has no literal
// form for.
type RawValue string

func (RawValue) Kind() ValueKind { return KindRaw }
func (RawValue) sealed()         {}

// EnumValue is a case of an enumeration.
//
// A backed case carries a scalar Backing value and is emitted as that value.
// A unit case (Backing == nil) is emitted as its Name.
type EnumValue struct {
	// Name is the symbolic case name.
	Name string

	// Backing is the scalar the case is backed by, or nil for unit cases.
	Backing Value
}

func (*EnumValue) Kind() ValueKind { return KindEnum }
func (*EnumValue) sealed()         {}

// Literal returns the string an emitter quotes for this case.
func (e *EnumValue) Literal() string {
	switch b := e.Backing.(type) {
	case nil:
		return e.Name
	case StringValue:
		return string(b)
	case IntValue:
		return strconv.FormatInt(int64(b), 10)
	case FloatValue:
		return strconv.FormatFloat(float64(b), 'f', -1, 64)
	case BoolValue:
		if b {
			return "1"
		}
		return ""
	default:
		return e.Name
	}
}

// ListValue is a positional sequence.
type ListValue struct {
	Items []Value
}

func (*ListValue) Kind() ValueKind { return KindList }
func (*ListValue) sealed()         {}

// Len returns the number of items.
func (l *ListValue) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Append adds items to the end of the list.
func (l *ListValue) Append(items ...Value) *ListValue {
	l.Items = append(l.Items, items...)
	return l
}

// Null returns the null literal.
func Null() NullValue { return NullValue{} }

// Bool returns a boolean literal.
func Bool(b bool) BoolValue { return BoolValue(b) }

// Int returns an integer literal.
func Int(i int64) IntValue { return IntValue(i) }

// Float returns a floating point literal.
func Float(f float64) FloatValue { return FloatValue(f) }

// String returns a string literal.
func String(s string) StringValue { return StringValue(s) }

// Raw returns a verbatim expression.
func Raw(expr string) RawValue { return RawValue(expr) }

// BackedEnum returns an enum case backed by a string value.
func BackedEnum(name, value string) *EnumValue {
	return &EnumValue{Name: name, Backing: StringValue(value)}
}

// UnitEnum returns an enum case without a backing value.
func UnitEnum(name string) *EnumValue {
	return &EnumValue{Name: name}
}

// List returns a list of the given items.
func List(items ...Value) *ListValue {
	return &ListValue{Items: items}
}

// IsEmpty reports whether v is null, an empty string, false, zero, or an
// empty container.
func IsEmpty(v Value) bool {
	switch t := v.(type) {
	case nil, NullValue:
		return true
	case BoolValue:
		return !bool(t)
	case IntValue:
		return t == 0
	case FloatValue:
		return t == 0
	case StringValue:
		return t == ""
	case *ListValue:
		return t.Len() == 0
	case *MapValue:
		return t.Len() == 0
	default:
		return false
	}
}
