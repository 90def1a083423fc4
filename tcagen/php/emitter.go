// Package php renders literal value trees as PHP source text.
package php

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/webcoast/ctmigrate/tcagen/ir"
)

// DefaultIndent is one indentation level of generated PHP code.
const DefaultIndent = "    "

// Emitter handles PHP code emission for literal values.
type Emitter struct {
	// Indent is the indentation unit (default: four spaces).
	Indent string
}

// Array returns v as a PHP short array literal using the default emitter.
// See Emitter.EmitArray for the layout.
func Array(v ir.Value, level int) string {
	var buf bytes.Buffer
	(&Emitter{}).EmitArray(&buf, v, level)
	return buf.String()
}

// TrimArray removes the separator Array leaves after the closing bracket,
// along with surrounding whitespace, so the literal can be embedded in an
// expression.
func TrimArray(code string) string {
	return strings.Trim(code, " \n\r\t\v\x00,")
}

// TrimArrayRight removes the trailing separator and whitespace only, keeping
// the indentation in front of the opening bracket.
func TrimArrayRight(code string) string {
	return strings.TrimRight(code, "\n\r\t\v\x00,")
}

// EmitArray writes a map or list as a PHP array literal.
//
// The opening bracket is written without indentation, entries are indented
// by level+1 units and the closing bracket by level units, followed by ",\n".
// Maps whose keys are exactly 0..n-1 and lists are written without keys.
// Scalars are written as by EmitScalar.
func (e *Emitter) EmitArray(buf *bytes.Buffer, v ir.Value, level int) {
	indent := e.indent()
	switch t := v.(type) {
	case *ir.MapValue:
		buf.WriteString("[\n")
		isList := t.IsList()
		for _, entry := range t.Entries() {
			buf.WriteString(strings.Repeat(indent, level+1))
			if !isList {
				buf.WriteString(FormatKey(entry.Key))
				buf.WriteString(" => ")
			}
			e.emitEntryValue(buf, entry.Value, level)
		}
		buf.WriteString(strings.Repeat(indent, level))
		buf.WriteString("],\n")
	case *ir.ListValue:
		buf.WriteString("[\n")
		if t != nil {
			for _, item := range t.Items {
				buf.WriteString(strings.Repeat(indent, level+1))
				e.emitEntryValue(buf, item, level)
			}
		}
		buf.WriteString(strings.Repeat(indent, level))
		buf.WriteString("],\n")
	default:
		e.EmitScalar(buf, v)
	}
}

func (e *Emitter) emitEntryValue(buf *bytes.Buffer, v ir.Value, level int) {
	switch v.(type) {
	case *ir.MapValue, *ir.ListValue:
		// nested arrays end with their own separator
		e.EmitArray(buf, v, level+1)
	default:
		e.EmitScalar(buf, v)
		buf.WriteString(",\n")
	}
}

// EmitScalar writes a non-container value.
func (e *Emitter) EmitScalar(buf *bytes.Buffer, v ir.Value) {
	buf.WriteString(Scalar(v))
}

// Scalar returns the PHP source for a non-container value.
// Enum cases are quoted: backed cases by their value, unit cases by name.
// Raw values are returned verbatim.
func Scalar(v ir.Value) string {
	switch t := v.(type) {
	case nil, ir.NullValue:
		return "null"
	case ir.BoolValue:
		if t {
			return "true"
		}
		return "false"
	case ir.IntValue:
		return strconv.FormatInt(int64(t), 10)
	case ir.FloatValue:
		return strconv.FormatFloat(float64(t), 'f', -1, 64)
	case ir.StringValue:
		return Quote(string(t))
	case *ir.EnumValue:
		return Quote(t.Literal())
	case ir.RawValue:
		return string(t)
	case *ir.MapValue, *ir.ListValue:
		return TrimArray(Array(v, 0))
	default:
		return ""
	}
}

// FormatKey returns an array key: integers bare, strings quoted.
func FormatKey(k ir.Key) string {
	if k.IsInt() {
		return strconv.Itoa(k.Int())
	}
	return Quote(k.String())
}

var slashes = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	"\x00", `\0`,
)

// Quote returns s as a single-quoted PHP string. Quotes, backslashes and NUL
// bytes are backslash-escaped.
func Quote(s string) string {
	return "'" + slashes.Replace(s) + "'"
}

func (e *Emitter) indent() string {
	if e.Indent == "" {
		return DefaultIndent
	}
	return e.Indent
}
