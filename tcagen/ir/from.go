package ir

import (
	"fmt"
	"reflect"
	"sort"
)

// From converts a Go value into a literal value.
//
//   - nil becomes Null
//   - Value implementations are returned unchanged
//   - bool, integer, float and string kinds become the matching scalar
//   - slices and arrays become lists
//   - maps with string or integer keys become maps; string keys are sorted,
//     integer keys are ordered numerically
//   - fmt.Stringer values become unit enum cases named by String()
//
// Anything else becomes a Raw value holding fmt.Sprint(v).
func From(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case []any:
		l := List()
		for _, item := range t {
			l.Append(From(item))
		}
		return l
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := Map()
		for _, k := range keys {
			m.Set(k, From(t[k]))
		}
		return m
	case fmt.Stringer:
		return UnitEnum(t.String())
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		l := List()
		for i := 0; i < rv.Len(); i++ {
			l.Append(From(rv.Index(i).Interface()))
		}
		return l
	case reflect.Map:
		return fromReflectMap(rv)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return From(rv.Elem().Interface())
	}
	return Raw(fmt.Sprint(rv.Interface()))
}

func fromReflectMap(rv reflect.Value) Value {
	switch rv.Type().Key().Kind() {
	case reflect.String:
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		m := Map()
		for _, k := range keys {
			m.Set(k, From(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()))
		}
		return m
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		keys := make([]reflect.Value, 0, rv.Len())
		keys = append(keys, rv.MapKeys()...)
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
		m := Map()
		for _, k := range keys {
			m.SetKey(IntKey(int(k.Int())), From(rv.MapIndex(k).Interface()))
		}
		return m
	}
	return Raw(fmt.Sprint(rv.Interface()))
}
