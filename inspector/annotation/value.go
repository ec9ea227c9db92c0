package annotation

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the type held by a Value
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value represents an annotation value, one of bool, signed integer or string
type Value struct {
	kind   Kind
	flag   bool
	number int64
	text   string
}

// Bool creates a boolean value
func Bool(v bool) Value {
	return Value{kind: KindBool, flag: v}
}

// Number creates a numeric value
func Number(v int64) Value {
	return Value{kind: KindNumber, number: v}
}

// String creates a string value
func String(v string) Value {
	return Value{kind: KindString, text: v}
}

// Kind returns the value kind
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean value, ok is false for other kinds
func (v Value) Bool() (value bool, ok bool) {
	return v.flag, v.kind == KindBool
}

// Number returns the numeric value, ok is false for other kinds
func (v Value) Number() (value int64, ok bool) {
	return v.number, v.kind == KindNumber
}

// Text returns the string value, ok is false for other kinds
func (v Value) Text() (value string, ok bool) {
	return v.text, v.kind == KindString
}

// Interface returns the value as bool, int64 or string
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindNumber:
		return v.number
	default:
		return v.text
	}
}

// String returns the value rendered as source text
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindNumber:
		return strconv.FormatInt(v.number, 10)
	default:
		return strconv.Quote(v.text)
	}
}

// MarshalJSON encodes the value as a JSON bool, number or string
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes the value as a YAML scalar
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

// Annotations maps annotation keys to values
type Annotations map[string]Value

// Equal returns true if both maps hold the same keys and values
func (a Annotations) Equal(other Annotations) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		if o, ok := other[k]; !ok || o != v {
			return false
		}
	}
	return true
}
