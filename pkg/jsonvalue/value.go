// Package jsonvalue provides an ordered JSON value tree with strict parsing and
// serialization that only escapes what JSON requires.
package jsonvalue

import (
	"strconv"
)

// Kind identifies the JSON type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object. Members keep insertion order.
type Member struct {
	Key   string
	Value *Value
}

// Value is a node of a parsed JSON document.
// Numbers keep their literal text so that re-serialization is exact.
type Value struct {
	kind    Kind
	b       bool
	s       string // string contents, or number literal
	members []Member
	index   map[string]int // key → position in members
	items   []*Value
}

// NewNull returns a null value.
func NewNull() *Value { return &Value{kind: KindNull} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewNumber returns a number value from its JSON literal (e.g. "1.5e3").
// The literal is not validated.
func NewNumber(literal string) *Value { return &Value{kind: KindNumber, s: literal} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{kind: KindString, s: s} }

// NewObject returns an empty object.
func NewObject() *Value {
	return &Value{kind: KindObject, index: make(map[string]int)}
}

// NewArray returns an array holding items in order.
func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// Kind returns the JSON type of v.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the boolean held by a KindBool value.
func (v *Value) Bool() bool { return v.b }

// Str returns the contents of a KindString value.
func (v *Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Literal returns the JSON literal of a KindNumber value.
func (v *Value) Literal() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.s
}

// Members returns the object members in insertion order. The slice is shared
// with v; callers may replace Member.Value in place but must not append.
func (v *Value) Members() []Member { return v.members }

// Items returns the array elements in order. The slice is shared with v.
func (v *Value) Items() []*Value { return v.items }

// Len returns the number of members of an object or elements of an array.
func (v *Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.items)
	default:
		return 0
	}
}

// Get returns the value stored under key in an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.members[i].Value, true
}

// Set stores val under key. An existing key keeps its position; a new key is
// appended. Set is a no-op on non-object values.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindObject {
		return
	}
	if i, ok := v.index[key]; ok {
		v.members[i].Value = val
		return
	}
	v.index[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Append adds val to the end of an array. Append is a no-op on non-array values.
func (v *Value) Append(val *Value) {
	if v.kind != KindArray {
		return
	}
	v.items = append(v.items, val)
}

// Equal reports whether v and other hold the same JSON value. Object member
// order is ignored and numbers with different literals are compared numerically.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindNumber:
		if v.s == other.s {
			return true
		}
		a, errA := strconv.ParseFloat(v.s, 64)
		b, errB := strconv.ParseFloat(other.s, 64)
		return errA == nil && errB == nil && a == b
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for _, m := range v.members {
			ov, ok := other.Get(m.Key)
			if !ok || !m.Value.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
