// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import "slices"

// Value is a node in a tree of values, which may be one of the following:
//   - a null
//   - a boolean (i.e., true or false)
//   - a string (e.g., "hello, world!")
//   - an object (e.g., {"fizz":"buzz"})
//   - an array (e.g., ["fizz","buzz"])
//
// Numbers are represented as strings holding the verbatim numeric literal.
//
// A Value is immutable once constructed. Constructors copy their inputs
// and accessors only expose copies or read-only views,
// so no two trees ever share a modifiable node.
// The zero Value is a null.
type Value struct {
	// NOTE: This is an opaque type that functionally represents a union type.
	// Only the field selected by kind is meaningful.
	kind Kind
	b    bool
	s    string
	obj  *Object
	arr  []Value
}

// Null constructs a null Value.
func Null() Value {
	return Value{}
}

// Bool constructs a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String constructs a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// ObjectOf constructs an object Value from members.
// When a name appears more than once, the last value wins.
func ObjectOf(members ...Member) Value {
	o := NewObject()
	for _, m := range members {
		o.Set(m.Name, m.Value)
	}
	return objectValue(o)
}

// ObjectValue constructs an object Value holding a deep copy of o.
func ObjectValue(o *Object) Value {
	return objectValue(o.Clone())
}

// ArrayOf constructs an array Value holding deep copies of elems.
func ArrayOf(elems ...Value) Value {
	arr := make([]Value, len(elems))
	for i, e := range elems {
		arr[i] = e.Clone()
	}
	return arrayValue(arr)
}

// objectValue and arrayValue take ownership of their argument.
func objectValue(o *Object) Value { return Value{kind: KindObject, obj: o} }
func arrayValue(a []Value) Value  { return Value{kind: KindArray, arr: a} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsObject() bool { return v.kind == KindObject }
func (v Value) IsArray() bool  { return v.kind == KindArray }

// AsBool returns the boolean held by v.
// It reports a [*KindError] if v is not a boolean.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &KindError{Want: KindBool, Got: v.kind}
	}
	return v.b, nil
}

// AsString returns the string held by v.
// It reports a [*KindError] if v is not a string.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", &KindError{Want: KindString, Got: v.kind}
	}
	return v.s, nil
}

// AsObject returns a read-only view of the object held by v.
// It reports a [*KindError] if v is not an object.
func (v Value) AsObject() (ObjectView, error) {
	if v.kind != KindObject {
		return ObjectView{}, &KindError{Want: KindObject, Got: v.kind}
	}
	return ObjectView{v.obj}, nil
}

// AsArray returns a copy of the elements held by v.
// Modifying the returned slice does not affect v.
// It reports a [*KindError] if v is not an array.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, &KindError{Want: KindArray, Got: v.kind}
	}
	return slices.Clone(v.arr), nil
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindObject:
		return objectValue(v.obj.Clone())
	case KindArray:
		return ArrayOf(v.arr...)
	default:
		return v
	}
}

// Equal reports whether v and w hold the same kind and content.
// Object members are compared without regard to order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == w.b
	case KindString:
		return v.s == w.s
	case KindObject:
		return v.obj.Equal(w.obj)
	case KindArray:
		return slices.EqualFunc(v.arr, w.arr, Value.Equal)
	default:
		return true
	}
}

// String renders v compactly. It is intended for debugging;
// use [Render] to control the output format.
func (v Value) String() string {
	return Render(v, Compact(true))
}
