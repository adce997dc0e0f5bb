// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		v    Value
		kind Kind
		pred func(Value) bool
	}{
		{Value{}, KindNull, Value.IsNull},
		{Null(), KindNull, Value.IsNull},
		{Bool(false), KindBool, Value.IsBool},
		{String(""), KindString, Value.IsString},
		{ObjectOf(), KindObject, Value.IsObject},
		{ArrayOf(), KindArray, Value.IsArray},
	}
	preds := []func(Value) bool{Value.IsNull, Value.IsBool, Value.IsString, Value.IsObject, Value.IsArray}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.v.Kind())
		assert.True(t, tt.pred(tt.v), "predicate for %v", tt.kind)
		n := 0
		for _, p := range preds {
			if p(tt.v) {
				n++
			}
		}
		assert.Equal(t, 1, n, "exactly one predicate must hold for %v", tt.kind)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "boolean", KindBool.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "invalid", Kind(42).String())
}

func TestValueAccessors(t *testing.T) {
	b, err := Bool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	s, err := String("hello").AsString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	o, err := ObjectOf(Member{"k", Null()}).AsObject()
	require.NoError(t, err)
	assert.Equal(t, 1, o.Len())

	a, err := ArrayOf(Bool(true), Bool(false)).AsArray()
	require.NoError(t, err)
	assert.Len(t, a, 2)

	// The zero object Value is usable.
	o, err = Value{kind: KindObject}.AsObject()
	require.NoError(t, err)
	assert.Equal(t, 0, o.Len())
}

func TestValueAccessorMismatch(t *testing.T) {
	v := String("1")

	_, err := v.AsBool()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.True(t, errors.Is(err, Error))
	var kerr *KindError
	require.True(t, errors.As(err, &kerr))
	assert.Equal(t, KindBool, kerr.Want)
	assert.Equal(t, KindString, kerr.Got)

	_, err = Null().AsString()
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = ArrayOf().AsObject()
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = ObjectOf().AsArray()
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestObjectOfLastWriteWins(t *testing.T) {
	v := ObjectOf(
		Member{"a", String("1")},
		Member{"b", Null()},
		Member{"a", String("2")},
	)
	o, err := v.AsObject()
	require.NoError(t, err)
	assert.Equal(t, 2, o.Len())
	got, ok := o.Get("a")
	require.True(t, ok)
	assert.True(t, got.Equal(String("2")))
	assert.Equal(t, []string{"a", "b"}, o.Names(ByInsertion))
}

func TestConstructorsCopy(t *testing.T) {
	elems := []Value{String("x"), ArrayOf(String("y"))}
	v := ArrayOf(elems...)
	elems[0] = String("changed")
	got, err := v.AsArray()
	require.NoError(t, err)
	assert.True(t, got[0].Equal(String("x")), "ArrayOf must not alias its argument")

	o := NewObject()
	o.Set("k", String("v"))
	w := ObjectValue(o)
	o.Set("k", String("changed"))
	o.Set("extra", Null())
	wo, err := w.AsObject()
	require.NoError(t, err)
	assert.Equal(t, 1, wo.Len(), "ObjectValue must not alias its argument")
	kv, _ := wo.Get("k")
	assert.True(t, kv.Equal(String("v")))
}

func TestValueClone(t *testing.T) {
	orig := ObjectOf(
		Member{"list", ArrayOf(String("1"), ObjectOf(Member{"deep", Bool(true)}))},
		Member{"s", String("text")},
	)
	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	// An edited copy of the clone's object does not affect either tree.
	co, err := clone.AsObject()
	require.NoError(t, err)
	edited := co.Clone()
	edited.Set("s", String("changed"))
	edited.Set("extra", Null())
	assert.True(t, orig.Equal(clone))
	assert.Equal(t, 2, co.Len())
	assert.False(t, ObjectValue(edited).Equal(orig))
}

func TestAccessorsDoNotAlias(t *testing.T) {
	v, err := Parse(`{"a":[1,2]}`)
	require.NoError(t, err)
	want := v.Clone()

	// A plain copy shares storage with v, so its views must be read-only.
	w := v
	view, err := w.AsObject()
	require.NoError(t, err)
	editable := view.Clone()
	editable.Set("injected", Bool(true))

	list, ok := view.Get("a")
	require.True(t, ok)
	elems, err := list.AsArray()
	require.NoError(t, err)
	elems[0] = ObjectOf()

	assert.True(t, v.Equal(want), "v changed to %v", v)
	assert.Equal(t, `{"a":["1","2"]}`, v.String())
	assert.Equal(t, `{"a":["1","2"]}`, w.String())
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		x, y Value
		want bool
	}{
		{Null(), Null(), true},
		{Null(), Bool(false), false},
		{Bool(true), Bool(true), true},
		{Bool(true), Bool(false), false},
		{String("1"), String("1"), true},
		{String("1"), String("1.0"), false},
		{ArrayOf(), ArrayOf(), true},
		{ArrayOf(Null()), ArrayOf(), false},
		{ArrayOf(String("a"), String("b")), ArrayOf(String("b"), String("a")), false},
		{ObjectOf(), ObjectOf(), true},
		{ObjectOf(Member{"a", Null()}, Member{"b", Null()}), ObjectOf(Member{"b", Null()}, Member{"a", Null()}), true},
		{ObjectOf(Member{"a", Null()}), ObjectOf(Member{"b", Null()}), false},
		{ObjectOf(Member{"a", Null()}), ObjectOf(Member{"a", Bool(true)}), false},
		{ObjectOf(), ArrayOf(), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.x.Equal(tt.y), "%v.Equal(%v)", tt.x, tt.y)
		assert.Equal(t, tt.want, tt.y.Equal(tt.x), "%v.Equal(%v)", tt.y, tt.x)
	}
}

func TestValueString(t *testing.T) {
	v := ObjectOf(
		Member{"k", ArrayOf(Null(), Bool(true), String("a\"b"))},
		Member{"e", ObjectOf()},
	)
	assert.Equal(t, `{"e":{},"k":[null,true,"a\"b"]}`, v.String())
}
