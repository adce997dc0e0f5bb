// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"iter"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Member is a name/value member of an object.
type Member struct {
	Name  string
	Value Value
}

// MemberOrder selects the order in which object members are visited.
type MemberOrder uint8

const (
	// ByName visits members in ascending byte-wise order of their names.
	ByName MemberOrder = iota
	// ByInsertion visits members in the order their names first appeared.
	ByInsertion
)

// Object is a mapping from unique names to values.
//
// Setting a name that is already present replaces its value
// but keeps the position where the name first appeared.
// The zero value is an empty object ready to use.
type Object struct {
	members *orderedmap.OrderedMap[string, Value]
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{members: orderedmap.New[string, Value]()}
}

// Set associates v with name, replacing any previous value.
// The object takes a deep copy of v.
func (o *Object) Set(name string, v Value) {
	o.set(name, v.Clone())
}

// set is Set without copying; the object takes ownership of v.
func (o *Object) set(name string, v Value) {
	if o.members == nil {
		o.members = orderedmap.New[string, Value]()
	}
	o.members.Set(name, v)
}

// Get returns the value associated with name and reports whether it exists.
func (o *Object) Get(name string) (Value, bool) {
	if o == nil || o.members == nil {
		return Value{}, false
	}
	return o.members.Get(name)
}

// Has reports whether name is present.
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Len reports the number of members.
func (o *Object) Len() int {
	if o == nil || o.members == nil {
		return 0
	}
	return o.members.Len()
}

// Names returns the member names in the requested order.
func (o *Object) Names(order MemberOrder) []string {
	names := make([]string, 0, o.Len())
	if o.Len() == 0 {
		return names
	}
	for p := o.members.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	if order == ByName {
		slices.Sort(names)
	}
	return names
}

// All iterates over the members in the requested order.
func (o *Object) All(order MemberOrder) iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o.Len() == 0 {
			return
		}
		if order == ByInsertion {
			for p := o.members.Oldest(); p != nil; p = p.Next() {
				if !yield(p.Key, p.Value) {
					return
				}
			}
			return
		}
		for _, name := range o.Names(ByName) {
			v, _ := o.members.Get(name)
			if !yield(name, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of o, preserving insertion order.
func (o *Object) Clone() *Object {
	c := NewObject()
	if o.Len() == 0 {
		return c
	}
	for p := o.members.Oldest(); p != nil; p = p.Next() {
		c.members.Set(p.Key, p.Value.Clone())
	}
	return c
}

// Equal reports whether o and p have the same names mapped to equal values.
// Member order is not significant.
func (o *Object) Equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for name, v := range o.All(ByInsertion) {
		w, ok := p.Get(name)
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// ObjectView is a read-only view of the object held by a [Value],
// as returned by [Value.AsObject]. The zero ObjectView is empty.
type ObjectView struct {
	o *Object
}

func (v ObjectView) Len() int                                       { return v.o.Len() }
func (v ObjectView) Get(name string) (Value, bool)                  { return v.o.Get(name) }
func (v ObjectView) Has(name string) bool                           { return v.o.Has(name) }
func (v ObjectView) Names(order MemberOrder) []string               { return v.o.Names(order) }
func (v ObjectView) All(order MemberOrder) iter.Seq2[string, Value] { return v.o.All(order) }

// Clone returns a deep copy of the viewed object that may be modified freely.
func (v ObjectView) Clone() *Object { return v.o.Clone() }
