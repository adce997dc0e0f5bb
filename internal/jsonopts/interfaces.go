// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonopts implements the option set shared by parsing and rendering.
package jsonopts

// NotForPublicUse is a marker type that an API is for internal use only.
// It does not perfectly prevent usage of that API, but helps to restrict usage.
type NotForPublicUse struct{}

// Options is the common options type shared by parsing and rendering.
// Only types declared in this package implement it.
type Options interface {
	// JSONOptions is exported so that the root package can
	// refer to the interface, but it is not callable by users.
	JSONOptions(NotForPublicUse)
}

func (*Struct) JSONOptions(NotForPublicUse)      {}
func (Bools) JSONOptions(NotForPublicUse)        {}
func (MaxDepth) JSONOptions(NotForPublicUse)     {}
func (Indent) JSONOptions(NotForPublicUse)       {}
func (IndentPrefix) JSONOptions(NotForPublicUse) {}
