// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

// Kind identifies which variant a [Value] holds.
// The zero Kind is [KindNull].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindString
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindString: "string",
	KindObject: "object",
	KindArray:  "array",
}

// String prints the kind in a humanly readable fashion.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}
