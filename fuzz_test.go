// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"errors"
	"testing"

	"github.com/jsontree/jsontree/internal/jsontest"
)

func FuzzParse(f *testing.F) {
	// Add a number of inputs to the corpus including valid and invalid data.
	for _, td := range jsontest.Data {
		f.Add([]byte(td.Data))
	}
	for _, s := range []string{"", "nul", `{"a":1,}`, `[1 2]`, `"A"`, `"abc`, "[[[[[[[[", "-1.e+"} {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, b []byte) {
		v, err := Parse(b, MaxDepth(64))
		if err != nil {
			var serr *SyntacticError
			if !errors.As(err, &serr) {
				t.Fatalf("Parse error is %T, want *SyntacticError", err)
			}
			if serr.ByteOffset < 0 || serr.ByteOffset > int64(len(b)) {
				t.Fatalf("ByteOffset %d out of range [0, %d]", serr.ByteOffset, len(b))
			}
			return
		}

		// Anything that parses must survive a render round-trip.
		for _, opts := range [][]Options{nil, {Compact(true)}, {InsertionOrder(true)}} {
			text := Render(v, opts...)
			got, err := Parse(text, MaxDepth(64))
			if err != nil {
				t.Fatalf("Parse(Render(v)) error: %v\ninput: %q\nrendered: %q", err, b, text)
			}
			if !got.Equal(v) {
				t.Fatalf("Parse(Render(v)) mismatch\ninput: %q\nrendered: %q", b, text)
			}
		}
	})
}
