// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonopts

import "testing"

func TestJoin(t *testing.T) {
	var s Struct
	if s.MaxDepth() != DefaultMaxDepth || s.Indent() != DefaultIndent || s.IndentPrefix() != "" {
		t.Fatalf("zero Struct does not yield defaults: %d %q %q", s.MaxDepth(), s.Indent(), s.IndentPrefix())
	}

	s.Join(LegacyLiterals|1, MaxDepth(8), Indent("\t"), nil)
	if !s.Flags.Get(LegacyLiterals) {
		t.Errorf("LegacyLiterals not set")
	}
	if s.Flags.Has(StrictNumbers) {
		t.Errorf("StrictNumbers unexpectedly present")
	}
	if s.MaxDepth() != 8 || s.Indent() != "\t" {
		t.Errorf("MaxDepth/Indent = %d/%q, want 8/\\t", s.MaxDepth(), s.Indent())
	}

	// Later options override earlier ones.
	s.Join(LegacyLiterals|0, IndentPrefix("> "))
	if s.Flags.Get(LegacyLiterals) || !s.Flags.Has(LegacyLiterals) {
		t.Errorf("LegacyLiterals not overridden to false")
	}
	if s.IndentPrefix() != "> " {
		t.Errorf("IndentPrefix = %q, want %q", s.IndentPrefix(), "> ")
	}

	// Joining a Struct only copies what it has set.
	var dst Struct
	dst.Join(Compact|1, MaxDepth(3))
	dst.Join(&s)
	if !dst.Flags.Get(Compact) {
		t.Errorf("Compact lost when joining a Struct without it")
	}
	if dst.MaxDepth() != 8 {
		t.Errorf("MaxDepth = %d, want 8", dst.MaxDepth())
	}
}

func TestGetOption(t *testing.T) {
	legacy := func(v bool) Options {
		if v {
			return LegacyLiterals | 1
		}
		return LegacyLiterals | 0
	}
	depth := func(n int) Options { return MaxDepth(n) }

	opts := &Struct{}
	opts.Join(LegacyLiterals|1, MaxDepth(42))

	if v, ok := GetOption(opts, legacy); !ok || !v {
		t.Errorf("GetOption(legacy) = (%v, %v), want (true, true)", v, ok)
	}
	if v, ok := GetOption(opts, depth); !ok || v != 42 {
		t.Errorf("GetOption(depth) = (%v, %v), want (42, true)", v, ok)
	}
	if _, ok := GetOption(Indent("x"), depth); ok {
		t.Errorf("GetOption(depth) reported presence for an unrelated option")
	}
}
