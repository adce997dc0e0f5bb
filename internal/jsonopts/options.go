// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonopts

// Bools represents zero or more boolean options.
//
// The least significant bit is the value bit and is shared by all options
// that are set together, so that LegacyLiterals|1 enables legacy literals
// and LegacyLiterals|0 disables them.
type Bools uint64

const (
	valueBit Bools = 1 << iota

	// LegacyLiterals advances past null, true and false by a fixed length
	// without verifying the remaining letters.
	LegacyLiterals
	// StrictNumbers requires digits in every segment of a number.
	StrictNumbers
	// InsertionOrder renders object members in first-occurrence order
	// instead of sorted order.
	InsertionOrder
	// RawStrings renders string content verbatim between quotes.
	RawStrings
	// Compact renders without any insignificant whitespace.
	Compact

	// Presence bits for the non-boolean options.
	hasMaxDepth
	hasIndent
	hasIndentPrefix

	allBools = LegacyLiterals | StrictNumbers | InsertionOrder | RawStrings | Compact
)

// Flags is a set of boolean options with a presence bit for each.
type Flags struct {
	Presence Bools
	Values   Bools
}

// Set sets the flags in b to the value bit of b.
func (f *Flags) Set(b Bools) {
	mask := b &^ valueBit
	f.Presence |= mask
	if b&valueBit != 0 {
		f.Values |= mask
	} else {
		f.Values &^= mask
	}
}

// Get reports whether any flag in b is set to true.
func (f Flags) Get(b Bools) bool {
	return f.Values&(b&^valueBit) != 0
}

// Has reports whether any flag in b has been explicitly set.
func (f Flags) Has(b Bools) bool {
	return f.Presence&(b&^valueBit) != 0
}

// Join copies every present flag of src into f.
func (f *Flags) Join(src Flags) {
	f.Presence |= src.Presence
	f.Values = f.Values&^src.Presence | src.Values&src.Presence
}

// MaxDepth bounds the nesting depth of objects and arrays when parsing.
type MaxDepth int

// Indent is the string repeated once per nesting level when rendering.
type Indent string

// IndentPrefix is the string written at the start of every rendered line
// after the first.
type IndentPrefix string

const (
	// DefaultMaxDepth is used when no MaxDepth option is present.
	DefaultMaxDepth = 1000
	// DefaultIndent is used when no Indent option is present.
	DefaultIndent = "  "
)

// Struct is the combination of all options.
// The zero value is ready to use and yields the defaults.
type Struct struct {
	Flags Flags

	maxDepth     int
	indent       string
	indentPrefix string
}

// Join merges srcs into dst, where later options override earlier ones.
func (dst *Struct) Join(srcs ...Options) {
	for _, src := range srcs {
		switch src := src.(type) {
		case nil:
		case *Struct:
			if src == nil {
				continue
			}
			dst.Flags.Join(src.Flags)
			if src.Flags.Has(hasMaxDepth) {
				dst.maxDepth = src.maxDepth
			}
			if src.Flags.Has(hasIndent) {
				dst.indent = src.indent
			}
			if src.Flags.Has(hasIndentPrefix) {
				dst.indentPrefix = src.indentPrefix
			}
		case Bools:
			dst.Flags.Set(src)
		case MaxDepth:
			dst.Flags.Set(hasMaxDepth | valueBit)
			dst.maxDepth = int(src)
		case Indent:
			dst.Flags.Set(hasIndent | valueBit)
			dst.indent = string(src)
		case IndentPrefix:
			dst.Flags.Set(hasIndentPrefix | valueBit)
			dst.indentPrefix = string(src)
		}
	}
}

// MaxDepth returns the configured depth bound or DefaultMaxDepth.
func (s *Struct) MaxDepth() int {
	if s.Flags.Has(hasMaxDepth) {
		return s.maxDepth
	}
	return DefaultMaxDepth
}

// Indent returns the configured indent unit or DefaultIndent.
func (s *Struct) Indent() string {
	if s.Flags.Has(hasIndent) {
		return s.indent
	}
	return DefaultIndent
}

// IndentPrefix returns the configured indent prefix.
func (s *Struct) IndentPrefix() string {
	return s.indentPrefix
}

// GetOption returns the value stored in opts for the option
// produced by setter, reporting whether it is present.
func GetOption[T any](opts Options, setter func(T) Options) (T, bool) {
	var zero T
	var s Struct
	s.Join(opts)
	switch opt := setter(zero).(type) {
	case Bools:
		if opt&allBools == 0 || !s.Flags.Has(opt) {
			return zero, false
		}
		v, _ := any(s.Flags.Get(opt)).(T)
		return v, true
	case MaxDepth:
		if !s.Flags.Has(hasMaxDepth) {
			return zero, false
		}
		v, _ := any(s.maxDepth).(T)
		return v, true
	case Indent:
		if !s.Flags.Has(hasIndent) {
			return zero, false
		}
		v, _ := any(s.indent).(T)
		return v, true
	case IndentPrefix:
		if !s.Flags.Has(hasIndentPrefix) {
			return zero, false
		}
		v, _ := any(s.indentPrefix).(T)
		return v, true
	}
	return zero, false
}
