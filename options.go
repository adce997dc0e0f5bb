// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import "github.com/jsontree/jsontree/internal/jsonopts"

// Options configures [Parse], [Render], [AppendRender], and [RenderTo]
// with specific features.
//
// List of options and what operations it affects:
//
//   - [MaxDepth] affects parsing only.
//   - [LegacyLiterals] affects parsing only.
//   - [StrictNumbers] affects parsing only.
//   - [WithIndent] affects rendering only.
//   - [WithIndentPrefix] affects rendering only.
//   - [InsertionOrder] affects rendering only.
//   - [RawStrings] affects rendering only.
//   - [Compact] affects rendering only.
//
// Options that do not affect a particular operation are ignored.
type Options = jsonopts.Options

// DefaultMaxDepth is the nesting depth accepted when [MaxDepth] is not set.
const DefaultMaxDepth = jsonopts.DefaultMaxDepth

// JoinOptions coalesces the provided list of options into a single Options.
// Properties set in latter options override previously set properties.
func JoinOptions(srcs ...Options) Options {
	var dst jsonopts.Struct
	dst.Join(srcs...)
	return &dst
}

// GetOption returns the value stored in opts with the provided setter,
// reporting whether the value is present.
//
// Example usage:
//
//	v, ok := jsontree.GetOption(opts, jsontree.MaxDepth)
func GetOption[T any](opts Options, setter func(T) Options) (T, bool) {
	return jsonopts.GetOption(opts, setter)
}

// MaxDepth bounds how deeply objects and arrays may nest.
// Input nested deeper than n fails with [ErrMaxDepthExceeded].
// A top-level object or array has a depth of 1.
// If unset, [DefaultMaxDepth] applies.
func MaxDepth(n int) Options {
	return jsonopts.MaxDepth(n)
}

// LegacyLiterals specifies that null, true, and false are recognized by
// their first letter alone, skipping a fixed number of characters
// without verifying the rest of the literal.
// By default the entire literal must be present.
func LegacyLiterals(v bool) Options {
	if v {
		return jsonopts.LegacyLiterals | 1
	} else {
		return jsonopts.LegacyLiterals | 0
	}
}

// StrictNumbers specifies that the integer part, the fraction and
// the exponent of a number must each contain at least one digit.
// By default a number is whatever the greedy scan of
// sign, digits, fraction and exponent consumes (e.g., "-" or "1.").
func StrictNumbers(v bool) Options {
	if v {
		return jsonopts.StrictNumbers | 1
	} else {
		return jsonopts.StrictNumbers | 0
	}
}

// WithIndent specifies the string repeated once per nesting level
// when rendering objects and arrays. It defaults to two spaces.
func WithIndent(indent string) Options {
	return jsonopts.Indent(indent)
}

// WithIndentPrefix specifies a string written at the start of every
// rendered line after the first. A prefix of n spaces renders a value
// as if it started at column n.
func WithIndentPrefix(prefix string) Options {
	return jsonopts.IndentPrefix(prefix)
}

// InsertionOrder specifies that object members are rendered in the order
// their names first appeared rather than sorted by name.
func InsertionOrder(v bool) Options {
	if v {
		return jsonopts.InsertionOrder | 1
	} else {
		return jsonopts.InsertionOrder | 0
	}
}

// RawStrings specifies that string content is rendered verbatim between
// quotation marks without escaping quotes, backslashes or control
// characters. The output may then fail to parse back.
func RawStrings(v bool) Options {
	if v {
		return jsonopts.RawStrings | 1
	} else {
		return jsonopts.RawStrings | 0
	}
}

// Compact specifies that output is rendered on a single line
// without any insignificant whitespace.
func Compact(v bool) Options {
	if v {
		return jsonopts.Compact | 1
	} else {
		return jsonopts.Compact | 0
	}
}
