// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontree parses JSON-like text into a tree of values
// and renders such trees back into indented text.
//
// # Terminology
//
// This package uses JSON terminology when discussing JSON, which may differ
// from related concepts in Go or elsewhere in computing literature.
//
//   - An "object" refers to a collection of name/value members
//     where every name is unique;
//   - an "array" refers to an ordered sequence of elements; and
//   - a "value" refers to either a literal (i.e., null, false, or true),
//     string, number, object, or array.
//
// # Data model
//
// A [Value] holds exactly one of five kinds: null, boolean, string,
// object, or array. Numbers are not a separate kind; a number is kept
// as a string Value holding the literal exactly as it appeared in the input
// (e.g., "1.50e+3"), and no conversion to a Go numeric type is performed.
//
// Trees are exclusively owned: every object or array owns its children and
// no node is shared between trees. [Value.Clone] produces a deep copy.
//
// # Parsing
//
// [Parse] implements a recursive-descent parser over a fully materialized
// input. It differs from RFC 8259 in a few respects:
//
//   - Unicode escape sequences (\uXXXX) are not supported and are
//     reported as [ErrInvalidEscape].
//   - Strings may contain raw control characters and invalid UTF-8,
//     which are preserved as is.
//   - Numbers are scanned greedily without requiring digits
//     unless [StrictNumbers] is specified.
//   - When a name appears more than once in an object, the last value wins.
//
// Nesting is bounded by [MaxDepth] so that hostile input cannot
// exhaust the stack.
//
// # Rendering
//
// [Render], [AppendRender], and [RenderTo] produce deterministic output.
// Object members are sorted by name unless [InsertionOrder] is specified.
// String content is escaped so that rendered output parses back to an
// equal tree; [RawStrings] disables escaping for a debugging view.
//
// # Errors
//
// All errors returned by this package match [Error] according to errors.Is.
// Parse errors are [*SyntacticError] values whose Err field is one of the
// Err constants; accessor errors are [*KindError] values matching
// [ErrTypeMismatch].
package jsontree
