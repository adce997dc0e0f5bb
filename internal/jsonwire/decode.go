// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements stateless functions for handling the
// textual representation of the JSON-like format accepted by jsontree.
package jsonwire

// IsWhitespace reports whether c is one of the four insignificant
// whitespace characters: space, tab, line feed or carriage return.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// ConsumeWhitespace consumes leading whitespace in b.
// It returns the number of bytes consumed.
func ConsumeWhitespace[Bytes ~[]byte | ~string](b Bytes) (n int) {
	for len(b) > n && IsWhitespace(b[n]) {
		n++
	}
	return n
}

// ConsumeLiteral consumes the longest prefix of b that agrees with lit.
// It returns the number of matching bytes, which equals len(lit)
// only if the entire literal is present.
func ConsumeLiteral[Bytes ~[]byte | ~string](b Bytes, lit string) (n int) {
	for n < len(lit) && n < len(b) && b[n] == lit[n] {
		n++
	}
	return n
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ConsumeDigits consumes a run of ASCII decimal digits in b.
// It returns the number of bytes consumed.
func ConsumeDigits[Bytes ~[]byte | ~string](b Bytes) (n int) {
	for len(b) > n && IsDigit(b[n]) {
		n++
	}
	return n
}
