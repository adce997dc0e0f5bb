// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

// Validity of these checked in TestEscapeTables.
var (
	// quoteTable records which ASCII characters are re-escaped when quoting,
	// where 0 means written verbatim and any other value is the character
	// that follows the backslash in the short escape sequence.
	quoteTable = [256]byte{
		'\b': 'b', '\f': 'f', '\n': 'n', '\r': 'r', '\t': 't',
		'"': '"', '\\': '\\',
	}

	// unquoteTable maps the character after a backslash to the decoded byte,
	// where 0 means the escape sequence is not supported.
	unquoteTable = [256]byte{
		'"': '"', '\\': '\\', '/': '/',
		'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
	}
)

// makeUnquoteTable builds unquoteTable from the list of supported escapes.
// The \uXXXX form is intentionally absent.
func makeUnquoteTable() (t [256]byte) {
	for _, e := range [...]struct{ in, out byte }{
		{'"', '"'}, {'\\', '\\'}, {'/', '/'},
		{'b', '\b'}, {'f', '\f'}, {'n', '\n'}, {'r', '\r'}, {'t', '\t'},
	} {
		t[e.in] = e.out
	}
	return t
}

// makeQuoteTable builds quoteTable as the inverse of unquoteTable,
// except that '/' is never escaped on output.
func makeQuoteTable() (t [256]byte) {
	u := makeUnquoteTable()
	for in, out := range u {
		if out != 0 && out != '/' {
			t[out] = byte(in)
		}
	}
	return t
}

// Unescape reports the byte that the escape sequence `\c` decodes to.
// It reports false if c does not introduce a supported escape sequence.
func Unescape(c byte) (byte, bool) {
	out := unquoteTable[c]
	return out, out != 0
}
