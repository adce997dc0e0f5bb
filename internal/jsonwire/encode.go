// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import "slices"

// AppendQuote appends src to dst as a double-quoted string.
//
// Quotation marks, backslashes and the control characters that have a
// short escape sequence (\b, \f, \n, \r and \t) are escaped.
// All other bytes, including other control characters and invalid UTF-8,
// are copied verbatim so that the output decodes back to exactly src.
func AppendQuote[Bytes ~[]byte | ~string](dst []byte, src Bytes) []byte {
	var i, n int
	dst = slices.Grow(dst, len(`"`)+len(src)+len(`"`))
	dst = append(dst, '"')
	for uint(len(src)) > uint(n) {
		c := src[n]
		n++
		if esc := quoteTable[c]; esc != 0 {
			dst = append(dst, src[i:n-1]...)
			dst = append(dst, '\\', esc)
			i = n
		}
	}
	dst = append(dst, src[i:n]...)
	dst = append(dst, '"')
	return dst
}

// AppendRawQuote appends src to dst surrounded by quotation marks
// without escaping anything.
func AppendRawQuote[Bytes ~[]byte | ~string](dst []byte, src Bytes) []byte {
	dst = slices.Grow(dst, len(`"`)+len(src)+len(`"`))
	dst = append(dst, '"')
	dst = append(dst, src...)
	return append(dst, '"')
}

// AppendIndent appends a newline followed by prefix and depth copies of indent.
func AppendIndent(dst []byte, prefix, indent string, depth int) []byte {
	dst = append(dst, '\n')
	dst = append(dst, prefix...)
	for range depth {
		dst = append(dst, indent...)
	}
	return dst
}
