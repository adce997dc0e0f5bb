// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"io"

	"github.com/jsontree/jsontree/internal/bufpools"
	"github.com/jsontree/jsontree/internal/jsonopts"
	"github.com/jsontree/jsontree/internal/jsonwire"
)

// Render formats v as indented text.
//
// By default, each object member and array element begins on its own line,
// indented by two spaces per nesting level, and members are written
// as "name": value in ascending order of their names.
// Empty objects and arrays are written as {} and [].
// Quotation marks, backslashes, and control characters with a short
// escape sequence are escaped so that the output parses back to v.
//
// For example, this value:
//
//	ObjectOf(Member{"b", ArrayOf(String("1"), Bool(true))}, Member{"a", Null()})
//
// renders as:
//
//	{
//	  "a": null,
//	  "b": [
//	    "1",
//	    true
//	  ]
//	}
func Render(v Value, opts ...Options) string {
	return string(AppendRender(nil, v, opts...))
}

// AppendRender appends the rendering of v to dst and returns the extended buffer.
// See [Render] for the output format.
func AppendRender(dst []byte, v Value, opts ...Options) []byte {
	var e encoder
	e.init(opts)
	return e.appendValue(dst, v, 0)
}

// RenderTo writes the rendering of v to w.
// See [Render] for the output format.
// The entire rendering is produced before anything is written to w.
func RenderTo(w io.Writer, v Value, opts ...Options) error {
	b := bufpools.Get(0)
	b = AppendRender(b, v, opts...)
	_, err := w.Write(b)
	bufpools.Put(b)
	return err
}

type encoder struct {
	indent  string
	prefix  string
	order   MemberOrder
	raw     bool
	compact bool
}

func (e *encoder) init(opts []Options) {
	var o jsonopts.Struct
	o.Join(opts...)
	e.indent = o.Indent()
	e.prefix = o.IndentPrefix()
	e.raw = o.Flags.Get(jsonopts.RawStrings)
	e.compact = o.Flags.Get(jsonopts.Compact)
	if o.Flags.Get(jsonopts.InsertionOrder) {
		e.order = ByInsertion
	}
}

func (e *encoder) appendValue(dst []byte, v Value, depth int) []byte {
	switch v.kind {
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindString:
		return e.appendString(dst, v.s)
	case KindObject:
		if v.obj.Len() == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{')
		first := true
		for name, m := range v.obj.All(e.order) {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			dst = e.appendIndent(dst, depth+1)
			dst = e.appendString(dst, name)
			dst = append(dst, ':')
			if !e.compact {
				dst = append(dst, ' ')
			}
			dst = e.appendValue(dst, m, depth+1)
		}
		dst = e.appendIndent(dst, depth)
		return append(dst, '}')
	case KindArray:
		if len(v.arr) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[')
		for i, elem := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = e.appendIndent(dst, depth+1)
			dst = e.appendValue(dst, elem, depth+1)
		}
		dst = e.appendIndent(dst, depth)
		return append(dst, ']')
	default:
		return append(dst, "null"...)
	}
}

func (e *encoder) appendString(dst []byte, s string) []byte {
	if e.raw {
		return jsonwire.AppendRawQuote(dst, s)
	}
	return jsonwire.AppendQuote(dst, s)
}

func (e *encoder) appendIndent(dst []byte, depth int) []byte {
	if e.compact {
		return dst
	}
	return jsonwire.AppendIndent(dst, e.prefix, e.indent, depth)
}
