// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"strings"

	"github.com/jsontree/jsontree/internal/jsonopts"
	"github.com/jsontree/jsontree/internal/jsonwire"
)

// Parse parses src as exactly one value, which may be surrounded by whitespace.
//
// The value is decoded as follows:
//   - null, true, and false become a null or boolean Value;
//   - a string becomes a string Value with escape sequences resolved;
//   - a number becomes a string Value holding the literal text verbatim;
//   - an object becomes an object Value, where a repeated name
//     keeps the last value; and
//   - an array becomes an array Value.
//
// Only the escape sequences \" \\ \/ \b \f \n \r and \t are supported.
//
// Parsing stops at the first malformed construct and reports a
// [*SyntacticError] whose Err identifies the reason. No partial result
// is returned.
func Parse[Bytes ~[]byte | ~string](src Bytes, opts ...Options) (Value, error) {
	var o jsonopts.Struct
	o.Join(opts...)
	d := decoder{
		src:            string(src),
		maxDepth:       o.MaxDepth(),
		legacyLiterals: o.Flags.Get(jsonopts.LegacyLiterals),
		strictNumbers:  o.Flags.Get(jsonopts.StrictNumbers),
	}
	v, err := d.parseValue()
	if err != nil {
		return Value{}, err
	}
	d.skipWhitespace()
	if d.pos < len(d.src) {
		return Value{}, newSyntacticError(d.pos, ErrTrailingCharacters)
	}
	return v, nil
}

// decoder is a recursive-descent parser over a fully materialized input.
// The cursor pos only ever moves forward.
type decoder struct {
	src string
	pos int

	depth    int
	maxDepth int

	legacyLiterals bool
	strictNumbers  bool
}

// skipWhitespace advances past any whitespace.
// It is a no-op at a non-whitespace character or at the end of input.
func (d *decoder) skipWhitespace() {
	d.pos += jsonwire.ConsumeWhitespace(d.src[d.pos:])
}

// consume advances past the character c or reports err if another
// character is found.
func (d *decoder) consume(c byte, err error) error {
	switch {
	case d.pos >= len(d.src):
		return newSyntacticError(d.pos, ErrUnexpectedEnd)
	case d.src[d.pos] != c:
		return newSyntacticError(d.pos, err)
	}
	d.pos++
	return nil
}

func (d *decoder) parseValue() (Value, error) {
	d.skipWhitespace()
	if d.pos >= len(d.src) {
		return Value{}, newSyntacticError(d.pos, ErrUnexpectedEnd)
	}
	switch c := d.src[d.pos]; c {
	case 'n':
		if err := d.parseLiteral("null"); err != nil {
			return Value{}, err
		}
		return Null(), nil
	case 't':
		if err := d.parseLiteral("true"); err != nil {
			return Value{}, err
		}
		return Bool(true), nil
	case 'f':
		if err := d.parseLiteral("false"); err != nil {
			return Value{}, err
		}
		return Bool(false), nil
	case '"':
		s, err := d.parseString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case '{':
		return d.parseObject()
	case '[':
		return d.parseArray()
	default:
		if c == '-' || jsonwire.IsDigit(c) {
			s, err := d.parseNumber()
			if err != nil {
				return Value{}, err
			}
			return String(s), nil
		}
		return Value{}, newInvalidCharacterError(d.pos, c)
	}
}

// parseLiteral consumes lit, whose first letter has already been peeked.
func (d *decoder) parseLiteral(lit string) error {
	if d.legacyLiterals {
		if len(d.src)-d.pos < len(lit) {
			return newSyntacticError(len(d.src), ErrUnexpectedEnd)
		}
		d.pos += len(lit)
		return nil
	}
	switch n := jsonwire.ConsumeLiteral(d.src[d.pos:], lit); {
	case n == len(lit):
		d.pos += n
		return nil
	case d.pos+n == len(d.src):
		return newSyntacticError(d.pos+n, ErrUnexpectedEnd)
	default:
		return newInvalidCharacterError(d.pos+n, d.src[d.pos+n])
	}
}

// enter records entry into an object or array.
// The caller must call leave on every successful return.
func (d *decoder) enter() error {
	if d.depth >= d.maxDepth {
		return newSyntacticError(d.pos, ErrMaxDepthExceeded)
	}
	d.depth++
	return nil
}

func (d *decoder) leave() { d.depth-- }

func (d *decoder) parseObject() (Value, error) {
	if err := d.enter(); err != nil {
		return Value{}, err
	}
	defer d.leave()

	d.pos++ // '{'
	obj := NewObject()
	d.skipWhitespace()
	if d.pos < len(d.src) && d.src[d.pos] == '}' {
		d.pos++
		return objectValue(obj), nil
	}
	for {
		d.skipWhitespace()
		name, err := d.parseString()
		if err != nil {
			return Value{}, err
		}
		d.skipWhitespace()
		if err := d.consume(':', ErrExpectedColon); err != nil {
			return Value{}, err
		}
		v, err := d.parseValue()
		if err != nil {
			return Value{}, err
		}
		obj.set(name, v)

		d.skipWhitespace()
		if d.pos >= len(d.src) {
			return Value{}, newSyntacticError(d.pos, ErrUnexpectedEnd)
		}
		switch d.src[d.pos] {
		case '}':
			d.pos++
			return objectValue(obj), nil
		case ',':
			d.pos++
		default:
			return Value{}, newSyntacticError(d.pos, ErrExpectedCommaOrBrace)
		}
	}
}

func (d *decoder) parseArray() (Value, error) {
	if err := d.enter(); err != nil {
		return Value{}, err
	}
	defer d.leave()

	d.pos++ // '['
	arr := []Value{}
	d.skipWhitespace()
	if d.pos < len(d.src) && d.src[d.pos] == ']' {
		d.pos++
		return arrayValue(arr), nil
	}
	for {
		v, err := d.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, v)

		d.skipWhitespace()
		if d.pos >= len(d.src) {
			return Value{}, newSyntacticError(d.pos, ErrUnexpectedEnd)
		}
		switch d.src[d.pos] {
		case ']':
			d.pos++
			return arrayValue(arr), nil
		case ',':
			d.pos++
		default:
			return Value{}, newSyntacticError(d.pos, ErrExpectedCommaOrBracket)
		}
	}
}

// parseString consumes a quoted string and returns its decoded content.
func (d *decoder) parseString() (string, error) {
	if d.pos >= len(d.src) {
		return "", newSyntacticError(d.pos, ErrUnexpectedEnd)
	}
	if c := d.src[d.pos]; c != '"' {
		return "", newInvalidCharacterError(d.pos, c)
	}
	d.pos++

	// Escape-free strings are sliced from the input;
	// b is only allocated once an escape sequence is seen.
	var b []byte
	start := d.pos
	for {
		if d.pos >= len(d.src) {
			return "", newSyntacticError(d.pos, ErrUnterminatedString)
		}
		switch c := d.src[d.pos]; c {
		case '"':
			var s string
			if b == nil {
				s = strings.Clone(d.src[start:d.pos])
			} else {
				s = string(append(b, d.src[start:d.pos]...))
			}
			d.pos++
			return s, nil
		case '\\':
			if b == nil {
				b = make([]byte, 0, 2*(d.pos-start)+16)
			}
			b = append(b, d.src[start:d.pos]...)
			if d.pos+1 >= len(d.src) {
				return "", newSyntacticError(len(d.src), ErrUnterminatedString)
			}
			esc := d.src[d.pos+1]
			out, ok := jsonwire.Unescape(esc)
			if !ok {
				return "", &SyntacticError{ByteOffset: int64(d.pos + 1), Char: esc, Err: ErrInvalidEscape}
			}
			b = append(b, out)
			d.pos += 2
			start = d.pos
		default:
			d.pos++
		}
	}
}

// parseNumber consumes a number of the form
//
//	-? digit* ( . digit* )? ( [eE] [+-]? digit* )?
//
// and returns its text verbatim. With strictNumbers, every present
// segment must contain at least one digit.
func (d *decoder) parseNumber() (string, error) {
	start := d.pos
	if d.src[d.pos] == '-' {
		d.pos++
	}
	if err := d.consumeDigits(); err != nil {
		return "", err
	}
	if d.pos < len(d.src) && d.src[d.pos] == '.' {
		d.pos++
		if err := d.consumeDigits(); err != nil {
			return "", err
		}
	}
	if d.pos < len(d.src) && (d.src[d.pos] == 'e' || d.src[d.pos] == 'E') {
		d.pos++
		if d.pos < len(d.src) && (d.src[d.pos] == '+' || d.src[d.pos] == '-') {
			d.pos++
		}
		if err := d.consumeDigits(); err != nil {
			return "", err
		}
	}
	return strings.Clone(d.src[start:d.pos]), nil
}

func (d *decoder) consumeDigits() error {
	n := jsonwire.ConsumeDigits(d.src[d.pos:])
	if n == 0 && d.strictNumbers {
		return newSyntacticError(d.pos, ErrInvalidNumber)
	}
	d.pos += n
	return nil
}
