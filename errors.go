// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"strconv"
	"strings"
)

const errorPrefix = "jsontree: "

// Error matches errors returned by this package according to errors.Is.
const Error = jsonError("jsontree error")

type jsonError string

func (e jsonError) Error() string        { return string(e) }
func (e jsonError) Is(target error) bool { return e == target || target == Error }

// Reasons reported by [SyntacticError] and [KindError].
// Each of them matches [Error] according to errors.Is.
const (
	ErrUnexpectedEnd          = jsonError("unexpected end of input")
	ErrUnexpectedCharacter    = jsonError("unexpected character")
	ErrExpectedColon          = jsonError("expected ':' after object name")
	ErrExpectedCommaOrBrace   = jsonError("expected ',' or '}' after object value")
	ErrExpectedCommaOrBracket = jsonError("expected ',' or ']' after array element")
	ErrUnterminatedString     = jsonError("unterminated string")
	ErrInvalidEscape          = jsonError("invalid escape sequence in string")
	ErrInvalidNumber          = jsonError("invalid number")
	ErrTrailingCharacters     = jsonError("unexpected characters after top-level value")
	ErrMaxDepthExceeded       = jsonError("exceeded max depth")
	ErrTypeMismatch           = jsonError("type mismatch")
)

// SyntacticError is a description of malformed input.
//
// The contents of this error as produced by this package may change over time.
type SyntacticError struct {
	// ByteOffset indicates that an error occurred after
	// processing ByteOffset bytes of the input.
	ByteOffset int64
	// Char is the offending character when Err is ErrUnexpectedCharacter
	// or ErrInvalidEscape. It is zero otherwise.
	Char byte
	// Err is the reason, which is one of the Err constants of this package.
	Err error
}

func (e *SyntacticError) Error() string {
	var sb strings.Builder
	sb.WriteString(errorPrefix)
	sb.WriteString(e.Err.Error())
	if e.Err == ErrUnexpectedCharacter || e.Err == ErrInvalidEscape {
		sb.WriteString(" ")
		sb.WriteString(escapeCharacter(e.Char))
	}
	sb.WriteString(" at offset ")
	sb.WriteString(strconv.FormatInt(e.ByteOffset, 10))
	return sb.String()
}
func (e *SyntacticError) Unwrap() error        { return e.Err }
func (e *SyntacticError) Is(target error) bool { return e == target || target == Error }

// KindError reports that a [Value] accessor was called
// for a kind other than the one the value holds.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return errorPrefix + ErrTypeMismatch.Error() + ": value is " + e.Got.String() + ", not " + e.Want.String()
}
func (e *KindError) Unwrap() error        { return ErrTypeMismatch }
func (e *KindError) Is(target error) bool { return e == target || target == Error }

func newSyntacticError(pos int, err error) *SyntacticError {
	return &SyntacticError{ByteOffset: int64(pos), Err: err}
}

func newInvalidCharacterError(pos int, c byte) *SyntacticError {
	return &SyntacticError{ByteOffset: int64(pos), Char: c, Err: ErrUnexpectedCharacter}
}

func escapeCharacter(c byte) string {
	switch c {
	case '\'':
		return `'\''`
	case '"':
		return `'"'`
	default:
		return "'" + strings.TrimPrefix(strings.TrimSuffix(strconv.Quote(string([]byte{c})), `"`), `"`) + "'"
	}
}
