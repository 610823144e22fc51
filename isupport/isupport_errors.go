// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package isupport

import (
	"fmt"
)

type ErrorKind uint8

const (
	EmptyInput ErrorKind = iota
	EmptyParameter
	NoParameterBeforeEquals
	ValueNotPermittedOnNegatedToken
	InvalidParameterByte
	InvalidValueByte
)

type Error struct {
	kind    ErrorKind
	badByte byte
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	switch err.kind {
	case EmptyInput:
		return "isupport: empty input"
	case EmptyParameter:
		return "isupport: empty parameter"
	case NoParameterBeforeEquals:
		return "isupport: no parameter before '='"
	case ValueNotPermittedOnNegatedToken:
		return "isupport: negated token may not carry a value"
	case InvalidParameterByte:
		return fmt.Sprintf("isupport: invalid byte %q in parameter", err.badByte)
	case InvalidValueByte:
		return fmt.Sprintf("isupport: invalid byte %q in value", err.badByte)
	}
	return "isupport: unknown error"
}

func (err *Error) Kind() ErrorKind {
	return err.kind
}

// Byte returns the offending byte for the invalid-byte kinds.
func (err *Error) Byte() byte {
	return err.badByte
}

func errEmptyInput() error {
	return &Error{kind: EmptyInput}
}

func errEmptyParameter() error {
	return &Error{kind: EmptyParameter}
}

func errNoParameterBeforeEquals() error {
	return &Error{kind: NoParameterBeforeEquals}
}

func errValueNotPermittedOnNegatedToken() error {
	return &Error{kind: ValueNotPermittedOnNegatedToken}
}

func errInvalidParameterByte(b byte) error {
	return &Error{kind: InvalidParameterByte, badByte: b}
}

func errInvalidValueByte(b byte) error {
	return &Error{kind: InvalidValueByte, badByte: b}
}
