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

// Package ircwire decomposes a single IRC protocol message into its
// structural components: tags, source, command, and parameters.
//
// Parsing is zero-copy: every extracted field is a sub-slice of the
// caller's buffer, wrapped in a [Content] view. The caller owns the buffer
// and must not mutate it while any view into it is retained. The parser
// performs no I/O and holds no state; the input must be one complete
// message with the trailing CR/LF already stripped.
package ircwire

import (
	"unicode/utf8"
)

// Content is a read-only view over a sub-slice of a parsed buffer.
//
// A single UTF-8 validation probe runs at construction; the raw bytes are
// available either way.
type Content struct {
	bytes  []byte
	isText bool
}

// NewContent wraps bytes in a Content view without copying.
func NewContent(bytes []byte) Content {
	return Content{bytes: bytes, isText: utf8.Valid(bytes)}
}

// IsValidUTF8 reports whether the viewed bytes are valid UTF-8.
func (c Content) IsValidUTF8() bool {
	return c.isText
}

// Bytes returns the viewed bytes. The slice aliases the original buffer.
func (c Content) Bytes() []byte {
	return c.bytes
}

func (c Content) String() string {
	return string(c.bytes)
}

func asciiDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func asciiAlphanumeric(b byte) bool {
	return asciiDigit(b) || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Null, LF, CR, and space terminate or corrupt a component and may not
// appear inside a source span or an escaped tag value.
func invalidComponentByte(b byte) bool {
	return b == 0x00 || b == '\n' || b == '\r' || b == ' '
}
