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

package ircwire

// Params is the parameter list of a message: a count and a borrowed span
// covering everything after the command token. A zero Params means the
// message carried no parameters. Individual parameters are extracted on
// demand by Get, which re-scans the span.
type Params struct {
	count int
	raw   []byte
}

// ParseParams parses the span after the command token. An empty span
// yields a zero Params, not an error.
//
// The count starts at 1 and increments on each space outside the trailing
// parameter. A ':' that is the first byte of the span or immediately
// follows a space starts the trailing parameter; from that point spaces
// no longer split.
func ParseParams(input []byte) (Params, error) {
	if len(input) == 0 {
		return Params{}, nil
	}
	count := 1
	trailing := false
	prev := byte(0)
	for i := 0; i < len(input); i++ {
		b := input[i]
		switch {
		case b == 0x00 || b == '\r' || b == '\n':
			return Params{}, errParamsInvalidByte(b)
		case b == ':' && (i == 0 || prev == ' '):
			trailing = true
		case b == ' ' && !trailing:
			count++
		}
		prev = b
	}
	return Params{count: count, raw: input}, nil
}

// Count returns the number of parameters. Zero means no parameter list.
func (p Params) Count() int {
	return p.count
}

// Content returns the whole span, including the ':' before the trailing
// parameter if present.
func (p Params) Content() Content {
	return NewContent(p.raw)
}

// First returns the first parameter, without a trailing-parameter ':'.
func (p Params) First() Content {
	c, _ := p.Get(0)
	return c
}

// Last returns the last parameter, without a trailing-parameter ':'.
func (p Params) Last() Content {
	c, _ := p.Get(p.count - 1)
	return c
}

// Get re-scans the span and returns the parameter at index (starting at
// 0). The trailing parameter's leading ':' is stripped. Out-of-range
// indexes return false.
func (p Params) Get(index int) (Content, bool) {
	if index < 0 || index >= p.count {
		return Content{}, false
	}
	current := 0
	start := 0
	trailing := false
	prev := byte(0)
	for i := 0; i < len(p.raw); i++ {
		b := p.raw[i]
		if b == ':' && (i == 0 || prev == ' ') {
			trailing = true
		}
		if b == ' ' && !trailing {
			if current == index {
				return NewContent(p.raw[start:i]), true
			}
			current++
			start = i + 1
		}
		prev = b
	}
	seg := p.raw[start:]
	if trailing && len(seg) > 0 && seg[0] == ':' {
		seg = seg[1:]
	}
	return NewContent(seg), true
}

func (p Params) String() string {
	return string(p.raw)
}
