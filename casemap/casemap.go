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

// Package casemap compares nick, channel, and server names under the
// case-folding rules a server advertises in its CASEMAPPING token.
package casemap

type Mapping uint8

const (
	// ASCII folds only the ASCII letters.
	ASCII Mapping = iota

	// RFC1459 additionally treats '{' as the lowercase of '[', '}' of
	// ']', '|' of '\', and '^' of '~'.
	RFC1459

	// RFC1459Strict is RFC1459 without the '^'/'~' pair.
	RFC1459Strict
)

func (m Mapping) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case RFC1459:
		return "rfc1459"
	case RFC1459Strict:
		return "rfc1459-strict"
	}
	return "unknown"
}

// Lookup maps an advertised CASEMAPPING value to a Mapping.
func Lookup(value []byte) (Mapping, bool) {
	switch string(value) {
	case "ascii":
		return ASCII, true
	case "rfc1459":
		return RFC1459, true
	case "rfc1459-strict":
		return RFC1459Strict, true
	}
	return 0, false
}

// Equivalent reports whether the two slices name the same thing under
// the mapping. Slices of different length are never equivalent.
func (m Mapping) Equivalent(first, second []byte) bool {
	if len(first) != len(second) {
		return false
	}
	for i := 0; i < len(first); i++ {
		a, b := first[i], second[i]
		if a == b {
			continue
		}
		if asciiLetter(a) && asciiLetter(b) {
			if a|0x20 == b|0x20 {
				continue
			}
			return false
		}
		switch m {
		case RFC1459:
			if !punctEquivalent(a, b, false) {
				return false
			}
		case RFC1459Strict:
			if !punctEquivalent(a, b, true) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func asciiLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func punctEquivalent(a, b byte, strict bool) bool {
	switch {
	case a == '{' && b == '[', a == '[' && b == '{':
		return true
	case a == '}' && b == ']', a == ']' && b == '}':
		return true
	case a == '|' && b == '\\', a == '\\' && b == '|':
		return true
	case a == '^' && b == '~', a == '~' && b == '^':
		return !strict
	}
	return false
}
