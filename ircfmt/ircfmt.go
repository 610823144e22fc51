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

// Package ircfmt locates IRC formatting control bytes (bold, colour, and
// so on) inside arbitrary text, typically the trailing parameter of a
// message. The colour and hex-colour markers may be followed by payload
// bytes that are colour codes rather than text; SplitFirst separates
// them out.
package ircfmt

type FmtByte uint8

const (
	F_BOLD FmtByte = iota
	F_ITALICS
	F_UNDERLINE
	F_STRIKETHROUGH
	F_MONOSPACE
	F_COLOUR
	F_HEX_COLOUR
	F_REVERSE_COLOUR
	F_RESET
)

func (f FmtByte) String() string {
	switch f {
	case F_BOLD:
		return "BOLD"
	case F_ITALICS:
		return "ITALICS"
	case F_UNDERLINE:
		return "UNDERLINE"
	case F_STRIKETHROUGH:
		return "STRIKETHROUGH"
	case F_MONOSPACE:
		return "MONOSPACE"
	case F_COLOUR:
		return "COLOUR"
	case F_HEX_COLOUR:
		return "HEX_COLOUR"
	case F_REVERSE_COLOUR:
		return "REVERSE_COLOUR"
	case F_RESET:
		return "RESET"
	}
	return "UNKNOWN"
}

// Byte returns the control byte value on the wire.
func (f FmtByte) Byte() byte {
	switch f {
	case F_BOLD:
		return 0x02
	case F_ITALICS:
		return 0x1D
	case F_UNDERLINE:
		return 0x1F
	case F_STRIKETHROUGH:
		return 0x1E
	case F_MONOSPACE:
		return 0x11
	case F_COLOUR:
		return 0x03
	case F_HEX_COLOUR:
		return 0x04
	case F_REVERSE_COLOUR:
		return 0x16
	case F_RESET:
		return 0x0F
	}
	return 0
}

// Detect reports whether b is a formatting control byte.
func Detect(b byte) (FmtByte, bool) {
	switch b {
	case 0x02:
		return F_BOLD, true
	case 0x03:
		return F_COLOUR, true
	case 0x04:
		return F_HEX_COLOUR, true
	case 0x0F:
		return F_RESET, true
	case 0x11:
		return F_MONOSPACE, true
	case 0x16:
		return F_REVERSE_COLOUR, true
	case 0x1D:
		return F_ITALICS, true
	case 0x1E:
		return F_STRIKETHROUGH, true
	case 0x1F:
		return F_UNDERLINE, true
	}
	return 0, false
}

// Contains reports whether input holds any formatting byte.
func Contains(input []byte) bool {
	for _, b := range input {
		if _, ok := Detect(b); ok {
			return true
		}
	}
	return false
}

// Count returns the number of formatting bytes in input. Colour code
// payload bytes are not counted.
func Count(input []byte) int {
	count := 0
	for _, b := range input {
		if _, ok := Detect(b); ok {
			count++
		}
	}
	return count
}

// FindNth returns the nth formatting byte (0-based) and its index.
func FindNth(input []byte, nth int) (FmtByte, int, bool) {
	count := 0
	for i, b := range input {
		fb, ok := Detect(b)
		if !ok {
			continue
		}
		if count == nth {
			return fb, i, true
		}
		count++
	}
	return 0, 0, false
}

// Split is the decomposition of a span around its first formatting byte.
// Absent parts are nil slices. Foreground and Background are only set
// for F_COLOUR and F_HEX_COLOUR markers followed by a valid payload; a
// bare marker is a colour reset with no payload.
type Split struct {
	Before     []byte
	Fmt        FmtByte
	HasFmt     bool
	Foreground []byte
	Background []byte
	After      []byte
}

// SplitFirst splits input around the first formatting byte, consuming
// any colour payload attached to a colour or hex-colour marker. A span
// with no formatting bytes comes back whole in Before. Empty input
// returns false.
func SplitFirst(input []byte) (Split, bool) {
	if len(input) == 0 {
		return Split{}, false
	}
	for i, b := range input {
		fb, ok := Detect(b)
		if !ok {
			continue
		}
		split := Split{Fmt: fb, HasFmt: true}
		if i > 0 {
			split.Before = input[:i]
		}
		after := input[i+1:]
		switch fb {
		case F_COLOUR:
			if len(after) == 0 {
				return split, true
			}
			fgLen, bgLen, ok := colourCodeLengths(after)
			if !ok {
				split.After = after
				return split, true
			}
			split.Foreground = after[:fgLen]
			rest := after[fgLen:]
			if bgLen > 0 {
				// Skip the comma between the codes.
				split.Background = rest[1 : 1+bgLen]
				rest = rest[1+bgLen:]
			}
			if len(rest) > 0 {
				split.After = rest
			}
			return split, true
		case F_HEX_COLOUR:
			if len(after) == 0 {
				return split, true
			}
			if len(after) > 5 && isHexColour(after[:6]) {
				split.Foreground = after[:6]
				rest := after[6:]
				if len(rest) > 6 && rest[0] == ',' && isHexColour(rest[1:7]) {
					split.Background = rest[1:7]
					rest = rest[7:]
				}
				if len(rest) > 0 {
					split.After = rest
				}
				return split, true
			}
			split.After = after
			return split, true
		default:
			if len(after) > 0 {
				split.After = after
			}
			return split, true
		}
	}
	return Split{Before: input}, true
}

// colourCodeLengths runs the lookahead over at most 5 bytes after a
// colour marker and reports the foreground and background digit-run
// lengths. The six valid shapes are d, dd, "d,d", "d,dd", "dd,d" and
// "dd,dd"; a digit run not followed by a valid background keeps only the
// foreground, and anything else is no payload at all.
func colourCodeLengths(input []byte) (fgLen, bgLen int, ok bool) {
	fgFirst := false
	fgSecond := false
	comma := false
	bgFirst := false
	bgSecond := false
loop:
	for i := 0; i < len(input); i++ {
		digit := input[i] >= '0' && input[i] <= '9'
		switch i {
		case 0:
			if !digit {
				break loop
			}
			fgFirst = true
		case 1:
			switch {
			case digit:
				fgSecond = true
			case input[i] == ',':
				comma = true
			default:
				break loop
			}
		case 2:
			switch {
			case digit:
				bgFirst = true
			case input[i] == ',':
				comma = true
			default:
				break loop
			}
		case 3:
			switch {
			case digit && fgFirst && fgSecond && comma:
				bgFirst = true
			case digit && fgFirst && !fgSecond && comma && bgFirst:
				bgSecond = true
			default:
				break loop
			}
		case 4:
			if !digit {
				break loop
			}
			bgSecond = true
		default:
			break loop
		}
	}
	switch {
	case fgFirst && !fgSecond && !bgFirst && !bgSecond:
		return 1, 0, true
	case fgFirst && fgSecond && !bgFirst && !bgSecond:
		return 2, 0, true
	case fgFirst && !fgSecond && comma && bgFirst && !bgSecond:
		return 1, 1, true
	case fgFirst && !fgSecond && comma && bgFirst && bgSecond:
		return 1, 2, true
	case fgFirst && fgSecond && comma && bgFirst && !bgSecond:
		return 2, 1, true
	case fgFirst && fgSecond && comma && bgFirst && bgSecond:
		return 2, 2, true
	}
	return 0, 0, false
}

func isHexColour(input []byte) bool {
	for _, b := range input {
		switch {
		case b >= '0' && b <= '9':
		case b >= 'a' && b <= 'f':
		case b >= 'A' && b <= 'F':
		default:
			return false
		}
	}
	return true
}
