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

package ircfmt_test

import (
	"testing"

	"go.ircwire.dev/ircwire/internal/testutil"
	"go.ircwire.dev/ircwire/ircfmt"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	fb, ok := ircfmt.Detect(0x02)
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, ircfmt.F_BOLD, fb)
	testutil.ExpectEq(t, byte(0x02), fb.Byte())
	testutil.ExpectEq(t, "BOLD", fb.String())

	_, ok = ircfmt.Detect('a')
	testutil.ExpectFalse(t, ok)
	_, ok = ircfmt.Detect(0x00)
	testutil.ExpectFalse(t, ok)
}

func TestContains(t *testing.T) {
	t.Parallel()

	testutil.ExpectTrue(t, ircfmt.Contains([]byte("Hey \x02buddy\x02")))
	testutil.ExpectFalse(t, ircfmt.Contains([]byte("Hey buddy")))
	testutil.ExpectFalse(t, ircfmt.Contains(nil))
}

func TestCount(t *testing.T) {
	t.Parallel()

	// One of each marker plus the colour payload digit, which is text.
	input := []byte("\x02\x1d\x1f\x1e\x11\x16\x037\x04\x0f")
	testutil.ExpectEq(t, 9, ircfmt.Count(input))
	testutil.ExpectEq(t, 0, ircfmt.Count([]byte("plain")))
}

func TestFindNth(t *testing.T) {
	t.Parallel()

	input := []byte("Hey \x02there\x03")
	fb, index, ok := ircfmt.FindNth(input, 0)
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, ircfmt.F_BOLD, fb)
	testutil.ExpectEq(t, 4, index)

	fb, index, ok = ircfmt.FindNth(input, 1)
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, ircfmt.F_COLOUR, fb)
	testutil.ExpectEq(t, 10, index)

	_, _, ok = ircfmt.FindNth(input, 2)
	testutil.ExpectFalse(t, ok)
}

func TestFindNthMatchesCount(t *testing.T) {
	t.Parallel()

	input := []byte("a\x02b\x03c\x04d\x0f")
	count := ircfmt.Count(input)
	for nth := 0; nth < count; nth++ {
		_, _, ok := ircfmt.FindNth(input, nth)
		testutil.ExpectTrue(t, ok)
	}
	_, _, ok := ircfmt.FindNth(input, count)
	testutil.ExpectFalse(t, ok)
}

func TestSplitFirstNoFormatting(t *testing.T) {
	t.Parallel()

	split, ok := ircfmt.SplitFirst([]byte("Hey what's up!"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectFalse(t, split.HasFmt)
	testutil.ExpectBytesEq(t, []byte("Hey what's up!"), split.Before)

	_, ok = ircfmt.SplitFirst(nil)
	testutil.ExpectFalse(t, ok)
}

func TestSplitFirstSimple(t *testing.T) {
	t.Parallel()

	split, ok := ircfmt.SplitFirst([]byte("Hey \x02what's\x02 up!"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectTrue(t, split.HasFmt)
	testutil.ExpectEq(t, ircfmt.F_BOLD, split.Fmt)
	testutil.ExpectBytesEq(t, []byte("Hey "), split.Before)
	testutil.ExpectBytesEq(t, []byte("what's\x02 up!"), split.After)
	if split.Foreground != nil || split.Background != nil {
		t.Fatalf("Expected no colour payload")
	}
}

func TestSplitFirstColour(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		input      string
		foreground string
		background string
		after      string
	}{
		{"Hey \x037,88what's up!", "7", "88", "what's up!"},
		{"\x0304text", "04", "", "text"},
		{"\x037", "7", "", ""},
		{"\x037,88", "7", "88", ""},
		{"\x036,7", "6", "7", ""},
		{"\x0376,8", "76", "8", ""},
		// The comma only joins two codes; a dangling one is text.
		{"\x0377,x", "77", "", ",x"},
	} {
		split, ok := ircfmt.SplitFirst([]byte(tc.input))
		testutil.ExpectTrue(t, ok)
		testutil.ExpectEq(t, ircfmt.F_COLOUR, split.Fmt)
		testutil.ExpectBytesEq(t, []byte(tc.foreground), split.Foreground)
		testutil.ExpectBytesEq(t, []byte(tc.background), split.Background)
		testutil.ExpectBytesEq(t, []byte(tc.after), split.After)
	}
}

func TestSplitFirstColourReset(t *testing.T) {
	t.Parallel()

	// A bare marker, or one followed by non-digits, resets the colour.
	split, ok := ircfmt.SplitFirst([]byte("\x03"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, ircfmt.F_COLOUR, split.Fmt)
	if split.Foreground != nil || split.Background != nil || split.After != nil {
		t.Fatalf("Expected bare colour reset, got: %+v", split)
	}

	split, ok = ircfmt.SplitFirst([]byte("\x03!"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectBytesEq(t, nil, split.Foreground)
	testutil.ExpectBytesEq(t, []byte("!"), split.After)
}

func TestSplitFirstHexColour(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		input      string
		foreground string
		background string
		after      string
	}{
		{"\x04787878 text", "787878", "", " text"},
		{"\x04787878,ffaabb", "787878", "ffaabb", ""},
		{"\x04787878,ffaabb text", "787878", "ffaabb", " text"},
		// Six hex digits are required for each code.
		{"\x04787878,ffa", "787878", "", ",ffa"},
		{"\x04abc", "", "", "abc"},
	} {
		split, ok := ircfmt.SplitFirst([]byte(tc.input))
		testutil.ExpectTrue(t, ok)
		testutil.ExpectEq(t, ircfmt.F_HEX_COLOUR, split.Fmt)
		testutil.ExpectBytesEq(t, []byte(tc.foreground), split.Foreground)
		testutil.ExpectBytesEq(t, []byte(tc.background), split.Background)
		testutil.ExpectBytesEq(t, []byte(tc.after), split.After)
	}

	split, ok := ircfmt.SplitFirst([]byte("\x04"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, ircfmt.F_HEX_COLOUR, split.Fmt)
	if split.Foreground != nil || split.After != nil {
		t.Fatalf("Expected bare hex colour reset, got: %+v", split)
	}
}
