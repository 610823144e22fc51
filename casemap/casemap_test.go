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

package casemap_test

import (
	"testing"

	"go.ircwire.dev/ircwire/casemap"
	"go.ircwire.dev/ircwire/internal/testutil"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	mapping, ok := casemap.Lookup([]byte("ascii"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, casemap.ASCII, mapping)

	mapping, ok = casemap.Lookup([]byte("rfc1459"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, casemap.RFC1459, mapping)

	mapping, ok = casemap.Lookup([]byte("rfc1459-strict"))
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, casemap.RFC1459Strict, mapping)

	_, ok = casemap.Lookup([]byte("rfc7700"))
	testutil.ExpectFalse(t, ok)
	_, ok = casemap.Lookup([]byte("ASCII"))
	testutil.ExpectFalse(t, ok)
}

func TestMappingString(t *testing.T) {
	t.Parallel()

	testutil.ExpectEq(t, "ascii", casemap.ASCII.String())
	testutil.ExpectEq(t, "rfc1459", casemap.RFC1459.String())
	testutil.ExpectEq(t, "rfc1459-strict", casemap.RFC1459Strict.String())
}

func TestEquivalent(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		first   string
		second  string
		mapping casemap.Mapping
		want    bool
	}{
		{"Nick", "nick", casemap.ASCII, true},
		{"Nick", "nick", casemap.RFC1459, true},
		{"Nick", "nick", casemap.RFC1459Strict, true},
		{"#Chan", "#chan", casemap.ASCII, true},
		{"nick", "mick", casemap.ASCII, false},
		{"nick", "nick2", casemap.ASCII, false},
		{"", "", casemap.ASCII, true},

		// '{' folds to '[' only under the RFC 1459 mappings.
		{"{nick}", "[nick]", casemap.ASCII, false},
		{"{nick}", "[nick]", casemap.RFC1459, true},
		{"{nick}", "[nick]", casemap.RFC1459Strict, true},
		{"ni|ck", "ni\\ck", casemap.RFC1459, true},
		{"ni|ck", "ni\\ck", casemap.ASCII, false},

		// '^' folds to '~' under rfc1459 but not rfc1459-strict.
		{"ni^ck", "ni~ck", casemap.RFC1459, true},
		{"ni^ck", "ni~ck", casemap.RFC1459Strict, false},
		{"ni^ck", "ni~ck", casemap.ASCII, false},

		// Digits and other punctuation never fold.
		{"nick1", "nickl", casemap.RFC1459, false},
		{"ni-ck", "ni_ck", casemap.RFC1459, false},
	} {
		got := tc.mapping.Equivalent([]byte(tc.first), []byte(tc.second))
		if got != tc.want {
			t.Errorf(
				"%v.Equivalent(%q, %q) = %v, want %v",
				tc.mapping, tc.first, tc.second, got, tc.want,
			)
		}

		// Equivalence is symmetric.
		reversed := tc.mapping.Equivalent([]byte(tc.second), []byte(tc.first))
		if reversed != got {
			t.Errorf(
				"%v.Equivalent(%q, %q) not symmetric",
				tc.mapping, tc.first, tc.second,
			)
		}
	}
}
