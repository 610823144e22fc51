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

package isupport_test

import (
	"errors"
	"testing"

	"go.ircwire.dev/ircwire"
	"go.ircwire.dev/ircwire/internal/testutil"
	"go.ircwire.dev/ircwire/isupport"
)

func expectError(t *testing.T, err error, kind isupport.ErrorKind) *isupport.Error {
	t.Helper()
	testutil.AssertError(t, err)
	var isupportErr *isupport.Error
	if !errors.As(err, &isupportErr) {
		t.Fatalf("Expected *isupport.Error, got: %T", err)
	}
	testutil.ExpectEq(t, kind, isupportErr.Kind())
	return isupportErr
}

func TestParseSet(t *testing.T) {
	t.Parallel()

	token, err := isupport.Parse([]byte("FNC"))
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, token.IsSet())
	testutil.ExpectEq(t, "FNC", token.Parameter().String())
	_, ok := token.Value()
	testutil.ExpectFalse(t, ok)
}

func TestParseSetWithValue(t *testing.T) {
	t.Parallel()

	token, err := isupport.Parse([]byte("PREFIX=(ov)@+"))
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, token.IsSet())
	testutil.ExpectEq(t, "PREFIX", token.Parameter().String())
	value, ok := token.Value()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "(ov)@+", value.String())
}

func TestParseEmptyValue(t *testing.T) {
	t.Parallel()

	// A bare trailing '=' is an empty value, distinct from no '=' at all.
	token, err := isupport.Parse([]byte("TARGMAX="))
	testutil.AssertNoError(t, err)
	_, ok := token.Value()
	testutil.ExpectFalse(t, ok)
	testutil.ExpectEq(t, "TARGMAX=", token.String())
}

func TestParseNegated(t *testing.T) {
	t.Parallel()

	token, err := isupport.Parse([]byte("-FNC"))
	testutil.AssertNoError(t, err)
	testutil.ExpectFalse(t, token.IsSet())
	testutil.ExpectEq(t, "FNC", token.Parameter().String())
	_, ok := token.Value()
	testutil.ExpectFalse(t, ok)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := isupport.Parse(nil)
	expectError(t, err, isupport.EmptyInput)

	_, err = isupport.Parse([]byte("-FNC="))
	expectError(t, err, isupport.ValueNotPermittedOnNegatedToken)

	_, err = isupport.Parse([]byte("-FNC=whatever"))
	expectError(t, err, isupport.ValueNotPermittedOnNegatedToken)

	_, err = isupport.Parse([]byte("-fnc"))
	isupportErr := expectError(t, err, isupport.InvalidParameterByte)
	testutil.ExpectEq(t, byte('f'), isupportErr.Byte())

	_, err = isupport.Parse([]byte("PRE FIX=x"))
	isupportErr = expectError(t, err, isupport.InvalidParameterByte)
	testutil.ExpectEq(t, byte(' '), isupportErr.Byte())

	_, err = isupport.Parse([]byte("=value"))
	expectError(t, err, isupport.NoParameterBeforeEquals)

	_, err = isupport.Parse([]byte("A=\x00"))
	isupportErr = expectError(t, err, isupport.InvalidValueByte)
	testutil.ExpectEq(t, byte(0x00), isupportErr.Byte())
}

func TestFromContent(t *testing.T) {
	t.Parallel()

	msg, err := ircwire.Parse([]byte(
		":irc.example.com 005 nick PREFIX=(ov)@+ -FNC :are supported",
	))
	testutil.AssertNoError(t, err)
	params, ok := msg.Params()
	testutil.ExpectTrue(t, ok)

	first, _ := params.Get(1)
	token, err := isupport.FromContent(first)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "PREFIX", token.Parameter().String())

	second, _ := params.Get(2)
	token, err = isupport.FromContent(second)
	testutil.AssertNoError(t, err)
	testutil.ExpectFalse(t, token.IsSet())
}

func TestNew(t *testing.T) {
	t.Parallel()

	token, err := isupport.New(true, "FNC")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "FNC", token.String())

	token, err = isupport.New(false, "FNC")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "-FNC", token.String())

	_, err = isupport.New(true, "")
	expectError(t, err, isupport.EmptyParameter)

	_, err = isupport.New(true, "fnc")
	expectError(t, err, isupport.InvalidParameterByte)
}

func TestNewWithValue(t *testing.T) {
	t.Parallel()

	token, err := isupport.NewWithValue("PREFIX", "(ov)@+")
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, token.IsSet())
	testutil.ExpectEq(t, "PREFIX=(ov)@+", token.String())

	token, err = isupport.NewWithValue("TARGMAX", "")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "TARGMAX=", token.String())

	_, err = isupport.NewWithValue("PREFIX", "a\x01b")
	expectError(t, err, isupport.InvalidValueByte)
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"FNC",
		"-FNC",
		"PREFIX=(ov)@+",
		"TARGMAX=",
		"CHANLIMIT=#:25",
	} {
		token, err := isupport.Parse([]byte(input))
		testutil.AssertNoError(t, err)
		testutil.ExpectEq(t, input, token.String())
	}
}

func TestHasDuplicates(t *testing.T) {
	t.Parallel()

	parse := func(input string) isupport.Token {
		token, err := isupport.Parse([]byte(input))
		testutil.AssertNoError(t, err)
		return token
	}

	tokens := []isupport.Token{
		parse("PREFIX=(ov)@+"),
		parse("FNC"),
		parse("CASEMAPPING=ascii"),
	}
	testutil.ExpectFalse(t, isupport.HasDuplicates(tokens))

	// A set and a negated token for the same feature still collide.
	tokens = append(tokens, parse("-FNC"))
	testutil.ExpectTrue(t, isupport.HasDuplicates(tokens))
}
