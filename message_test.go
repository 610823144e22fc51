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

package ircwire_test

import (
	"errors"
	"testing"

	"go.ircwire.dev/ircwire"
	"go.ircwire.dev/ircwire/internal/testutil"
)

func expectMessageError(t *testing.T, err error, kind ircwire.MessageErrorKind) *ircwire.MessageError {
	t.Helper()
	testutil.AssertError(t, err)
	var msgErr *ircwire.MessageError
	if !errors.As(err, &msgErr) {
		t.Fatalf("Expected *MessageError, got: %T", err)
	}
	testutil.ExpectEq(t, kind, msgErr.Kind())
	return msgErr
}

func TestParseFullMessage(t *testing.T) {
	t.Parallel()

	input := []byte("@id=234AB :dan!d@localhost PRIVMSG #chan :Hey what's up!")
	msg, err := ircwire.Parse(input)
	testutil.AssertNoError(t, err)

	tags, ok := msg.Tags()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, 1, tags.Count())
	tag := tags.First()
	testutil.ExpectEq(t, "id", tag.Key().String())
	value, ok := tag.Value()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "234AB", value.String())

	source, ok := msg.Source()
	testutil.ExpectTrue(t, ok)
	origin := source.Origin()
	testutil.ExpectEq(t, ircwire.OriginNickname, origin.Kind())
	testutil.ExpectEq(t, "dan", origin.Name().String())
	user, ok := origin.User()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "d", user.String())
	host, ok := origin.Host()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "localhost", host.String())

	testutil.ExpectEq(t, ircwire.CommandNamed, msg.Command().Kind())
	testutil.ExpectEq(t, "PRIVMSG", msg.Command().Name())

	params, ok := msg.Params()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, 2, params.Count())
	testutil.ExpectEq(t, "#chan", params.First().String())
	testutil.ExpectEq(t, "Hey what's up!", params.Last().String())
}

func TestParseBareCommand(t *testing.T) {
	t.Parallel()

	msg, err := ircwire.Parse([]byte("INFO"))
	testutil.AssertNoError(t, err)
	_, ok := msg.Tags()
	testutil.ExpectFalse(t, ok)
	_, ok = msg.Source()
	testutil.ExpectFalse(t, ok)
	testutil.ExpectEq(t, "INFO", msg.Command().Name())
	_, ok = msg.Params()
	testutil.ExpectFalse(t, ok)
}

func TestParseServernameSource(t *testing.T) {
	t.Parallel()

	input := []byte(":irc.example.com CAP LS * :multi-prefix extended-join sasl")
	msg, err := ircwire.Parse(input)
	testutil.AssertNoError(t, err)

	source, ok := msg.Source()
	testutil.ExpectTrue(t, ok)
	origin := source.Origin()
	testutil.ExpectEq(t, ircwire.OriginServername, origin.Kind())
	testutil.ExpectEq(t, "irc.example.com", origin.Name().String())

	testutil.ExpectEq(t, "CAP", msg.Command().Name())

	params, ok := msg.Params()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, 3, params.Count())
	testutil.ExpectEq(t, "LS", params.First().String())
	second, _ := params.Get(1)
	testutil.ExpectEq(t, "*", second.String())
	testutil.ExpectEq(t, "multi-prefix extended-join sasl", params.Last().String())
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ircwire.Parse(nil)
	expectMessageError(t, err, ircwire.MessageEmptyInput)
}

func TestParseUnderfullCommand(t *testing.T) {
	t.Parallel()

	_, err := ircwire.Parse([]byte("PRIVMSG"))
	msgErr := expectMessageError(t, err, ircwire.MessageCommand)
	var commandErr *ircwire.CommandError
	if !errors.As(msgErr.Unwrap(), &commandErr) {
		t.Fatalf("Expected *CommandError, got: %T", msgErr.Unwrap())
	}
	testutil.ExpectEq(t, ircwire.CommandMinimumArgs, commandErr.Kind())
	testutil.ExpectEq(t, 2, commandErr.Minimum())

	_, err = ircwire.Parse([]byte("PASS"))
	msgErr = expectMessageError(t, err, ircwire.MessageCommand)
	if !errors.As(msgErr.Unwrap(), &commandErr) {
		t.Fatalf("Expected *CommandError, got: %T", msgErr.Unwrap())
	}
	testutil.ExpectEq(t, 1, commandErr.Minimum())
	testutil.ExpectEq(t, "PASS", commandErr.Command())

	// 999 is in the numeric table with a one-parameter minimum.
	_, err = ircwire.Parse([]byte("999"))
	msgErr = expectMessageError(t, err, ircwire.MessageCommand)
	if !errors.As(msgErr.Unwrap(), &commandErr) {
		t.Fatalf("Expected *CommandError, got: %T", msgErr.Unwrap())
	}
	testutil.ExpectEq(t, ircwire.CommandMinimumArgs, commandErr.Kind())
}

func TestParseComponentErrors(t *testing.T) {
	t.Parallel()

	_, err := ircwire.Parse([]byte("@ PRIVMSG #chan :hi"))
	expectMessageError(t, err, ircwire.MessageTags)

	_, err = ircwire.Parse([]byte("PRIVMSG #chan :hi\r\n"))
	expectMessageError(t, err, ircwire.MessageParams)
}

func TestParseUTF8(t *testing.T) {
	t.Parallel()

	_, err := ircwire.ParseUTF8([]byte("PRIVMSG #chan :héllo"))
	testutil.ExpectNoError(t, err)

	// Structurally valid but not UTF-8.
	_, err = ircwire.ParseUTF8([]byte("PRIVMSG #chan :\xff\xfe"))
	expectMessageError(t, err, ircwire.MessageNotUTF8)

	// Structural errors surface before the encoding probe.
	_, err = ircwire.ParseUTF8(nil)
	expectMessageError(t, err, ircwire.MessageEmptyInput)
}

func TestParseNeverPanics(t *testing.T) {
	t.Parallel()

	inputs := [][]byte{
		[]byte(" "),
		[]byte("  "),
		[]byte("@"),
		[]byte(":"),
		[]byte("@ "),
		[]byte(": "),
		[]byte("@a "),
		[]byte("@a :"),
		[]byte("@a :b "),
		[]byte("PRIVMSG  #chan :double space"),
		{0xFF, 0xFE, 0x00},
		[]byte("::::"),
	}
	for _, input := range inputs {
		_, _ = ircwire.Parse(input)
		_, _ = ircwire.ParseUTF8(input)
	}
}

func TestStripTags(t *testing.T) {
	t.Parallel()

	msg, err := ircwire.Parse([]byte("@id=234AB :dan!d@localhost PRIVMSG #chan :Hey what's up!"))
	testutil.AssertNoError(t, err)

	stripped := msg.StripTags()
	_, ok := stripped.Tags()
	testutil.ExpectFalse(t, ok)
	testutil.ExpectNoDiff(t,
		":dan!d@localhost PRIVMSG #chan :Hey what's up!",
		stripped.String(),
	)

	// The original message is unchanged.
	_, ok = msg.Tags()
	testutil.ExpectTrue(t, ok)
}

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"@id=234AB :dan!d@localhost PRIVMSG #chan :Hey what's up!",
		":irc.example.com CAP LS * :multi-prefix extended-join sasl",
		"@+icons/big=small;ccc PRIVMSG #chan :hello",
		"INFO",
		"PING :token",
		"001 nick :Welcome to the network",
	} {
		msg, err := ircwire.Parse([]byte(input))
		testutil.AssertNoError(t, err)
		testutil.ExpectNoDiff(t, input, msg.String())

		reparsed, err := ircwire.Parse([]byte(msg.String()))
		testutil.AssertNoError(t, err)
		testutil.ExpectNoDiff(t, msg.String(), reparsed.String())
	}
}

func TestMessageCanonicalCommand(t *testing.T) {
	t.Parallel()

	// Rendering uses the canonical uppercase spelling, not the bytes
	// received.
	msg, err := ircwire.Parse([]byte("privmsg #chan :hi"))
	testutil.AssertNoError(t, err)
	testutil.ExpectNoDiff(t, "PRIVMSG #chan :hi", msg.String())
}
