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

func expectCommandError(t *testing.T, err error, kind ircwire.CommandErrorKind) *ircwire.CommandError {
	t.Helper()
	testutil.AssertError(t, err)
	var commandErr *ircwire.CommandError
	if !errors.As(err, &commandErr) {
		t.Fatalf("Expected *CommandError, got: %T", err)
	}
	testutil.ExpectEq(t, kind, commandErr.Kind())
	return commandErr
}

func TestParseCommandNamed(t *testing.T) {
	t.Parallel()

	cmd, err := ircwire.ParseCommand([]byte("PRIVMSG"), 2)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, ircwire.CommandNamed, cmd.Kind())
	testutil.ExpectEq(t, "PRIVMSG", cmd.Name())

	// Matching is case-insensitive; the canonical spelling comes back.
	cmd, err = ircwire.ParseCommand([]byte("pInG"), 1)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "PING", cmd.Name())

	cmd, err = ircwire.ParseCommand([]byte("info"), 0)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "INFO", cmd.Name())

	cmd, err = ircwire.ParseCommand([]byte("AUTHENTICATE"), 1)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "AUTHENTICATE", cmd.Name())
}

func TestParseCommandNumeric(t *testing.T) {
	t.Parallel()

	cmd, err := ircwire.ParseCommand([]byte("001"), 2)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, ircwire.CommandNumeric, cmd.Kind())
	testutil.ExpectEq(t, "001", cmd.Name())

	// One numeric from each minimum-count band.
	for _, tc := range []struct {
		code string
		min  int
	}{
		{"006", 1},
		{"005", 2},
		{"043", 3},
		{"010", 4},
		{"004", 5},
		{"218", 6},
		{"213", 7},
		{"352", 8},
	} {
		_, err := ircwire.ParseCommand([]byte(tc.code), tc.min)
		testutil.ExpectNoError(t, err)

		_, err = ircwire.ParseCommand([]byte(tc.code), tc.min-1)
		commandErr := expectCommandError(t, err, ircwire.CommandMinimumArgs)
		testutil.ExpectEq(t, tc.min, commandErr.Minimum())
		testutil.ExpectEq(t, tc.code, commandErr.Command())
	}
}

func TestParseCommandErrors(t *testing.T) {
	t.Parallel()

	_, err := ircwire.ParseCommand(nil, 0)
	expectCommandError(t, err, ircwire.CommandEmptyInput)

	_, err = ircwire.ParseCommand([]byte("PRIV-MSG"), 2)
	commandErr := expectCommandError(t, err, ircwire.CommandInvalidByte)
	testutil.ExpectEq(t, '-', commandErr.Byte())

	_, err = ircwire.ParseCommand([]byte("P1NG"), 1)
	expectCommandError(t, err, ircwire.CommandNumberInNamed)

	_, err = ircwire.ParseCommand([]byte("1234"), 1)
	expectCommandError(t, err, ircwire.CommandNumberInNamed)

	_, err = ircwire.ParseCommand([]byte("000"), 9)
	expectCommandError(t, err, ircwire.CommandUnhandledNumeric)

	_, err = ircwire.ParseCommand([]byte("XYZZY"), 9)
	expectCommandError(t, err, ircwire.CommandUnhandledNamed)

	_, err = ircwire.ParseCommand([]byte("EXCESSIVELYLONG"), 9)
	expectCommandError(t, err, ircwire.CommandUnhandledNamed)

	_, err = ircwire.ParseCommand([]byte("PASS"), 0)
	commandErr = expectCommandError(t, err, ircwire.CommandMinimumArgs)
	testutil.ExpectEq(t, 1, commandErr.Minimum())
	testutil.ExpectEq(t, "PASS", commandErr.Command())

	_, err = ircwire.ParseCommand([]byte("service"), 5)
	commandErr = expectCommandError(t, err, ircwire.CommandMinimumArgs)
	testutil.ExpectEq(t, 6, commandErr.Minimum())
	testutil.ExpectEq(t, "SERVICE", commandErr.Command())
}

func TestParseCommandZeroMinimum(t *testing.T) {
	t.Parallel()

	for _, verb := range []string{"INFO", "QUIT", "MOTD", "AWAY", "LIST"} {
		cmd, err := ircwire.ParseCommand([]byte(verb), 0)
		testutil.AssertNoError(t, err)
		testutil.ExpectEq(t, verb, cmd.Name())
	}
}
