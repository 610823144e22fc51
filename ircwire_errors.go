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

import (
	"fmt"
)

// Errors are values constructed only on the failure path; successful parses
// allocate nothing. Each component has its own error type so callers can
// match structurally with errors.As.

type TagsErrorKind uint8

const (
	TagsEmptyInput TagsErrorKind = iota
	TagsInvalidStartingPrefix
	TagsBytesExceeded
	TagsNoTags
	TagsNotUTF8
	TagsEmptyKeyName
	TagsInvalidEscapedValueByte
)

type TagsError struct {
	kind    TagsErrorKind
	badByte byte
	excess  int
}

var _ error = (*TagsError)(nil)

func (err *TagsError) Error() string {
	switch err.kind {
	case TagsEmptyInput:
		return "tags: empty input"
	case TagsInvalidStartingPrefix:
		return fmt.Sprintf("tags: span starts with %q, expected '@'", err.badByte)
	case TagsBytesExceeded:
		return fmt.Sprintf("tags: span exceeds %d bytes by %d", maxTagBytes, err.excess)
	case TagsNoTags:
		return "tags: '@' with no tags"
	case TagsNotUTF8:
		return "tags: span is not valid UTF-8"
	case TagsEmptyKeyName:
		return "tags: empty key name"
	case TagsInvalidEscapedValueByte:
		return fmt.Sprintf("tags: invalid byte %q in escaped value", err.badByte)
	}
	return "tags: unknown error"
}

func (err *TagsError) Kind() TagsErrorKind {
	return err.kind
}

// Byte returns the offending byte for kinds that report one.
func (err *TagsError) Byte() byte {
	return err.badByte
}

// Excess returns how many bytes the span is over the limit, for
// TagsBytesExceeded.
func (err *TagsError) Excess() int {
	return err.excess
}

func errTagsEmptyInput() error {
	return &TagsError{kind: TagsEmptyInput}
}

func errTagsInvalidStartingPrefix(b byte) error {
	return &TagsError{kind: TagsInvalidStartingPrefix, badByte: b}
}

func errTagsBytesExceeded(excess int) error {
	return &TagsError{kind: TagsBytesExceeded, excess: excess}
}

func errTagsNoTags() error {
	return &TagsError{kind: TagsNoTags}
}

func errTagsNotUTF8() error {
	return &TagsError{kind: TagsNotUTF8}
}

func errTagsEmptyKeyName() error {
	return &TagsError{kind: TagsEmptyKeyName}
}

func errTagsInvalidEscapedValueByte(b byte) error {
	return &TagsError{kind: TagsInvalidEscapedValueByte, badByte: b}
}

type SourceErrorKind uint8

const (
	SourceEmptyInput SourceErrorKind = iota
	SourceInvalidStartingPrefix
	SourceInvalidByte
	SourceInvalidNickStartingByte
	SourceInvalidNickByte
	SourceEmptyNick
	SourceEmptyUser
	SourceEmptyHost
)

type SourceError struct {
	kind    SourceErrorKind
	badByte byte
}

var _ error = (*SourceError)(nil)

func (err *SourceError) Error() string {
	switch err.kind {
	case SourceEmptyInput:
		return "source: empty input"
	case SourceInvalidStartingPrefix:
		return fmt.Sprintf("source: span starts with %q, expected ':'", err.badByte)
	case SourceInvalidByte:
		return fmt.Sprintf("source: invalid byte %q", err.badByte)
	case SourceInvalidNickStartingByte:
		return fmt.Sprintf("source: nick starts with reserved byte %q", err.badByte)
	case SourceInvalidNickByte:
		return fmt.Sprintf("source: nick contains reserved byte %q", err.badByte)
	case SourceEmptyNick:
		return "source: empty nick"
	case SourceEmptyUser:
		return "source: empty user"
	case SourceEmptyHost:
		return "source: empty host"
	}
	return "source: unknown error"
}

func (err *SourceError) Kind() SourceErrorKind {
	return err.kind
}

func (err *SourceError) Byte() byte {
	return err.badByte
}

func errSourceEmptyInput() error {
	return &SourceError{kind: SourceEmptyInput}
}

func errSourceInvalidStartingPrefix(b byte) error {
	return &SourceError{kind: SourceInvalidStartingPrefix, badByte: b}
}

func errSourceInvalidByte(b byte) error {
	return &SourceError{kind: SourceInvalidByte, badByte: b}
}

func errSourceInvalidNickStartingByte(b byte) error {
	return &SourceError{kind: SourceInvalidNickStartingByte, badByte: b}
}

func errSourceInvalidNickByte(b byte) error {
	return &SourceError{kind: SourceInvalidNickByte, badByte: b}
}

func errSourceEmptyNick() error {
	return &SourceError{kind: SourceEmptyNick}
}

func errSourceEmptyUser() error {
	return &SourceError{kind: SourceEmptyUser}
}

func errSourceEmptyHost() error {
	return &SourceError{kind: SourceEmptyHost}
}

type CommandErrorKind uint8

const (
	CommandEmptyInput CommandErrorKind = iota
	CommandInvalidByte
	CommandNumberInNamed
	CommandMinimumArgs
	CommandUnhandledNumeric
	CommandUnhandledNamed
)

type CommandError struct {
	kind    CommandErrorKind
	badByte byte
	command string
	min     int
}

var _ error = (*CommandError)(nil)

func (err *CommandError) Error() string {
	switch err.kind {
	case CommandEmptyInput:
		return "command: empty input"
	case CommandInvalidByte:
		return fmt.Sprintf("command: invalid byte %q", err.badByte)
	case CommandNumberInNamed:
		return fmt.Sprintf("command: digit in named command %q", err.command)
	case CommandMinimumArgs:
		return fmt.Sprintf(
			"command: %q requires at least %d parameters",
			err.command, err.min,
		)
	case CommandUnhandledNumeric:
		return fmt.Sprintf("command: unhandled numeric %q", err.command)
	case CommandUnhandledNamed:
		return fmt.Sprintf("command: unhandled named command %q", err.command)
	}
	return "command: unknown error"
}

func (err *CommandError) Kind() CommandErrorKind {
	return err.kind
}

func (err *CommandError) Byte() byte {
	return err.badByte
}

// Command returns the token the error refers to. For CommandMinimumArgs it
// is the canonical spelling; otherwise it is the token as received.
func (err *CommandError) Command() string {
	return err.command
}

// Minimum returns the required parameter count for CommandMinimumArgs.
func (err *CommandError) Minimum() int {
	return err.min
}

func errCommandEmptyInput() error {
	return &CommandError{kind: CommandEmptyInput}
}

func errCommandInvalidByte(b byte) error {
	return &CommandError{kind: CommandInvalidByte, badByte: b}
}

func errCommandNumberInNamed(token string) error {
	return &CommandError{kind: CommandNumberInNamed, command: token}
}

func errCommandMinimumArgs(min int, command string) error {
	return &CommandError{kind: CommandMinimumArgs, command: command, min: min}
}

func errCommandUnhandledNumeric(token string) error {
	return &CommandError{kind: CommandUnhandledNumeric, command: token}
}

func errCommandUnhandledNamed(token string) error {
	return &CommandError{kind: CommandUnhandledNamed, command: token}
}

type ParamsErrorKind uint8

const (
	ParamsInvalidByte ParamsErrorKind = iota
)

type ParamsError struct {
	kind    ParamsErrorKind
	badByte byte
}

var _ error = (*ParamsError)(nil)

func (err *ParamsError) Error() string {
	return fmt.Sprintf("params: invalid byte %q", err.badByte)
}

func (err *ParamsError) Kind() ParamsErrorKind {
	return err.kind
}

func (err *ParamsError) Byte() byte {
	return err.badByte
}

func errParamsInvalidByte(b byte) error {
	return &ParamsError{kind: ParamsInvalidByte, badByte: b}
}

type MessageErrorKind uint8

const (
	MessageEmptyInput MessageErrorKind = iota
	MessageNotUTF8

	// The remaining kinds tag which component's parser failed; the
	// component's error is available via Unwrap.
	MessageTags
	MessageSource
	MessageCommand
	MessageParams
)

type MessageError struct {
	kind MessageErrorKind
	err  error
}

var _ error = (*MessageError)(nil)

func (err *MessageError) Error() string {
	switch err.kind {
	case MessageEmptyInput:
		return "message: empty input"
	case MessageNotUTF8:
		return "message: not valid UTF-8"
	}
	return "message: " + err.err.Error()
}

func (err *MessageError) Kind() MessageErrorKind {
	return err.kind
}

func (err *MessageError) Unwrap() error {
	return err.err
}

func errMessageEmptyInput() error {
	return &MessageError{kind: MessageEmptyInput}
}

func errMessageNotUTF8() error {
	return &MessageError{kind: MessageNotUTF8}
}

func errMessageTags(err error) error {
	return &MessageError{kind: MessageTags, err: err}
}

func errMessageSource(err error) error {
	return &MessageError{kind: MessageSource, err: err}
}

func errMessageCommand(err error) error {
	return &MessageError{kind: MessageCommand, err: err}
}

func errMessageParams(err error) error {
	return &MessageError{kind: MessageParams, err: err}
}
