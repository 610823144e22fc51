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
	"bytes"
	"strings"
	"unicode/utf8"
)

// Message is the parse result for one wire line: optional tags, optional
// source, mandatory command, optional parameters. All fields are views
// into the caller's buffer; the value is immutable once constructed.
type Message struct {
	tags      Tags
	hasTags   bool
	source    Source
	hasSource bool
	command   Command
	params    Params
}

// Parse decomposes one message. The input must not include the trailing
// CR/LF.
//
// The buffer is walked front to back: a leading '@' opens a tag block
// ending at the first space, a ':' at the next position opens a source
// block ending at the following space, then the command token runs to
// the next space and the remainder is the parameter span. Exactly one
// space is skipped at each block boundary; consecutive spaces are not
// collapsed. Parameters are parsed before the command token is
// validated, because command validation needs the parameter count.
func Parse(input []byte) (Message, error) {
	if len(input) == 0 {
		return Message{}, errMessageEmptyInput()
	}
	var msg Message
	rest := input
	if rest[0] == '@' {
		span := rest
		if sp := bytes.IndexByte(rest, ' '); sp != -1 {
			span = rest[:sp]
			rest = rest[sp+1:]
		} else {
			rest = nil
		}
		tags, err := ParseTags(span)
		if err != nil {
			return Message{}, errMessageTags(err)
		}
		msg.tags = tags
		msg.hasTags = true
	}
	if len(rest) > 0 && rest[0] == ':' {
		span := rest
		if sp := bytes.IndexByte(rest, ' '); sp != -1 {
			span = rest[:sp]
			rest = rest[sp+1:]
		} else {
			rest = nil
		}
		source, err := ParseSource(span)
		if err != nil {
			return Message{}, errMessageSource(err)
		}
		msg.source = source
		msg.hasSource = true
	}
	token := rest
	var paramSpan []byte
	if sp := bytes.IndexByte(rest, ' '); sp != -1 {
		token = rest[:sp]
		paramSpan = rest[sp+1:]
	}
	params, err := ParseParams(paramSpan)
	if err != nil {
		return Message{}, errMessageParams(err)
	}
	msg.params = params
	command, err := ParseCommand(token, params.Count())
	if err != nil {
		return Message{}, errMessageCommand(err)
	}
	msg.command = command
	return msg, nil
}

// ParseUTF8 is Parse plus a whole-buffer UTF-8 probe. The probe runs
// after the structural parse succeeds.
func ParseUTF8(input []byte) (Message, error) {
	msg, err := Parse(input)
	if err != nil {
		return Message{}, err
	}
	if !utf8.Valid(input) {
		return Message{}, errMessageNotUTF8()
	}
	return msg, nil
}

// Tags returns the tag block, if the message carried one.
func (m Message) Tags() (Tags, bool) {
	return m.tags, m.hasTags
}

// Source returns the source block, if the message carried one.
func (m Message) Source() (Source, bool) {
	return m.source, m.hasSource
}

// Command returns the command. Always present on a parsed message.
func (m Message) Command() Command {
	return m.command
}

// Params returns the parameter list, if the message carried one.
func (m Message) Params() (Params, bool) {
	return m.params, m.params.count > 0
}

// StripTags returns a copy of the message with the tag block cleared,
// for relaying to peers that must not receive tags.
func (m Message) StripTags() Message {
	m.tags = Tags{}
	m.hasTags = false
	return m
}

// String renders the canonical wire form, without the trailing CR/LF.
func (m Message) String() string {
	var b strings.Builder
	if m.hasTags {
		b.WriteString(m.tags.String())
		b.WriteByte(' ')
	}
	if m.hasSource {
		b.WriteString(m.source.String())
		b.WriteByte(' ')
	}
	b.WriteString(m.command.Name())
	if m.params.count > 0 {
		b.WriteByte(' ')
		b.WriteString(m.params.String())
	}
	return b.String()
}
