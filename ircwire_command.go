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

type CommandKind uint8

const (
	// CommandNamed is a verb such as PRIVMSG.
	CommandNamed CommandKind = iota

	// CommandNumeric is a 3-digit reply or error code.
	CommandNumeric
)

func (k CommandKind) String() string {
	switch k {
	case CommandNamed:
		return "NAMED"
	case CommandNumeric:
		return "NUMERIC"
	}
	return "UNKNOWN"
}

// Command is a recognized command token. The name is the canonical
// spelling from the command table: uppercase for named commands, the
// 3-digit text for numerics.
type Command struct {
	kind CommandKind
	name string
}

// Kind returns whether the command is named or numeric.
func (c Command) Kind() CommandKind {
	return c.kind
}

// Name returns the canonical spelling.
func (c Command) Name() string {
	return c.name
}

func (c Command) String() string {
	return c.name
}

// Named commands longer than this cannot appear in the table
// (AUTHENTICATE is the longest at 12 bytes).
const maxNamedLen = 12

// ParseCommand validates a command token against the closed command
// table and the supplied parameter count. Parameter parsing must run
// first: most table entries carry a minimum parameter count, so the
// count feeds into command validation even though the command precedes
// the parameters on the wire.
//
// The success path does not allocate: matched tokens resolve to the
// table's canonical spelling.
func ParseCommand(input []byte, paramCount int) (Command, error) {
	if len(input) == 0 {
		return Command{}, errCommandEmptyInput()
	}
	digits := 0
	for _, b := range input {
		if !asciiAlphanumeric(b) {
			return Command{}, errCommandInvalidByte(b)
		}
		if asciiDigit(b) {
			digits++
		}
	}
	if len(input) == 3 && digits == 3 {
		spec, ok := lookupCommand(numericCommands[:], input)
		if !ok {
			return Command{}, errCommandUnhandledNumeric(string(input))
		}
		if paramCount < spec.minParams {
			return Command{}, errCommandMinimumArgs(spec.minParams, spec.name)
		}
		return Command{kind: CommandNumeric, name: spec.name}, nil
	}
	if digits > 0 {
		return Command{}, errCommandNumberInNamed(string(input))
	}
	if len(input) > maxNamedLen {
		return Command{}, errCommandUnhandledNamed(string(input))
	}
	var folded [maxNamedLen]byte
	for i, b := range input {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		folded[i] = b
	}
	spec, ok := lookupCommand(namedCommands[:], folded[:len(input)])
	if !ok {
		return Command{}, errCommandUnhandledNamed(string(input))
	}
	if paramCount < spec.minParams {
		return Command{}, errCommandMinimumArgs(spec.minParams, spec.name)
	}
	return Command{kind: CommandNamed, name: spec.name}, nil
}

type commandSpec struct {
	name      string
	minParams int
}

// lookupCommand binary-searches a table sorted by name. The comparison
// avoids converting the token to a string so lookups stay allocation-free.
func lookupCommand(table []commandSpec, token []byte) (commandSpec, bool) {
	lo, hi := 0, len(table)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if compareNameToken(table[mid].name, token) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(table) && compareNameToken(table[lo].name, token) == 0 {
		return table[lo], true
	}
	return commandSpec{}, false
}

func compareNameToken(name string, token []byte) int {
	n := len(name)
	if len(token) < n {
		n = len(token)
	}
	for i := 0; i < n; i++ {
		if name[i] != token[i] {
			if name[i] < token[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(name) < len(token):
		return -1
	case len(name) > len(token):
		return 1
	}
	return 0
}
