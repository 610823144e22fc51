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

// Package isupport parses the feature tokens a server advertises in its
// RPL_ISUPPORT (005) replies. The middle parameters of a 005 message are
// each one token: a feature being set ("PREFIX=(ov)@+") or unset
// ("-FNC"). Tokens are not validated against a list of known features;
// well-formed but unknown tokens parse fine.
package isupport

import (
	"bytes"

	"go.ircwire.dev/ircwire"
)

// Token is one advertised feature: set or negated, a parameter name, and
// an optional value.
type Token struct {
	set           bool
	parameter     ircwire.Content
	equalsPresent bool
	value         ircwire.Content
	hasValue      bool
}

// Parse reads one token from a parameter span. A leading '-' negates the
// token; negated tokens may not carry '=' or a value.
func Parse(input []byte) (Token, error) {
	if len(input) == 0 {
		return Token{}, errEmptyInput()
	}
	set := true
	rest := input
	if input[0] == '-' {
		set = false
		rest = input[1:]
	}
	equalsIndex := -1
	for i := 0; i < len(rest); i++ {
		b := rest[i]
		if equalsIndex == -1 && b == '=' {
			if !set {
				return Token{}, errValueNotPermittedOnNegatedToken()
			}
			equalsIndex = i
			continue
		}
		if equalsIndex == -1 {
			if invalidParameterByte(b) {
				return Token{}, errInvalidParameterByte(b)
			}
		} else if invalidValueByte(b) {
			return Token{}, errInvalidValueByte(b)
		}
	}
	token := Token{set: set}
	if equalsIndex == -1 {
		token.parameter = ircwire.NewContent(rest)
		return token, nil
	}
	if equalsIndex == 0 {
		return Token{}, errNoParameterBeforeEquals()
	}
	token.equalsPresent = true
	token.parameter = ircwire.NewContent(rest[:equalsIndex])
	if value := rest[equalsIndex+1:]; len(value) > 0 {
		token.value = ircwire.NewContent(value)
		token.hasValue = true
	}
	return token, nil
}

// FromContent parses a token out of an extracted parameter view.
func FromContent(content ircwire.Content) (Token, error) {
	return Parse(content.Bytes())
}

// New constructs a set or negated token with no value. Intended for the
// server side; the parameter is checked but not matched against known
// features.
func New(set bool, parameter string) (Token, error) {
	if err := checkParameter(parameter); err != nil {
		return Token{}, err
	}
	return Token{set: set, parameter: ircwire.NewContent([]byte(parameter))}, nil
}

// NewWithValue constructs a set token carrying a value. An empty value
// renders as a bare trailing '='.
func NewWithValue(parameter, value string) (Token, error) {
	if err := checkParameter(parameter); err != nil {
		return Token{}, err
	}
	token := Token{
		set:           true,
		parameter:     ircwire.NewContent([]byte(parameter)),
		equalsPresent: true,
	}
	if len(value) == 0 {
		return token, nil
	}
	for i := 0; i < len(value); i++ {
		if invalidValueByte(value[i]) {
			return Token{}, errInvalidValueByte(value[i])
		}
	}
	token.value = ircwire.NewContent([]byte(value))
	token.hasValue = true
	return token, nil
}

func checkParameter(parameter string) error {
	if len(parameter) == 0 {
		return errEmptyParameter()
	}
	for i := 0; i < len(parameter); i++ {
		if invalidParameterByte(parameter[i]) {
			return errInvalidParameterByte(parameter[i])
		}
	}
	return nil
}

// IsSet reports whether the token sets the feature (no leading '-').
func (t Token) IsSet() bool {
	return t.set
}

// Parameter returns the feature name.
func (t Token) Parameter() ircwire.Content {
	return t.parameter
}

// Value returns the feature value, if one is present.
func (t Token) Value() (ircwire.Content, bool) {
	return t.value, t.hasValue
}

func (t Token) String() string {
	var b []byte
	if !t.set {
		b = append(b, '-')
	}
	b = append(b, t.parameter.Bytes()...)
	if t.equalsPresent {
		b = append(b, '=')
		b = append(b, t.value.Bytes()...)
	}
	return string(b)
}

// HasDuplicates reports whether any two tokens advertise the same
// parameter. A server should never repeat a parameter within one 005.
func HasDuplicates(tokens []Token) bool {
	for i := range tokens {
		for j := range tokens {
			if i == j {
				continue
			}
			if bytes.Equal(tokens[i].parameter.Bytes(), tokens[j].parameter.Bytes()) {
				return true
			}
		}
	}
	return false
}

// Parameter names are ASCII uppercase letters and digits.
func invalidParameterByte(b byte) bool {
	return !(b >= 'A' && b <= 'Z') && !(b >= '0' && b <= '9')
}

// Values may hold any printable ASCII byte.
func invalidValueByte(b byte) bool {
	return b < 0x20 || b > 0x7E
}
