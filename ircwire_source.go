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

type OriginKind uint8

const (
	// OriginServername is an origin classified as a server name: a '.'
	// was seen before any '!' or '@'.
	OriginServername OriginKind = iota

	// OriginNickname is a nick with optional user and host.
	OriginNickname
)

func (k OriginKind) String() string {
	switch k {
	case OriginServername:
		return "SERVERNAME"
	case OriginNickname:
		return "NICKNAME"
	}
	return "UNKNOWN"
}

// Origin identifies who generated a message: either a server name, or a
// nick!user@host triple with user and host optional.
type Origin struct {
	kind    OriginKind
	name    Content
	user    Content
	hasUser bool
	host    Content
	hasHost bool
}

// Kind returns which origin variant applies.
func (o Origin) Kind() OriginKind {
	return o.kind
}

// Name returns the server name for OriginServername, or the nick for
// OriginNickname.
func (o Origin) Name() Content {
	return o.name
}

// User returns the user part (text between '!' and '@'), if present.
func (o Origin) User() (Content, bool) {
	return o.user, o.hasUser
}

// Host returns the host part (text after '@'), if present.
func (o Origin) Host() (Content, bool) {
	return o.host, o.hasHost
}

func (o Origin) String() string {
	if o.kind == OriginServername {
		return o.name.String()
	}
	b := append([]byte(nil), o.name.Bytes()...)
	if o.hasUser {
		b = append(b, '!')
		b = append(b, o.user.Bytes()...)
	}
	if o.hasHost {
		b = append(b, '@')
		b = append(b, o.host.Bytes()...)
	}
	return string(b)
}

// Source is the optional second block of a message: a ':' prefix marker
// followed by an Origin.
type Source struct {
	origin Origin
}

// Prefix returns the marker byte that introduces a source block.
func (s Source) Prefix() byte {
	return ':'
}

// Origin returns the parsed origin.
func (s Source) Origin() Origin {
	return s.origin
}

func (s Source) String() string {
	return ":" + s.origin.String()
}

// ParseSource parses a source span. The span must start with ':' and must
// not include the trailing space separator.
//
// Classification is heuristic: a '.' seen before any '!' or '@' marks the
// whole origin as a server name, even when the token could also be read
// as a bare nickname containing a dot. The servername reading wins.
func ParseSource(input []byte) (Source, error) {
	if len(input) == 0 {
		return Source{}, errSourceEmptyInput()
	}
	if input[0] != ':' {
		return Source{}, errSourceInvalidStartingPrefix(input[0])
	}
	rest := input[1:]
	exclam := -1
	at := -1
	servername := false
	for i := 0; i < len(rest); i++ {
		b := rest[i]
		switch {
		case invalidComponentByte(b):
			return Source{}, errSourceInvalidByte(b)
		case b == '.' && exclam == -1 && at == -1:
			servername = true
		case b == '!' && exclam == -1:
			exclam = i
		case b == '@' && at == -1:
			at = i
		}
	}
	if servername {
		origin := Origin{kind: OriginServername, name: NewContent(rest)}
		return Source{origin: origin}, nil
	}
	origin := Origin{kind: OriginNickname}
	switch {
	case exclam != -1 && (at == -1 || at > exclam):
		origin.name = NewContent(rest[:exclam])
		if at != -1 {
			origin.user = NewContent(rest[exclam+1 : at])
			origin.hasUser = true
			origin.host = NewContent(rest[at+1:])
			origin.hasHost = true
		} else {
			origin.user = NewContent(rest[exclam+1:])
			origin.hasUser = true
		}
	case at != -1:
		// No '!' before the '@': the '@' alone splits nick from host.
		origin.name = NewContent(rest[:at])
		origin.host = NewContent(rest[at+1:])
		origin.hasHost = true
	default:
		origin.name = NewContent(rest)
	}
	return Source{origin: origin}, nil
}

// ParseSourceStrict is ParseSource with additional validation of a
// nickname origin: the nick must be non-empty, must not start with '$'
// or ':', and must not contain reserved separator bytes; user and host,
// when present, must be non-empty.
func ParseSourceStrict(input []byte) (Source, error) {
	src, err := ParseSource(input)
	if err != nil {
		return Source{}, err
	}
	origin := src.origin
	if origin.kind != OriginNickname {
		return src, nil
	}
	nick := origin.name.Bytes()
	if len(nick) == 0 {
		return Source{}, errSourceEmptyNick()
	}
	if nick[0] == '$' || nick[0] == ':' {
		return Source{}, errSourceInvalidNickStartingByte(nick[0])
	}
	for _, b := range nick {
		switch b {
		case ' ', '!', '*', ',', '?', '@':
			return Source{}, errSourceInvalidNickByte(b)
		}
	}
	if origin.hasUser && len(origin.user.Bytes()) == 0 {
		return Source{}, errSourceEmptyUser()
	}
	if origin.hasHost && len(origin.host.Bytes()) == 0 {
		return Source{}, errSourceEmptyHost()
	}
	return src, nil
}
