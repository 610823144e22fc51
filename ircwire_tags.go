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
	"unicode/utf8"
)

// Hard limit on the tag block, per the IRCv3 message-tags extension:
// 8191 bytes including the trailing space separator, which is not part
// of the span handed to ParseTags.
const maxTagBytes = 8190

// Tags is the parsed tag block of a message: a tag count and a borrowed
// span starting with '@'. Individual tags are not materialized; Get
// re-scans the span on demand.
type Tags struct {
	count int
	raw   []byte
}

// ParseTags parses a tag span. The span must start with '@' and must not
// include the space separating the block from the rest of the message.
func ParseTags(input []byte) (Tags, error) {
	if len(input) == 0 {
		return Tags{}, errTagsEmptyInput()
	}
	if len(input) > maxTagBytes {
		return Tags{}, errTagsBytesExceeded(len(input) - maxTagBytes)
	}
	if input[0] != '@' {
		return Tags{}, errTagsInvalidStartingPrefix(input[0])
	}
	if len(input) == 1 {
		return Tags{}, errTagsNoTags()
	}
	if !utf8.Valid(input) {
		return Tags{}, errTagsNotUTF8()
	}
	count := 0
	segStart := 1
	inValue := false
	for i := 1; i <= len(input); i++ {
		if i == len(input) || input[i] == ';' {
			if i == segStart {
				return Tags{}, errTagsEmptyKeyName()
			}
			count++
			segStart = i + 1
			inValue = false
			continue
		}
		b := input[i]
		if b == '=' && !inValue {
			if i == segStart {
				return Tags{}, errTagsEmptyKeyName()
			}
			inValue = true
		} else if inValue && invalidComponentByte(b) {
			return Tags{}, errTagsInvalidEscapedValueByte(b)
		}
	}
	return Tags{count: count, raw: input}, nil
}

// Count returns the number of tags in the block.
func (t Tags) Count() int {
	return t.count
}

// Content returns the whole span, including the leading '@'.
func (t Tags) Content() Content {
	return NewContent(t.raw)
}

// First returns the first tag.
func (t Tags) First() Tag {
	tag, _ := t.Get(0)
	return tag
}

// Last returns the last tag.
func (t Tags) Last() Tag {
	tag, _ := t.Get(t.count - 1)
	return tag
}

// Get re-scans the span and returns the tag at index (starting at 0).
// Out-of-range indexes return false.
func (t Tags) Get(index int) (Tag, bool) {
	if index < 0 || index >= t.count {
		return Tag{}, false
	}
	current := 0
	segStart := 1
	for i := 1; i <= len(t.raw); i++ {
		if i < len(t.raw) && t.raw[i] != ';' {
			continue
		}
		if current == index {
			return parseTag(t.raw[segStart:i]), true
		}
		current++
		segStart = i + 1
	}
	return Tag{}, false
}

func (t Tags) String() string {
	return string(t.raw)
}

// Tag is one key/value entry of a tag block.
type Tag struct {
	clientOnly bool
	vendor     Content
	hasVendor  bool
	key        Content
	value      Content
	hasValue   bool
}

// parseTag decomposes one semicolon-delimited segment. The segment is
// known non-empty from the counting pass.
func parseTag(seg []byte) Tag {
	var tag Tag
	if len(seg) > 0 && seg[0] == '+' {
		tag.clientOnly = true
		seg = seg[1:]
	}
	key := seg
	if eq := bytes.IndexByte(seg, '='); eq != -1 {
		key = seg[:eq]
		tag.value = NewContent(seg[eq+1:])
		tag.hasValue = true
	}
	// A '/' inside the escaped value is not a vendor delimiter, so the
	// vendor is only looked for in the key part.
	if slash := bytes.IndexByte(key, '/'); slash != -1 {
		tag.vendor = NewContent(key[:slash])
		tag.hasVendor = true
		key = key[slash+1:]
	}
	tag.key = NewContent(key)
	return tag
}

// IsClientOnly reports whether the tag carries the '+' client-only marker.
func (t Tag) IsClientOnly() bool {
	return t.clientOnly
}

// Vendor returns the vendor namespace (text before '/'), if present.
func (t Tag) Vendor() (Content, bool) {
	return t.vendor, t.hasVendor
}

// Key returns the tag's key name.
func (t Tag) Key() Content {
	return t.key
}

// Value returns the escaped value (text after '='), if present. A bare
// trailing '=' yields an empty but present value.
func (t Tag) Value() (Content, bool) {
	return t.value, t.hasValue
}

func (t Tag) String() string {
	var b []byte
	if t.clientOnly {
		b = append(b, '+')
	}
	if t.hasVendor {
		b = append(b, t.vendor.Bytes()...)
		b = append(b, '/')
	}
	b = append(b, t.key.Bytes()...)
	if t.hasValue {
		b = append(b, '=')
		b = append(b, t.value.Bytes()...)
	}
	return string(b)
}
