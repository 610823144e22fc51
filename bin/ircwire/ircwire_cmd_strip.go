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

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"go.ircwire.dev/ircwire"
)

// cmdStripTags re-renders messages with the tag block removed, for
// relaying to peers that reject tags.
type cmdStripTags struct{}

func (*cmdStripTags) help() *commandHelp {
	return &commandHelp{
		usage:   "strip-tags [MESSAGE...]",
		summary: "Re-render messages (or stdin lines) without their tag block",
	}
}

func (*cmdStripTags) flags(flags *pflag.FlagSet) {}

func (*cmdStripTags) run(ctx context.Context, argv []string) int {
	rc := 0
	if len(argv) > 0 {
		for _, arg := range argv {
			if !stripOne([]byte(arg)) {
				rc = 1
			}
		}
		return rc
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if !stripOne(line) {
			rc = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return rc
}

func stripOne(line []byte) bool {
	msg, err := ircwire.Parse(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	fmt.Println(msg.StripTags())
	return true
}
