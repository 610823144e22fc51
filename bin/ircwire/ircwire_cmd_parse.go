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

type cmdParse struct {
	strict bool
}

func (*cmdParse) help() *commandHelp {
	return &commandHelp{
		usage:   "parse [MESSAGE...]",
		summary: "Parse messages (or stdin lines) and print their structure",
	}
}

func (cmd *cmdParse) flags(flags *pflag.FlagSet) {
	flags.BoolVar(&cmd.strict, "utf8", false, "reject messages that are not valid UTF-8")
}

func (cmd *cmdParse) run(ctx context.Context, argv []string) int {
	rc := 0
	if len(argv) > 0 {
		for _, arg := range argv {
			if !cmd.parseOne([]byte(arg)) {
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
		if !cmd.parseOne(line) {
			rc = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return rc
}

func (cmd *cmdParse) parseOne(line []byte) bool {
	parse := ircwire.Parse
	if cmd.strict {
		parse = ircwire.ParseUTF8
	}
	msg, err := parse(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	if tags, ok := msg.Tags(); ok {
		fmt.Printf("tags (%d):\n", tags.Count())
		for i := 0; i < tags.Count(); i++ {
			tag, _ := tags.Get(i)
			fmt.Printf("  %s\n", tag)
		}
	}
	if source, ok := msg.Source(); ok {
		origin := source.Origin()
		fmt.Printf("source: %s %s\n", origin.Kind(), origin)
	}
	fmt.Printf("command: %s %s\n", msg.Command().Kind(), msg.Command())
	if params, ok := msg.Params(); ok {
		fmt.Printf("params (%d):\n", params.Count())
		for i := 0; i < params.Count(); i++ {
			param, _ := params.Get(i)
			fmt.Printf("  %q\n", param.String())
		}
	}
	return true
}
