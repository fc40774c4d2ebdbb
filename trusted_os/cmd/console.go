// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"sort"

	"golang.org/x/term"
)

// Banner is the console welcome banner.
var Banner string

// CmdFn represents a console command handler.
type CmdFn func(term *term.Terminal, arg []string) (res string, err error)

// Cmd represents a console command.
type Cmd struct {
	// Name is the command name
	Name string
	// Args defines the number of command arguments
	Args int
	// Pattern defines the command syntax and arguments
	Pattern *regexp.Regexp
	// Syntax defines the Help() command syntax field
	Syntax string
	// Help defines the Help() command description field
	Help string
	// Fn defines the command handler
	Fn CmdFn
}

var cmds = make(map[string]*Cmd)

// Add registers a console command.
func Add(cmd Cmd) {
	cmds[cmd.Name] = &cmd
}

// Help returns a formatted string with instructions for all registered
// commands.
func Help(term *term.Terminal) string {
	var help bytes.Buffer
	var names []string

	for name := range cmds {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		cmd := cmds[name]
		help.WriteString(fmt.Sprintf("%-10s %-25s # %s\n", cmd.Name, cmd.Syntax, cmd.Help))
	}

	return help.String()
}

// Handle executes a console command.
func Handle(term *term.Terminal, line string) (err error) {
	var match *Cmd
	var arg []string

	if line == "" {
		return
	}

	for _, cmd := range cmds {
		if cmd.Pattern == nil {
			if cmd.Name == line {
				match = cmd
				break
			}
		} else if m := cmd.Pattern.FindStringSubmatch(line); len(m) == cmd.Args+1 {
			match = cmd
			arg = m[1:]
			break
		}
	}

	if match == nil {
		return errors.New("unknown command, type `help`")
	}

	res, err := match.Fn(term, arg)

	if res != "" {
		fmt.Fprintln(term, res)
	}

	return
}

// SerialConsole starts an interactive console on the argument serial
// port.
func SerialConsole(console io.ReadWriter) {
	t := term.NewTerminal(console, "")
	t.SetPrompt(string(t.Escape.Red) + "> " + string(t.Escape.Reset))

	fmt.Fprintf(t, "%s\n", Banner)
	fmt.Fprintf(t, "%s\n", string(t.Escape.Cyan)+Help(t)+string(t.Escape.Reset))

	for {
		line, err := t.ReadLine()

		if err == io.EOF {
			break
		}

		if err != nil {
			log.Printf("readline error, %v", err)
			continue
		}

		if err = Handle(t, line); err != nil {
			if err == io.EOF {
				break
			}

			fmt.Fprintf(t, "error, %v\n", err)
		}
	}
}
