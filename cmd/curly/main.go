// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
)

const version = "0.1.0"

func main() {
	curlyCmd(os.Args...)
}

// TestEnvironment is true when testing the curly command, false otherwise.
var TestEnvironment = false

// exit causes the current program to exit with the given status code. If
// running in a test environment, every exit call is a no-op.
func exit(status int) {
	if !TestEnvironment {
		os.Exit(status)
	}
}

// stderr prints lines on stderr.
func stderr(lines ...string) {
	for _, l := range lines {
		fmt.Fprint(os.Stderr, l+"\n")
	}
}

// exitError prints msg on stderr with a bold red color and exits with status
// code 1.
func exitError(format string, a ...interface{}) {
	msg := fmt.Errorf(format, a...)
	stderr("\033[1;31m"+msg.Error()+"\033[0m", `exit status 1`)
	exit(1)
}

// curlyCmd runs the command 'curly' with the given args. The first argument
// must be the executable name. It is not called curly so that the other
// files of the package can import the curly package by its own name.
func curlyCmd(args ...string) {
	flag.Usage = commandsHelp["curly"]

	// No command provided.
	if len(args) == 1 {
		flag.Usage()
		exit(0)
		return
	}

	cmdArg := args[1]

	// Used by flag.Parse.
	os.Args = append(args[:1], args[2:]...)

	cmd, ok := commands[cmdArg]
	if !ok {
		stderr(
			fmt.Sprintf("curly %s: unknown command", cmdArg),
			`Run 'curly help' for usage.`,
		)
		exit(1)
		return
	}
	cmd()
}

// commandsHelp maps a command name to a function that prints help for that
// command.
var commandsHelp = map[string]func(){
	"curly": func() {
		stderr(
			`Curly is a tool for rendering and verifying format scenario files`,
			``,
			`Usage:`,
			``,
			`	curly <command> [arguments]`,
			``,
			`The commands are:`,
			``,
			`	run         render the scenarios of a file and verify them`,
			`	serve       serve scenario reports and markdown over HTTP`,
			`	version     print curly version`,
			``,
			`Use "curly help <command>" for more information about a command.`,
		)
		flag.PrintDefaults()
	},
	"run": func() {
		stderr(
			`usage: curly run [-v] file...`,
			``,
			`Run renders the scenarios of the given files and verifies the expected`,
			`outputs. A file is a YAML scenario file or a txtar archive of scenario`,
			`files. With -v every scenario is reported, not only the failing ones.`,
			``,
			`The exit status is 1 if any scenario fails.`,
		)
	},
	"serve": func() {
		stderr(
			`usage: curly serve [-addr address]`,
			``,
			`Serve serves the current directory over HTTP. Scenario files render as`,
			`plain text reports, refreshed when the files change; markdown files`,
			`render as HTML; everything else is served as a static file.`,
		)
	},
	"version": func() {
		stderr(`usage: curly version`)
	},
}

// commands maps a command name to a function that executes that command.
// Commands are called by command-line using:
//
//	curly command
var commands = map[string]func(){
	"run": func() {
		flag.Usage = commandsHelp["run"]
		runCmd()
	},
	"serve": func() {
		flag.Usage = commandsHelp["serve"]
		serveCmd()
	},
	"help": func() {
		if len(os.Args) == 1 {
			flag.Usage()
			exit(0)
			return
		}
		topic := os.Args[1]
		help, ok := commandsHelp[topic]
		if !ok {
			fmt.Fprintf(os.Stderr, "curly help %s: unknown help topic. Run 'curly help'.\n", topic)
			exit(1)
			return
		}
		help()
	},
	"version": func() {
		flag.Usage = commandsHelp["version"]
		fmt.Printf("curly version %s (%s)\n", version, runtime.Version())
	},
}
