// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vibrating-example demonstrates the vibrating option parser: two
// boolean flags, a required int, an optional string and trailing file
// operands.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/expipiplus1/Mr-Vibrating/pkg/vibrating"
	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run drives the whole command against the given streams and returns the
// process exit code, keeping os.Exit out of everything but main.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		usage  bool
		flag   bool
		number int
		opt    = "default"
	)

	opts := vibrating.OptionSet{
		vibrating.Bool(&usage, "Print this message", "usage", 'u'),
		vibrating.Bool(&flag, "Set some flag", "flag", 'f'),
		vibrating.Int(&number, "Some number, must be provided", "number", 'n', true),
		vibrating.String(&opt, "Some string", "optional-string", 's', false),
	}

	prog := filepath.Base(args[0])

	var files []string
	if err := vibrating.Parse(args, opts, &files); err != nil {
		fmt.Fprint(stderr, color.RedString("%v\n", err))
		fmt.Fprint(stderr, vibrating.Usage(prog, opts, true, ""))
		return 1
	}

	if usage {
		fmt.Fprint(stdout, vibrating.Usage(prog, opts, true, ""))
		return 0
	}

	fmt.Fprintf(stdout, "flag: %v\n", flag)
	fmt.Fprintf(stdout, "number: %d\n", number)
	fmt.Fprintf(stdout, "optional-string: %q\n", opt)
	for _, f := range files {
		fmt.Fprintf(stdout, "file: %s\n", f)
	}
	return 0
}
