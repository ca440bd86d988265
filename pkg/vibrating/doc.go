// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vibrating provides a small declaration-driven command-line option
// parser with aligned usage output.
//
// The library is deliberately minimal and follows these principles:
//   - Options are declared once, as an ordered set of descriptors bound to
//     plain variables the caller already owns
//   - Values are written through as soon as they are parsed, so variable
//     initializers double as defaults
//   - Parsing is a single left-to-right pass with no look-ahead and no
//     reordering
//   - Errors are typed values describing exactly one failure
//
// # Declaring Options
//
// Each option binds a variable, a help string, a long spelling, a short
// spelling, and (except for booleans) a required marker. Either spelling may
// be absent:
//
//	var (
//	    verbose bool
//	    count   int
//	    name    = "default"
//	)
//
//	opts := vibrating.OptionSet{
//	    vibrating.Bool(&verbose, "Enable verbose output", "verbose", 'v'),
//	    vibrating.Int(&count, "Number of items", "count", 'n', true),
//	    vibrating.String(&name, "Name to use", "name", 0, false),
//	}
//
//	var files []string
//	if err := vibrating.Parse(os.Args, opts, &files); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    fmt.Fprint(os.Stderr, vibrating.Usage("prog", opts, true, ""))
//	    os.Exit(1)
//	}
//
// # Parsing Rules
//
// Arguments are classified by exact shape: "--" is the positional terminator,
// a two-character "-x" token is a short option, a "--name" token of three or
// more characters is a long option, and everything else is positional.
// Option tokens must match a declared spelling exactly; there is no combined
// short-flag form ("-abc"), no "=value" form, and no prefix matching.
//
// Boolean options are presence flags: the bound variable is reset to false
// when the option is declared and set to true if either spelling appears.
// Every other option reads the next argument, verbatim, as its value; the
// value is converted with the strconv functions for the bound type and
// stored immediately.
//
// Each option may appear at most once. After "--" every remaining argument
// is positional, including ones that look like options.
//
// # Errors
//
// Parse returns nil only if every argument was consumed and every required
// option appeared. Scan failures (unknown option, duplicate, missing or
// malformed value, positional with no collector) abort at the first
// offending token and are returned as *UnrecognizedOptionError,
// *DuplicateOptionError, *MissingValueError, *ValueParseError or
// *BareArgumentError. Required options are checked only after a clean scan
// and reported together as a *MissingRequiredOptionError, one line per
// missing option.
//
// # Usage Text
//
// Usage renders one line per option in declaration order, with short and
// long spellings, a type tag for value-reading options, and the help string
// aligned to a common column. Non-required value options show their current
// binding as "(default: v)":
//
//	Usage: prog [option]... [--] [file]...
//	  -v --verbose      Enable verbose output
//	  -n --count int    Number of items
//	     --name string  Name to use (default: "default")
package vibrating
