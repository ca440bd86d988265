// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vibrating

import "strings"

// Parse scans args against opts, writing each parsed value through its
// descriptor's bound variable as soon as it is read. args[0] is the program
// name and is skipped. Non-option arguments, and every argument after a "--"
// terminator, are appended to *positionals in input order; a nil positionals
// makes any such argument an error.
//
// Scanning stops at the first error, leaving values parsed so far in place.
// After an error-free scan, required options that never appeared are
// reported together in a single MissingRequiredOptionError. A nil return
// means every argument was consumed and every required option was seen.
func Parse(args []string, opts OptionSet, positionals *[]string) error {
	seen := make([]bool, len(opts))
	terminated := false

	for i := 1; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			// The terminator is consumed, never collected. Later
			// occurrences are consumed the same way.
			terminated = true
			continue
		}

		var spelling string
		switch {
		case terminated:
			// everything after the terminator is positional
		case len(arg) == 2 && arg[0] == '-' && arg[1] != '-':
			spelling = arg[1:]
		case len(arg) >= 3 && strings.HasPrefix(arg, "--"):
			spelling = arg[2:]
		}

		if spelling == "" {
			if positionals == nil {
				return &BareArgumentError{Arg: arg}
			}
			*positionals = append(*positionals, arg)
			continue
		}

		m := findMatch(opts, spelling)
		if !m.matched {
			return &UnrecognizedOptionError{Option: spelling}
		}
		if seen[m.index] {
			return &DuplicateOptionError{Option: spelling}
		}
		seen[m.index] = true

		if !m.readsValue {
			opts[m.index].Value.(*boolValue).setPresent()
			continue
		}
		if i+1 >= len(args) {
			return &MissingValueError{Option: spelling}
		}
		i++
		// The value is the next argument verbatim, even if it looks
		// like an option or a terminator.
		value := args[i]
		if err := m.fill(value); err != nil {
			return &ValueParseError{Option: spelling, Value: value, Err: err}
		}
	}

	return checkRequired(opts, seen)
}

// checkRequired reports every required descriptor that was never activated,
// in declaration order, preferring the long spelling.
func checkRequired(opts OptionSet, seen []bool) error {
	var missing []string
	for i, o := range opts {
		if !o.Required || seen[i] {
			continue
		}
		switch {
		case o.LongOpt != "":
			missing = append(missing, "--"+o.LongOpt)
		case o.ShortOpt != 0:
			missing = append(missing, "-"+string(o.ShortOpt))
		default:
			panic("vibrating: required option with no spelling")
		}
	}
	if len(missing) > 0 {
		return &MissingRequiredOptionError{Options: missing}
	}
	return nil
}
