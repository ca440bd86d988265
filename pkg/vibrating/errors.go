// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vibrating

import (
	"fmt"
	"strings"
)

// BareArgumentError is returned when a positional argument is found but the
// caller passed a nil positional collector to Parse.
type BareArgumentError struct {
	Arg string // the offending token, verbatim
}

func (e *BareArgumentError) Error() string {
	return fmt.Sprintf("bare argument found: %q", e.Arg)
}

// UnrecognizedOptionError is returned when an option token matches no
// descriptor in the set.
type UnrecognizedOptionError struct {
	Option string // the spelling as typed, without dashes
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option found: %q", e.Option)
}

// DuplicateOptionError is returned when a descriptor is activated a second
// time. The reported spelling is the second occurrence, which may differ
// from the first when an option was given once by its short and once by its
// long form.
type DuplicateOptionError struct {
	Option string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("duplicate option found: %q", e.Option)
}

// MissingValueError is returned when a value-reading option is the final
// argument, leaving no token to consume as its value.
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value for option %q", e.Option)
}

// ValueParseError is returned when an option's value token cannot be
// converted to the bound type. Err preserves the underlying strconv error.
type ValueParseError struct {
	Option string
	Value  string
	Err    error
}

func (e *ValueParseError) Error() string {
	return fmt.Sprintf("unable to parse value %q for option %q: %v", e.Value, e.Option, e.Err)
}

func (e *ValueParseError) Unwrap() error {
	return e.Err
}

// MissingRequiredOptionError reports every required option that never
// appeared, in declaration order, one line per option. Options are named by
// their dashed long spelling when they have one, short otherwise.
type MissingRequiredOptionError struct {
	Options []string
}

func (e *MissingRequiredOptionError) Error() string {
	lines := make([]string, len(e.Options))
	for i, opt := range e.Options {
		lines[i] = fmt.Sprintf("missing required option %q", opt)
	}
	return strings.Join(lines, "\n")
}
