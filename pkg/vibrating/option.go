// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vibrating

// Value is the handle an Option uses to store a parsed result. Set converts
// one textual token and writes it to the bound variable; String formats the
// current value for the "(default: v)" suffix in usage text.
//
// The constructors below cover the built-in kinds. A caller may also place
// its own Value implementation in an Option literal; such an option parses
// like any value-reading option and renders the "unknown" type tag.
type Value interface {
	Set(s string) error
	String() string
}

// Option describes one command-line option: the bound value, its help text,
// its spellings, and whether it must appear. Either spelling may be absent
// (LongOpt "", ShortOpt 0), but a required option must have at least one.
// The caller owns the storage the Value writes to; Parse only borrows it.
type Option struct {
	Value      Value
	HelpString string
	LongOpt    string // spelling after "--", empty if absent
	ShortOpt   rune   // single-character spelling, 0 if absent
	Required   bool
}

// ReadsValue reports whether the option consumes the following argument as
// its value. Boolean options are presence flags and never read one.
func (o Option) ReadsValue() bool {
	_, isBool := o.Value.(*boolValue)
	return !isBool
}

// OptionSet is an ordered set of descriptors. Declaration order is
// significant: it decides which descriptor wins if spellings collide, the
// order missing required options are reported in, and the order usage lines
// are printed in. The set must not be modified while a Parse call is using
// it.
type OptionSet []Option

// Bool binds p as a presence flag: *p is reset to false now and set to true
// if either spelling appears. Boolean options never take a value and cannot
// be required.
func Bool(p *bool, help, long string, short rune) Option {
	*p = false
	return Option{Value: (*boolValue)(p), HelpString: help, LongOpt: long, ShortOpt: short}
}

// Int binds p as an option taking one int value.
func Int(p *int, help, long string, short rune, required bool) Option {
	return Option{Value: (*intValue)(p), HelpString: help, LongOpt: long, ShortOpt: short, Required: required}
}

// Int64 binds p as an option taking one int64 value.
func Int64(p *int64, help, long string, short rune, required bool) Option {
	return Option{Value: (*int64Value)(p), HelpString: help, LongOpt: long, ShortOpt: short, Required: required}
}

// Uint binds p as an option taking one uint value.
func Uint(p *uint, help, long string, short rune, required bool) Option {
	return Option{Value: (*uintValue)(p), HelpString: help, LongOpt: long, ShortOpt: short, Required: required}
}

// Uint64 binds p as an option taking one uint64 value.
func Uint64(p *uint64, help, long string, short rune, required bool) Option {
	return Option{Value: (*uint64Value)(p), HelpString: help, LongOpt: long, ShortOpt: short, Required: required}
}

// Float32 binds p as an option taking one float32 value.
func Float32(p *float32, help, long string, short rune, required bool) Option {
	return Option{Value: (*float32Value)(p), HelpString: help, LongOpt: long, ShortOpt: short, Required: required}
}

// Float64 binds p as an option taking one float64 value.
func Float64(p *float64, help, long string, short rune, required bool) Option {
	return Option{Value: (*float64Value)(p), HelpString: help, LongOpt: long, ShortOpt: short, Required: required}
}

// String binds p as an option taking one string value, stored verbatim.
func String(p *string, help, long string, short rune, required bool) Option {
	return Option{Value: (*stringValue)(p), HelpString: help, LongOpt: long, ShortOpt: short, Required: required}
}
