// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vibrating

import (
	"errors"
	"fmt"
	"testing"
)

func TestBoolResetsBinding(t *testing.T) {
	flag := true
	Bool(&flag, "Set some flag", "flag", 'f')
	if flag {
		t.Error("flag = true after Bool(), want false")
	}
}

func TestReadsValue(t *testing.T) {
	var (
		b   bool
		i   int
		i64 int64
		u   uint
		u64 uint64
		f32 float32
		f64 float64
		s   string
		lv  levelValue
	)

	tests := []struct {
		name string
		opt  Option
		want bool
	}{
		{name: "bool", opt: Bool(&b, "", "b", 0), want: false},
		{name: "int", opt: Int(&i, "", "i", 0, false), want: true},
		{name: "int64", opt: Int64(&i64, "", "i64", 0, false), want: true},
		{name: "uint", opt: Uint(&u, "", "u", 0, false), want: true},
		{name: "uint64", opt: Uint64(&u64, "", "u64", 0, false), want: true},
		{name: "float32", opt: Float32(&f32, "", "f32", 0, false), want: true},
		{name: "float64", opt: Float64(&f64, "", "f64", 0, false), want: true},
		{name: "string", opt: String(&s, "", "s", 0, false), want: true},
		{name: "custom value", opt: Option{Value: &lv, LongOpt: "level"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.ReadsValue(); got != tt.want {
				t.Errorf("ReadsValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

// levelValue is a caller-supplied Value: a string restricted to known log
// levels.
type levelValue string

func (l *levelValue) Set(s string) error {
	switch s {
	case "debug", "info", "error":
		*l = levelValue(s)
		return nil
	}
	return fmt.Errorf("unknown level %q", s)
}

func (l *levelValue) String() string { return string(*l) }

func TestParseCustomValue(t *testing.T) {
	lv := levelValue("info")
	opts := OptionSet{
		{Value: &lv, HelpString: "Log level", LongOpt: "level", ShortOpt: 'l'},
	}

	if err := Parse([]string{"prog", "-l", "debug"}, opts, nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if lv != "debug" {
		t.Errorf("level = %q, want %q", lv, "debug")
	}
}

func TestParseCustomValueError(t *testing.T) {
	lv := levelValue("info")
	opts := OptionSet{
		{Value: &lv, HelpString: "Log level", LongOpt: "level", ShortOpt: 'l'},
	}

	err := Parse([]string{"prog", "--level", "loud"}, opts, nil)
	var parseErr *ValueParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want *ValueParseError", err)
	}
	if parseErr.Value != "loud" {
		t.Errorf("Value = %q, want %q", parseErr.Value, "loud")
	}
	if lv != "info" {
		t.Errorf("level = %q after failed parse, want %q", lv, "info")
	}
}
