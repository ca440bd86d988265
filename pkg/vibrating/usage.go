// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vibrating

import (
	"strconv"
	"strings"
)

// Usage renders the usage text for program: a header line followed by one
// line per option in declaration order, with every help string starting at
// the same column. When positionalsEnabled is set the header advertises
// trailing operands named by positionalLabel; an empty label means "file".
func Usage(program string, opts OptionSet, positionalsEnabled bool, positionalLabel string) string {
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(program)
	b.WriteString(" [option]...")
	if positionalsEnabled {
		if positionalLabel == "" {
			positionalLabel = "file"
		}
		b.WriteString(" [--] [")
		b.WriteString(positionalLabel)
		b.WriteString("]...")
	}
	b.WriteString("\n")

	maxLen := 0
	for _, o := range opts {
		if n := spellingWidth(o); n > maxLen {
			maxLen = n
		}
	}

	for _, o := range opts {
		b.WriteString("  ")
		if o.ShortOpt != 0 {
			b.WriteString("-")
			b.WriteString(string(o.ShortOpt))
		} else {
			b.WriteString("  ")
		}
		if o.LongOpt != "" {
			b.WriteString(" --")
			b.WriteString(o.LongOpt)
		}
		if o.ReadsValue() {
			b.WriteString(" ")
			b.WriteString(typeTag(o.Value))
		}
		pad := maxLen - spellingWidth(o)
		if o.LongOpt != "" {
			pad += 2
		} else {
			pad += 5
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(o.HelpString)
		if o.ReadsValue() && !o.Required {
			b.WriteString(" (default: ")
			b.WriteString(defaultString(o.Value))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// spellingWidth is the width an option's long spelling and type tag occupy
// before padding. Padding each line to the widest spelling lands every help
// string on the same column whether or not the option has a long form.
func spellingWidth(o Option) int {
	n := len(o.LongOpt)
	if o.ReadsValue() {
		n += 1 + len(typeTag(o.Value))
	}
	return n
}

// defaultString formats an option's current binding for the default suffix;
// string values are quoted.
func defaultString(v Value) string {
	if s, ok := v.(*stringValue); ok {
		return strconv.Quote(string(*s))
	}
	return v.String()
}
