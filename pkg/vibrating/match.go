// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vibrating

// optionMatch is the result of resolving a stripped option spelling against
// a set. For value-reading descriptors fill converts and stores one value
// token; for booleans fill is nil and the scanner records presence itself.
type optionMatch struct {
	matched    bool
	readsValue bool
	index      int
	fill       func(s string) error
}

// findMatch resolves spelling against opts in declaration order and returns
// the first descriptor whose short or long form is an exact match. The
// spelling arrives with its dashes already stripped, so a one-character long
// token ("--f") can activate a short spelling.
func findMatch(opts OptionSet, spelling string) optionMatch {
	for i, o := range opts {
		short := len(spelling) == 1 && o.ShortOpt != 0 && rune(spelling[0]) == o.ShortOpt
		if !short && (o.LongOpt == "" || spelling != o.LongOpt) {
			continue
		}
		m := optionMatch{matched: true, readsValue: o.ReadsValue(), index: i}
		if m.readsValue {
			m.fill = o.Value.Set
		}
		return m
	}
	return optionMatch{index: -1}
}
