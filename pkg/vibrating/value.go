// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vibrating

import "strconv"

// The built-in Value implementations wrap the caller's variable directly, in
// the manner of the standard library's flag package. Set writes through only
// on success; a failed conversion leaves the previous value intact. All
// numeric kinds require the whole token to convert, and integer kinds accept
// any base strconv understands with base 0 (decimal, 0x, 0o, 0b, leading
// zero octal).

type boolValue bool

func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b = boolValue(v)
	return nil
}

func (b *boolValue) String() string { return strconv.FormatBool(bool(*b)) }

// setPresent records that the flag appeared. The scanner uses this for
// boolean options instead of Set; presence is the value.
func (b *boolValue) setPresent() { *b = true }

type intValue int

func (i *intValue) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		return err
	}
	*i = intValue(v)
	return nil
}

func (i *intValue) String() string { return strconv.FormatInt(int64(*i), 10) }

type int64Value int64

func (i *int64Value) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return err
	}
	*i = int64Value(v)
	return nil
}

func (i *int64Value) String() string { return strconv.FormatInt(int64(*i), 10) }

type uintValue uint

func (u *uintValue) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, strconv.IntSize)
	if err != nil {
		return err
	}
	*u = uintValue(v)
	return nil
}

func (u *uintValue) String() string { return strconv.FormatUint(uint64(*u), 10) }

type uint64Value uint64

func (u *uint64Value) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return err
	}
	*u = uint64Value(v)
	return nil
}

func (u *uint64Value) String() string { return strconv.FormatUint(uint64(*u), 10) }

type float32Value float32

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}

func (f *float32Value) String() string { return strconv.FormatFloat(float64(*f), 'g', -1, 32) }

type float64Value float64

func (f *float64Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = float64Value(v)
	return nil
}

func (f *float64Value) String() string { return strconv.FormatFloat(float64(*f), 'g', -1, 64) }

type stringValue string

func (s *stringValue) Set(v string) error {
	*s = stringValue(v)
	return nil
}

func (s *stringValue) String() string { return string(*s) }

// typeTag maps a Value to the tag printed after its long spelling in usage
// text. The mapping is closed over the built-in kinds; anything the library
// did not construct itself renders as "unknown".
func typeTag(v Value) string {
	switch v.(type) {
	case *intValue, *int64Value:
		return "int"
	case *uintValue, *uint64Value:
		return "uint"
	case *float32Value:
		return "float"
	case *float64Value:
		return "double"
	case *stringValue:
		return "string"
	default:
		return "unknown"
	}
}
