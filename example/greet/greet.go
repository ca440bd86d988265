// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/expipiplus1/Mr-Vibrating/pkg/vibrating"
)

func main() {
	var (
		name  = "world"
		count = 1
		shout bool
	)

	opts := vibrating.OptionSet{
		vibrating.String(&name, "Who to greet", "name", 'N', false),
		vibrating.Int(&count, "How many greetings", "count", 'c', false),
		vibrating.Bool(&shout, "Greet loudly", "shout", 'S'),
	}

	if err := vibrating.Parse(os.Args, opts, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, vibrating.Usage("greet", opts, false, ""))
		os.Exit(1)
	}

	greeting := fmt.Sprintf("Hello, %s!", name)
	if shout {
		greeting = strings.ToUpper(greeting)
	}
	for i := 0; i < count; i++ {
		fmt.Println(greeting)
	}
}
