// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/expipiplus1/Mr-Vibrating/pkg/vibrating"
)

func main() {
	var (
		port    uint = 8080
		dir          = "."
		verbose bool
	)

	opts := vibrating.OptionSet{
		vibrating.Uint(&port, "Port to listen on", "port", 'p', false),
		vibrating.String(&dir, "Directory to serve", "dir", 'd', false),
		vibrating.Bool(&verbose, "Log every request", "verbose", 'v'),
	}

	if err := vibrating.Parse(os.Args, opts, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, vibrating.Usage("serve", opts, false, ""))
		os.Exit(1)
	}

	handler := http.FileServer(http.Dir(dir))
	if verbose {
		fs := handler
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			fs.ServeHTTP(w, r)
		})
	}

	log.Printf("serving %s on :%d", dir, port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), handler))
}
