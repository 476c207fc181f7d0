// Package main is the entry point for the watchstore service. The cobra
// command tree exposes "serve", which wires all dependencies using
// samber/do v2 and runs the HTTP server until SIGINT/SIGTERM, and
// "migrate", which manages the database schema.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
