/*
File    : gomonkey/cmd/gomonkey/main.go
*/

// Package main is the entry point for the gomonkey interpreter. It
// delegates entirely to the cobra command tree in cmd/; this is a full
// rewrite of the teacher's main.go, which ran a demo AST-printing visitor
// rather than a real CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/gomonkey/cmd/gomonkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
