/*
File    : gomonkey/runner/runner.go
Package : runner
*/

// Package runner implements the file-execution contract (spec §6): read a
// source file, parse it, evaluate it top-level-statement by top-level-
// statement against a fresh root environment, and print each statement's
// non-Null inspect form. It replaces the teacher's file/file.go, which
// wired file-handle builtins (fopen/fread/...) this language does not
// define — those builtins are dropped (see DESIGN.md) and the package is
// repurposed entirely for the runner contract.
package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/gomonkey/environment"
	"github.com/akashmaji946/gomonkey/eval"
	"github.com/akashmaji946/gomonkey/lexer"
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
)

const monkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

// RunFile reads path as UTF-8 source, parses it, and either prints the
// parser error banner (and stops) or evaluates each top-level statement
// against a fresh root environment, writing results to out. It returns a
// non-nil error only for I/O failure — per spec §6, parser errors are
// reported and do not count as a runner failure.
func RunFile(path string, out io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gomonkey: could not read %s: %w", path, err)
	}
	Run(string(src), out)
	return nil
}

// Run parses and evaluates src, writing the parser error banner or each
// top-level statement's result to out.
func Run(src string, out io.Writer) {
	l := lexer.New(src)
	p := parser.NewParser(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		printParserErrors(out, errs)
		return
	}

	ev := eval.NewWithWriter(out)
	env := environment.New()

	for _, stmt := range program.Statements {
		result := ev.Eval(stmt, env)
		if result == nil || result.Type() == objects.NullType {
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprintln(out, result.Inspect())
	}
}

func printParserErrors(out io.Writer, errs []string) {
	io.WriteString(out, monkeyFace)
	io.WriteString(out, "Woops! We ran into some monkey business here\n")
	io.WriteString(out, "parser Errors:\n")
	for _, e := range errs {
		io.WriteString(out, "\t- "+strings.TrimSpace(e)+"\n")
	}
}
