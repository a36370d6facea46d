/*
File    : gomonkey/repl/repl.go
Package : repl
*/

// Package repl implements the Read-Eval-Print Loop, adapted from the
// teacher's repl/repl.go nearly line-for-line in structure: banner,
// readline-backed line editing and history, color-coded output, and a
// panic-recovery wrapper around each evaluation. The teacher quits on
// ".exit"; spec §6 is explicit that this language quits on `\q`, so only
// the quit token and the underlying lexer/parser/eval packages change.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/gomonkey/environment"
	"github.com/akashmaji946/gomonkey/eval"
	"github.com/akashmaji946/gomonkey/lexer"
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

const quitToken = `\q`

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
   _____ ____     __  __  ____   _   __ __ __ ______ __ __
  / ___// __ \   /  |/  / / __ \ / | / // //_// ____// // /
  \__ \ / / / /  / /|_/ / / / / //  |/ // ,<  / __/  / // /
 ___/ // /_/ /  / /  / / / /_/ // /|  // /| |/ /___ /__  __/
/____/ \____/  /_/  /_/  \____//_/ |_//_/ |_/_____/   /_/
`

const line = "----------------------------------------------------------------"

// Repl is a single interactive session: banner, prompt, and the color
// scheme it prints results and errors with.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
}

// New returns a Repl configured with the default banner, version, and
// prompt (`>> `, per spec §6).
func New() *Repl {
	return &Repl{Banner: banner, Version: "v1.0.0", Prompt: ">> ", Line: line}
}

// printBanner writes the welcome banner and usage note to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "gomonkey "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, `Type your code and press enter. Type '\q' to quit.`)
	cyanColor.Fprintln(writer, "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user quits (`\q`) or EOF (Ctrl+D).
// Each line is evaluated against the same root environment, so bindings
// persist across lines within one session.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := eval.NewWithWriter(writer)
	env := environment.New()

	for {
		input, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Good Bye!\n")
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == quitToken {
			io.WriteString(writer, "Good Bye!\n")
			return
		}

		rl.SaveHistory(input)
		r.evalWithRecovery(writer, input, ev, env)
	}
}

// evalWithRecovery parses and evaluates one line of input, wrapped in a
// recover() guard as a defense against a bug in the evaluator itself —
// the evaluator's own error handling (first-class Error values) is
// expected to cover every user-reachable failure, so a panic reaching
// here means a bug, not user error.
func (r *Repl) evalWithRecovery(writer io.Writer, input string, ev *eval.Evaluator, env eval.Scope) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	l := lexer.New(input)
	p := parser.NewParser(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := ev.Eval(program, env)
	if result == nil {
		return
	}
	if result.Type() == objects.ErrorType {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
