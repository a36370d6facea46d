/*
File    : gomonkey/parser/tracing.go
Package : parser
*/
package parser

import "fmt"

// TraceEnabled toggles the BEGIN/END parse trace. It is off by default and
// flipped on by the CLI's --tracing flag; left on permanently it would
// spam every REPL line, so callers should scope it to one-shot runs.
var TraceEnabled bool

var traceLevel int

const traceIdentPlaceholder = "\t"

func identLevel() string {
	out := ""
	for i := 0; i < traceLevel-1; i++ {
		out += traceIdentPlaceholder
	}
	return out
}

func tracePrint(fs string) {
	if !TraceEnabled {
		return
	}
	fmt.Printf("%s%s\n", identLevel(), fs)
}

func incIdent() { traceLevel++ }
func decIdent() { traceLevel-- }

// trace prints a BEGIN line for msg and returns it for untrace to pair
// against. Typical use at the top of a parse function:
//
//	defer untrace(trace("parseExpressionStatement"))
func trace(msg string) string {
	incIdent()
	tracePrint("BEGIN " + msg)
	return msg
}

// untrace prints the matching END line for a value returned by trace.
func untrace(msg string) {
	tracePrint("END " + msg)
	decIdent()
}
