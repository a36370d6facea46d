/*
File    : gomonkey/cmd/gomonkey/cmd/root.go
Package : cmd
*/

// Package cmd implements the gomonkey command tree, grounded on
// CWBudde-go-dws's cmd/dwscript/cmd/{root,run}.go cobra layout (adapted
// down: no units, no semantic/type-check pass, no AST-dump flag — those
// are dwscript-specific and this language's spec has none of them).
package cmd

import (
	"os"

	"github.com/akashmaji946/gomonkey/parser"
	"github.com/akashmaji946/gomonkey/repl"
	"github.com/akashmaji946/gomonkey/runner"
	"github.com/spf13/cobra"
)

var tracing bool

var rootCmd = &cobra.Command{
	Use:     "gomonkey [file]",
	Short:   "gomonkey is an interpreter for the Monkey scripting language",
	Version: "1.0.0",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser.TraceEnabled = tracing
		if len(args) == 1 {
			return runner.RunFile(args[0], os.Stdout)
		}
		repl.New().Start(os.Stdout)
		return nil
	},
}

// Execute runs the root command, returning any error it produced.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&tracing, "tracing", false, "enable parser trace printing")
	rootCmd.AddCommand(runCmd)
}
