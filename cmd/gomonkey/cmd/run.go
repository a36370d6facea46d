/*
File    : gomonkey/cmd/gomonkey/cmd/run.go
Package : cmd
*/
package cmd

import (
	"os"

	"github.com/akashmaji946/gomonkey/parser"
	"github.com/akashmaji946/gomonkey/runner"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a gomonkey source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser.TraceEnabled = tracing
		return runner.RunFile(args[0], os.Stdout)
	},
}
