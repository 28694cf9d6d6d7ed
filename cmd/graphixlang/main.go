// Package main implements the graphixlang CLI: parse an AST file and
// interpret it (spec §6).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graphixlang [ast-file] [output-file]",
	Short: "Interpret a GraphixLang AST document",
	Long: `graphixlang interprets a GraphixLang AST document: a JSON tree of
VariableDeclaration, ImageDeclaration, BatchDeclaration, ForEach, Rename,
Export, and image-operation nodes produced by an external GraphixLang
parser.

  graphixlang program.ast.json              Interpret and print a summary
  graphixlang program.ast.json result.json  Also write a JSON run summary`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInterpret,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "debug-level logging")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored diagnostics")
}

var (
	verboseFlag bool
	noColorFlag bool
)
