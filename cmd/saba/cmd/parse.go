package cmd

import (
	"fmt"

	"github.com/cwbudde/saba/internal/parser"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a JS file or expression and print the resulting AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, filename, err := readScriptInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(input)
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	for i, stmt := range program.Body {
		fmt.Printf("[%d] %s\n", i, stmt.String())
	}
	return nil
}
