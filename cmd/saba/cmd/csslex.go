package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/saba/internal/cssscan"
	"github.com/spf13/cobra"
)

var cssEvalExpr string

var cssLexCmd = &cobra.Command{
	Use:   "csslex [file]",
	Short: "Tokenize a CSS file or snippet",
	Long: `Tokenize (lex) a CSS snippet and print the resulting tokens.

Examples:
  saba csslex -e "#main { color: red; }"
  saba csslex styles.css`,
	Args: cobra.MaximumNArgs(1),
	RunE: cssLexScript,
}

func init() {
	rootCmd.AddCommand(cssLexCmd)
	cssLexCmd.Flags().StringVarP(&cssEvalExpr, "eval", "e", "", "tokenize inline CSS instead of reading from file")
}

func cssLexScript(_ *cobra.Command, args []string) error {
	input, _, err := readScriptInput(cssEvalExpr, args)
	if err != nil {
		return err
	}

	t := cssscan.New(input)
	for {
		tok, err := t.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("csslex: %w", err)
		}
		fmt.Println(tok)
	}
}
