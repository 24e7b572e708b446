package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/saba/internal/jslexer"
	"github.com/cwbudde/saba/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	showPos     bool
	showType    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a JS file or expression",
	Long: `Tokenize (lex) a JS program and print the resulting tokens.

Examples:
  # Tokenize a script file
  saba lex script.js

  # Tokenize an inline expression
  saba lex -e "var x = 42;"

  # Show token types and positions
  saba lex --show-type --show-pos script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readScriptInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := jslexer.New(input)
	for {
		tok, err := l.Next()
		if err != nil {
			return fmt.Errorf("lex: %w", err)
		}
		printJSToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func printJSToken(tok token.Token) {
	var out string
	if showType {
		out = fmt.Sprintf("[%-8s]", tok.Type)
	}
	out += fmt.Sprintf(" %s", tok)
	if showPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}

// readScriptInput resolves either an inline -e expression or a file
// argument into (source, filename, error), shared by lex/parse/run.
func readScriptInput(evalExpr string, args []string) (string, string, error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
