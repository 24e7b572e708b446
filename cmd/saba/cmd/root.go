package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "saba",
	Short: "saba scripting core: CSS tokenizer, JS lexer/parser, tree-walking interpreter",
	Long: `saba is a minimal browser scripting engine: it tokenizes CSS, and
tokenizes, parses, and interprets a small JavaScript subset against an
in-memory DOM fixture.

It implements only the scripting core of a browser engine:
  - A CSS tokenizer (the same lexical-scanner vocabulary as the JS lexer)
  - A recursive-descent JS parser producing a tree-walked AST
  - A tree-walking interpreter with lexical scopes and a host bridge
    that lets scripts read document.getElementById and assign
    .textContent

The windowing shell, HTML parsing, and CSS styling are out of scope —
this is the pipeline from source text to a DOM mutation.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
