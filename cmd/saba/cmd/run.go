package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/saba/internal/domtree"
	"github.com/cwbudde/saba/internal/interp"
	"github.com/cwbudde/saba/internal/parser"
	"github.com/spf13/cobra"
)

var (
	runEvalExpr string
	domFixture  string
	trace       bool
	dumpDOM     bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Parse and execute a JS file or expression against a DOM fixture",
	Long: `Execute a JS program from a file or inline expression against an
in-memory DOM fixture (see --dom).

Examples:
  # Run a script file against a DOM fixture
  saba run --dom page.yaml script.js

  # Evaluate an inline expression with no DOM
  saba run -e "1 + 2"

  # Trace each top-level statement's result
  saba run --trace --dom page.yaml script.js

  # Print the DOM fixture after the script ran
  saba run --dom page.yaml --dump-dom script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().StringVar(&domFixture, "dom", "", "path to a YAML DOM fixture (see internal/domtree)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print each top-level statement's resulting value")
	runCmd.Flags().BoolVar(&dumpDOM, "dump-dom", false, "print the DOM fixture as YAML after execution")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readScriptInput(runEvalExpr, args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(input)
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	root, err := loadDOMFixture(domFixture)
	if err != nil {
		return err
	}

	it := interp.New(root)
	if trace {
		values, err := it.EvalAll(program)
		for i, v := range values {
			if v == nil {
				fmt.Printf("[%d] <none>\n", i)
				continue
			}
			fmt.Printf("[%d] %s\n", i, v)
		}
		if err != nil {
			return fmt.Errorf("run %s: %w", filename, err)
		}
	} else if err := it.Execute(program); err != nil {
		return fmt.Errorf("run %s: %w", filename, err)
	}

	if dumpDOM {
		out, err := domtree.Marshal(root)
		if err != nil {
			return fmt.Errorf("dumping DOM: %w", err)
		}
		fmt.Print(string(out))
	}

	return nil
}

// loadDOMFixture loads path as a YAML DOM fixture, or returns an empty
// Document root when path is empty.
func loadDOMFixture(path string) (*domtree.Node, error) {
	if path == "" {
		return &domtree.Node{Kind: domtree.Document}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read DOM fixture %s: %w", path, err)
	}
	root, err := domtree.LoadFixture(data)
	if err != nil {
		return nil, fmt.Errorf("loading DOM fixture %s: %w", path, err)
	}
	return root, nil
}
