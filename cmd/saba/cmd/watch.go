package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/saba/internal/domtree"
	"github.com/cwbudde/saba/internal/interp"
	"github.com/cwbudde/saba/internal/parser"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchDOMFixture string

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run a JS file against a fresh DOM fixture on every save",
	Long: `watch re-parses and re-executes a script file each time it (or its
DOM fixture) changes on disk, printing the mutated DOM fixture after
each run. It is meant for interactive development, not production use —
there is no debouncing beyond what the OS coalesces into one event.`,
	Args: cobra.ExactArgs(1),
	RunE: watchScript,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchDOMFixture, "dom", "", "path to a YAML DOM fixture (see internal/domtree)")
}

func watchScript(_ *cobra.Command, args []string) error {
	scriptPath := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(scriptPath); err != nil {
		return fmt.Errorf("watch: watching %s: %w", scriptPath, err)
	}
	if watchDOMFixture != "" {
		if err := watcher.Add(watchDOMFixture); err != nil {
			return fmt.Errorf("watch: watching %s: %w", watchDOMFixture, err)
		}
	}

	runOnce := func() {
		if err := runOnChange(scriptPath, watchDOMFixture); err != nil {
			fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		}
	}

	runOnce()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func runOnChange(scriptPath, fixturePath string) error {
	content, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	program, err := parser.Parse(string(content))
	if err != nil {
		return err
	}

	root, err := loadDOMFixture(fixturePath)
	if err != nil {
		return err
	}

	it := interp.New(root)
	if err := it.Execute(program); err != nil {
		return err
	}

	out, err := domtree.Marshal(root)
	if err != nil {
		return err
	}
	fmt.Printf("--- %s ---\n%s\n", scriptPath, out)
	return nil
}
