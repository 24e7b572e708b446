// Command saba is the CLI front-end for the scripting core: CSS
// tokenizing, JS tokenizing/parsing, and execution against a DOM
// fixture.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/saba/cmd/saba/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
