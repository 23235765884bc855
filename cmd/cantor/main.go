// Command cantor is an exact ordinal arithmetic calculator.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/cantor/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
