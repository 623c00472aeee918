// Command ls-almanac converts between calendar dates, Julian Days and
// sidereal time, and runs a live sidereal clock in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/litescript/ls-almanac/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
