// Command cardctl is the terminal client for the credit account tracker.
package main

import (
	"fmt"
	"os"

	"credit-tracker/internal/cli"
	"credit-tracker/internal/config"
)

func main() {
	if err := config.LoadEnvFiles(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
