// SPDX-License-Identifier: MIT

// Command gmat evaluates matrix operations from the shell.
package main

import (
	"os"

	"github.com/katalvlaran/gabp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
