// Command rowpack dumps CSV matrices and JSON vector lists into the rowpack
// format and reads single rows back.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.EnableCommandSorting = false

	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
