package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/optset/cmd/optset"
	"github.com/arthur-debert/optset/pkg/style"
)

func main() {
	rootCmd := optset.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
