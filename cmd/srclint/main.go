package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/srclint/internal/cli"

	// Import rule packages to ensure their init() functions are called for registration
	_ "github.com/arthur-debert/srclint/pkg/rules/textrules"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
