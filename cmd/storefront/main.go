package main

import (
	"fmt"
	"os"

	"github.com/fjod/go_storefront/internal/cli"
	"github.com/fjod/go_storefront/internal/config"
)

func main() {
	cmd := cli.NewRootCommand(config.Load())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
