package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/weekgrid/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Configuration is loaded once flags are parsed.
	app := ui.NewApp()
	defer func() { _ = app.Close() }()
	return app.Execute()
}
