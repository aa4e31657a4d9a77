package main

import (
	"fmt"
	"os"

	"github.com/de-tools/chart-atlas/pkg/runtime/terminal"
	"github.com/de-tools/chart-atlas/pkg/services/charts"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: charts.DefaultRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
