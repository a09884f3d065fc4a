// cmd/heatsim/main.go
package main

import (
	"os"

	"github.com/katalvlaran/heatflow/internal/cli"
)

func main() { os.Exit(cli.Run(os.Args, os.Getenv, os.Stdout, os.Stderr)) }
