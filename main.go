package main

import (
	"os"

	"github.com/arnavsurve/rexgen/cmd/cli"
)

func main() {
	os.Exit(cli.NewRunner(os.Stdout, os.Stderr).Main(os.Args))
}
