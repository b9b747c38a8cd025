package main

import (
	"os"

	"noise/cli"
)

// Application Entry Point
func main() {
	os.Exit(cli.Run(os.Args[1:]...))
}
