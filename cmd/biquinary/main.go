// Command biquinary is a small driver for the biquinary package.
package main

import (
	"os"

	"github.com/avdva/biquinary/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
