// Command lattice renders widget trees built with the lattice layout engine.
package main

import (
	"os"

	"github.com/go-drift/lattice/cmd/lattice/cmd"
	"github.com/go-drift/lattice/pkg/errors"
)

func main() {
	errors.SetHandler(&errors.LogHandler{Verbose: os.Getenv("LATTICE_VERBOSE") != ""})

	os.Exit(cmd.Execute())
}
