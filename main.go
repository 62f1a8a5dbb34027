package main

import (
	"fmt"
	"os"

	"github.com/temirov/systemcalls/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the systemcalls command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
