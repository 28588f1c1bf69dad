// Command initialize-repository renames the newproject template into a new project, once.
package main

import (
	"os"

	"github.com/rfrench3/initialize-repository/internal/cli"
	"github.com/rfrench3/initialize-repository/internal/errors"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
