// Package cli handles command-line parsing and dispatch for initialize-repository.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rfrench3/initialize-repository/internal/commands"
	"github.com/rfrench3/initialize-repository/internal/errors"
	"github.com/rfrench3/initialize-repository/internal/fs"
	"github.com/rfrench3/initialize-repository/internal/version"
)

const longText = `initialize-repository renames the newproject template to your project.

It asks for a project name, author and email, then rewrites every
placeholder in file contents and file names under the repository root.
It runs once: on success it records itself in .gitignore and refuses to
run again.`

// Run parses arguments and runs the initializer.
// Returns an error if the command fails; the caller should print the error and exit.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd(fs.NewRealFS())
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func newRootCmd(fsys fs.FS) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:           "initialize-repository",
		Short:         "Rename the newproject template to your project",
		Long:          longText,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return errors.New(errors.EUsage, fmt.Sprintf("unexpected argument: %s", args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.InitOpts{Dir: dir}
			return commands.Init(fsys, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "template repository root")
	cmd.SetVersionTemplate("initialize-repository {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return errors.Wrap(errors.EUsage, "invalid flags: "+err.Error(), err)
	})

	return cmd
}
