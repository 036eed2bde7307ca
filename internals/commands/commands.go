package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/cobra"
)

// exitAborted is the exit code after ctrl-c, same as a shell would report
const exitAborted = 130

// Command is a cobra command whose errors are rendered as error boxes
type Command struct {
	*cobra.Command
	runner Runner
}

// Runner runs a command
type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wraps cmd so run is called. Errors are printed to stderr and end the process
// with the exit code returned by ExitCode
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		if err := run.RunE(cmd, args); err != nil {
			PrintError(os.Stderr, err)
			os.Exit(ExitCode(err))
		}
	}

	return build
}

// PrintError renders err for humans. Aborts get a single line instead of a box
func PrintError(w io.Writer, err error) {
	var asCliErr *CliError
	switch {
	case isAbort(err):
		fmt.Fprintln(w, "Aborted")
	case errors.As(err, &asCliErr):
		fmt.Fprintln(w, asCliErr.RichError()+"\n")
	default:
		fmt.Fprintln(w, ErrorBox(err.Error(), ""))
	}
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	var asCliErr *CliError
	switch {
	case err == nil:
		return 0
	case isAbort(err):
		return exitAborted
	case errors.As(err, &asCliErr) && asCliErr.ExitCode != 0:
		return asCliErr.ExitCode
	}
	return 1
}

// isAbort is true for ctrl-c during a prompt or while a context bound operation ran
func isAbort(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, utils.ErrAborted)
}
