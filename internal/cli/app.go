// Package cli implements the termtable command line tool.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bjaus/termtable/internal/logger"
)

// App holds the streams and build information for one invocation.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Version string

	log   logr.Logger
	flush func()
}

// NewApp returns an App bound to the process streams.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
		log:     logr.Discard(),
	}
}

// Execute runs the command line in args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	defer a.flushLog()
	return root.ExecuteContext(ctx)
}

// flushLog syncs the logger. cobra skips post-run hooks when a command
// fails, so Execute calls it on every path.
func (a *App) flushLog() {
	if a.flush != nil {
		a.flush()
		a.flush = nil
	}
}

func (a *App) newRootCmd() *cobra.Command {
	var verbose int

	root := &cobra.Command{
		Use:           "termtable",
		Short:         "Render tables as text",
		Long:          "termtable renders YAML table documents as fixed-width text tables, with optional color on terminals.",
		Version:       a.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log, a.flush = logger.New(a.Stderr, verbose)
			a.log.V(1).Info("starting", "command", cmd.Name(), "version", a.Version)
		},
	}
	root.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	root.AddCommand(a.newRenderCmd())
	root.AddCommand(a.newDemoCmd())
	return root
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
