package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	flagNameLogLevel  = "log-level"
	flagNameLogFormat = "log-format"
)

// app carries state shared by subcommands once flags are parsed.
type app struct {
	logLevel  string
	logFormat string

	log   logr.Logger
	flush func()
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard(), flush: func() {}}

	cmd := &cobra.Command{
		Use:           "bellman subcommand",
		Short:         "bellman computes shortest paths on graphs with negative edge weights",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, flush, err := newLogger(a.logLevel, a.logFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log, a.flush = log, flush
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.flush()
		},
	}
	cmd.PersistentFlags().StringVar(&a.logLevel, flagNameLogLevel, "warn", "Minimum log level. One of: debug|info|warn|error.")
	cmd.PersistentFlags().StringVar(&a.logFormat, flagNameLogFormat, "console", "Log encoding. One of: console|json.")

	cmd.AddCommand(
		newSolveCmd(a),
		newGenerateCmd(a),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the bellman version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bellman %s\n", version)
		},
	}
}
