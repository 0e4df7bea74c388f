// Package main provides the command-line interface for cppcheck.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/lerenn/cppcheck-go/cmd/cppcheck/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd(opts *cli.Options, exitCode *int) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cppcheck [flags] <file|directory>...",
		Short: "Static analysis of C/C++ source code",
		Long: `Check C/C++ source files for defects the compiler does not report,
such as functions that are never used, dangerous library calls and divisions by zero.

Directories are searched recursively for .c, .cc, .cpp and .cxx files.
Glob patterns are expanded when the shell did not already do it.

Examples:
  cppcheck src/
  cppcheck -j 4 --severity warning main.c util.c
  cppcheck --json --error-exitcode 1 .`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.Doc {
				return nil
			}
			if len(args) == 0 {
				return errors.New("requires at least one file or directory")
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cli.Run(cmd.Context(), *opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
			*exitCode = code
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Specify a custom config file path")
	flags.StringSliceVar(&opts.Enable, "enable", nil, "Only run the given checks")
	flags.StringSliceVar(&opts.Disable, "disable", nil, "Do not run the given checks")
	flags.StringVar(&opts.Severity, "severity", "", "Minimum reported severity: style, warning or error")
	flags.IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of files checked in parallel")
	flags.BoolVar(&opts.JSON, "json", false, "Write findings as JSON lines on stdout")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print findings")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable coloured output")
	flags.IntVar(&opts.ErrorExitCode, "error-exitcode", 0, "Exit code used when findings are reported")
	flags.BoolVar(&opts.Doc, "doc", false, "List the available checks")

	return rootCmd
}

func main() {
	var (
		opts     cli.Options
		exitCode int
	)

	if err := newRootCmd(&opts, &exitCode).Execute(); err != nil {
		log.Fatal(err)
	}
	os.Exit(exitCode)
}
