package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/glint/internal/components"
	"github.com/alexisbeaulieu97/glint/internal/config"
	"github.com/alexisbeaulieu97/glint/internal/logger"
)

const fallbackWidth = 80

type rootFlags struct {
	theme     string
	themeFile string
	logLevel  string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glint",
		Short:         "glint renders themed terminal components from a shared token table",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "default", "Built-in theme (default, dark, light)")
	cmd.PersistentFlags().StringVar(&flags.themeFile, "theme-file", "", "YAML file overriding theme colours and spacing")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger. Logs go to stderr so rendered output
// stays clean.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("start", "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
	}
	return log, nil
}

func (f *rootFlags) loadTheme(op string) (components.Theme, error) {
	theme, err := config.Resolve(f.theme, f.themeFile)
	if err != nil {
		return components.Theme{}, newCommandError(op, "loading theme", err,
			"Pick a built-in theme with --theme or fix the file passed to --theme-file.")
	}
	return theme, nil
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
