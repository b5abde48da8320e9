package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/components"
	"github.com/alexisbeaulieu97/glint/internal/gallery"
	"github.com/alexisbeaulieu97/glint/internal/tokens"
)

type tokensOptions struct {
	format string
}

func newTokensCmd(flags *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the design token table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, vars or yaml")

	return cmd
}

func runTokens(cmd *cobra.Command, flags *rootFlags, opts *tokensOptions) error {
	out := cmd.OutOrStdout()

	switch opts.format {
	case "table":
		theme, err := flags.loadTheme("print tokens")
		if err != nil {
			return err
		}
		ctx := components.DefaultContext().WithTheme(theme).WithSize(terminalWidth(out), 0)
		fmt.Fprintln(out, gallery.TokenTables(ctx))
	case "vars":
		fmt.Fprint(out, gallery.FormatVars())
	case "yaml":
		data, err := tokens.MarshalYAML()
		if err != nil {
			return newCommandError("print tokens", "encoding YAML", err, "Retry with --format vars.")
		}
		fmt.Fprint(out, string(data))
	default:
		return newCommandError("print tokens", "choosing output format",
			fmt.Errorf("unknown format %q", opts.format), "Use one of table, vars or yaml.")
	}

	return nil
}
