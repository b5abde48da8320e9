package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/components"
	"github.com/alexisbeaulieu97/glint/internal/gallery"
)

type showOptions struct {
	docs bool
}

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse component stories",
	}

	cmd.AddCommand(newGalleryListCmd(flags))
	cmd.AddCommand(newGalleryShowCmd(flags))

	return cmd
}

func newGalleryListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every story by component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGalleryList(cmd, gallery.Builtin())
		},
	}
}

func runGalleryList(cmd *cobra.Command, reg *gallery.Registry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	group := ""
	for _, s := range reg.List() {
		if s.Group != group {
			if group != "" {
				fmt.Fprintln(writer)
			}
			group = s.Group
			fmt.Fprintf(writer, "%s\n", group)
		}
		fmt.Fprintf(writer, "  %s\t%s\n", s.ID, s.Title)
	}

	return writer.Flush()
}

func newGalleryShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <story>",
		Short: "Render one story",
		Long:  "Render one story. The name may be an exact story ID or a fuzzy match such as \"mdlfooter\".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGalleryShow(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.docs, "docs", false, "Print the story's documentation after it")

	return cmd
}

func runGalleryShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions, query string) error {
	log, err := flags.logger(cmd)
	if err != nil {
		return err
	}
	theme, err := flags.loadTheme("show story")
	if err != nil {
		return err
	}

	s, err := gallery.Builtin().Lookup(query)
	if err != nil {
		return newCommandError("show story", fmt.Sprintf("finding %q", query), err,
			"Run 'glint gallery list' to see available stories.")
	}
	if s.ID != query {
		log.DebugFields("fuzzy story match", map[string]any{"query": query, "story": s.ID})
	}

	width := terminalWidth(cmd.OutOrStdout())
	ctx := components.DefaultContext().WithTheme(theme).WithSize(width, 0)

	out, err := s.Render(ctx)
	if err != nil {
		return newCommandError("show story", "rendering "+s.ID, err, "Report this story as broken.")
	}

	heading := components.TypographyStyle(theme, components.TypographyTitle)
	caption := components.TypographyStyle(theme, components.TypographyMuted)
	fmt.Fprintln(cmd.OutOrStdout(), heading.Render(s.Title)+" "+caption.Render(s.ID))
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if !opts.docs {
		return nil
	}

	docs, err := gallery.RenderDocs(s.Docs, gallery.DocsStyle(theme.Name), width)
	if err != nil {
		return newCommandError("show story", "rendering documentation", err, "Retry without --docs.")
	}
	fmt.Fprint(cmd.OutOrStdout(), docs)
	return nil
}
