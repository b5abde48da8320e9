package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/preview"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Open the interactive component preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(flags)
		},
	}
}

func runPreview(flags *rootFlags) error {
	theme, err := flags.loadTheme("start preview")
	if err != nil {
		return err
	}

	// The program owns the terminal; logs would corrupt the screen.
	model := preview.New(preview.Options{Theme: theme, Logger: logger.Discard()})
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return newCommandError("start preview", "running the terminal UI", err, "Make sure glint is running in an interactive terminal.")
	}
	return nil
}
