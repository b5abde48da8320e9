package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glint/internal/gallery"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return ansi.Strip(stdout.String()), stderr.String(), err
}

func TestGalleryListGroupsStories(t *testing.T) {
	stdout, _, err := executeCommand(t, "gallery", "list")
	require.NoError(t, err)

	for _, group := range []string{"Alert", "Button", "Modal", "Tokens"} {
		require.Contains(t, stdout, group+"\n")
	}
	require.Contains(t, stdout, "button/primary")
	require.Contains(t, stdout, "modal/with-footer")
	require.Less(t, strings.Index(stdout, "Alert\n"), strings.Index(stdout, "Button\n"))
}

func TestGalleryShowRendersStory(t *testing.T) {
	stdout, _, err := executeCommand(t, "gallery", "show", "alert/dismissible")
	require.NoError(t, err)
	require.Contains(t, stdout, "alert/dismissible")
	require.NotContains(t, stdout, "## ")
}

func TestGalleryShowFuzzyMatch(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "--verbose", "gallery", "show", "mdlfooter")
	require.NoError(t, err)
	require.Contains(t, stdout, "modal/with-footer")
	require.Contains(t, stdout, "Confirm")
	require.Contains(t, stderr, "fuzzy story match")
}

func TestGalleryShowWithDocs(t *testing.T) {
	plain, _, err := executeCommand(t, "gallery", "show", "button/primary")
	require.NoError(t, err)
	require.NotContains(t, plain, "Buttons trigger an action.")

	stdout, _, err := executeCommand(t, "gallery", "show", "button/primary", "--docs")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, plain), "docs follow the rendered story")
	require.Contains(t, stdout, "Buttons trigger an action.")
	require.Contains(t, stdout, "tab-active")
}

func TestGalleryShowUnknownStory(t *testing.T) {
	_, _, err := executeCommand(t, "gallery", "show", "zzzzqqq")
	require.Error(t, err)
	require.ErrorIs(t, err, gallery.ErrStoryNotFound)
	require.Contains(t, err.Error(), "glint gallery list")
}

func TestGalleryShowRequiresStory(t *testing.T) {
	_, _, err := executeCommand(t, "gallery", "show")
	require.Error(t, err)
}

func TestTokensFormats(t *testing.T) {
	stdout, _, err := executeCommand(t, "tokens")
	require.NoError(t, err)
	require.Contains(t, stdout, "Colours")
	require.Contains(t, stdout, "#1976d2")

	stdout, _, err = executeCommand(t, "tokens", "--format", "vars")
	require.NoError(t, err)
	require.Contains(t, stdout, "--color-primary: #1976d2;\n")

	stdout, _, err = executeCommand(t, "tokens", "-f", "yaml")
	require.NoError(t, err)
	require.Contains(t, stdout, "colors:")
	require.Contains(t, stdout, "spacing:")
	require.Contains(t, stdout, "#1976d2")
}

func TestTokensRejectsUnknownFormat(t *testing.T) {
	_, _, err := executeCommand(t, "tokens", "--format", "json")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown format "json"`)
}

func TestUnknownThemeFails(t *testing.T) {
	_, _, err := executeCommand(t, "--theme", "neon", "tokens")
	require.Error(t, err)

	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))
	require.Contains(t, err.Error(), "neon")
}

func TestThemeFileIsApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: brand\nbase: dark\npalette:\n  primary: \"#7c3aed\"\n"), 0o600))

	stdout, _, err := executeCommand(t, "--theme-file", path, "gallery", "show", "button/primary")
	require.NoError(t, err)
	require.Contains(t, stdout, "button/primary")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("palette:\n  nope: \"#fff\"\n"), 0o600))

	_, _, err = executeCommand(t, "--theme-file", bad, "tokens")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--theme-file")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := executeCommand(t, "--log-level", "loud", "gallery", "show", "button/primary")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--log-level")
}

func TestTerminalWidthFallsBackForBuffers(t *testing.T) {
	require.Equal(t, fallbackWidth, terminalWidth(&bytes.Buffer{}))
}
