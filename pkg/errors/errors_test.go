package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("did not find expected key")
	cases := []struct {
		name string
		line int
		want string
	}{
		{name: "with line", line: 12, want: "parse error: theme.yaml:12: did not find expected key"},
		{name: "without line", line: 0, want: "parse error: theme.yaml: did not find expected key"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := NewParseError("theme.yaml", tc.line, cause)
			assert.Equal(t, tc.want, err.Error())
			assert.ErrorIs(t, err, cause)
			assert.ErrorIs(t, err, ErrInvalidTheme)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.line, parseErr.Line)
		})
	}
}

func TestValidationErrorMatchesInvalidTheme(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", NewValidationError("palette[primary].base", `"purple" is not a hex colour`, nil))
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.Equal(t, `load: validation error: palette[primary].base: "purple" is not a hex colour`, err.Error())

	assert.Equal(t, "validation error: theme file is nil", NewValidationError("", "theme file is nil", nil).Error())
}

func TestValidationErrorsAggregate(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	errs := ValidationErrors{
		{Field: "base", Message: "unknown base theme"},
		{Field: "spacing.padding", Message: "must list exactly 10 values", Err: cause},
	}

	assert.Equal(t, "2 validation errors:\n  - base: unknown base theme\n  - spacing.padding: must list exactly 10 values", errs.Error())
	assert.ErrorIs(t, errs, cause)
	assert.ErrorIs(t, errs, ErrInvalidTheme)

	found, ok := errs.Field("spacing.padding")
	require.True(t, ok)
	assert.Same(t, errs[1], found)

	_, ok = errs.Field("palette")
	assert.False(t, ok)

	single := ValidationErrors{{Field: "base", Message: "unknown base theme"}}
	assert.Equal(t, "validation error: base: unknown base theme", single.Error())
}
