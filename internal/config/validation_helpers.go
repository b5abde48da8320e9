package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/glint/internal/components"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// convertValidationError normalizes validator errors into glint validation errors.
// Every failing field is reported, not only the first.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return glinterrors.NewValidationError("theme", err.Error(), err)
	}

	out := make(glinterrors.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		field := yamlishFieldName(fe)
		out = append(out, &glinterrors.ValidationError{
			Field:   field,
			Message: describe(fe),
			Err:     fe,
		})
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// yamlishFieldName drops the root type from the namespace, leaving the YAML
// path ("palette[primary].base").
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "hexcolor":
		return fmt.Sprintf("%q is not a hex colour", fe.Value())
	case "theme_name":
		return fmt.Sprintf("unknown base theme %q (want one of %s)", fe.Value(), strings.Join(components.ThemeNames(), ", "))
	case "palette_slot":
		return fmt.Sprintf("unknown palette slot %q", fe.Value())
	case "len":
		return fmt.Sprintf("must list exactly %s values", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
