package gallery

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/glint/internal/components"
	"github.com/alexisbeaulieu97/glint/internal/tokens"
)

func tokenTable(ctx components.RenderContext, headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) string {
	palette := ctx.Theme.Palette
	header := lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base).Padding(0, 1)
	body := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(palette.Neutral.Muted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if cell != nil && row >= 0 && row < len(rows) {
				return cell(row, col).Padding(0, 1)
			}
			return body
		}).
		String()
}

// ColourTable shows every colour family, one column per family and one row
// per shade. Each cell is tinted with its own colour; shades a family
// does not define show as "-".
func ColourTable(ctx components.RenderContext) string {
	families := tokens.Families()
	var shades []tokens.Shade
	seen := make(map[tokens.Shade]bool)
	for _, f := range families {
		for _, s := range tokens.Shades(f) {
			if !seen[s] {
				seen[s] = true
				shades = append(shades, s)
			}
		}
	}
	sort.Slice(shades, func(i, j int) bool { return shades[i] < shades[j] })

	headers := []string{"shade"}
	for _, f := range families {
		headers = append(headers, string(f))
	}

	rows := make([][]string, 0, len(shades))
	for _, s := range shades {
		row := []string{strconv.Itoa(int(s))}
		for _, f := range families {
			hex, ok := tokens.Color(f, s)
			if !ok {
				hex = "-"
			}
			row = append(row, hex)
		}
		rows = append(rows, row)
	}

	return tokenTable(ctx, headers, rows, func(row, col int) lipgloss.Style {
		value := rows[row][col]
		if col == 0 || !strings.HasPrefix(value, "#") {
			return lipgloss.NewStyle().Faint(true)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
	})
}

// ToneTable shows the alert tone triples.
func ToneTable(ctx components.RenderContext) string {
	names := tokens.ToneNames()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		tone, _ := tokens.AlertTone(name)
		rows = append(rows, []string{string(name), tone.Background, tone.Border, tone.Text})
	}

	return tokenTable(ctx, []string{"tone", "background", "border", "text"}, rows, func(row, col int) lipgloss.Style {
		if col == 0 {
			tone, _ := tokens.AlertTone(names[row])
			return lipgloss.NewStyle().
				Background(lipgloss.Color(tone.Background)).
				Foreground(lipgloss.Color(tone.Text))
		}
		return lipgloss.NewStyle()
	})
}

// SpacingTable shows the spacing scale with a bar of its cell width.
func SpacingTable(ctx components.RenderContext) string {
	steps := tokens.Spacing()
	rows := make([][]string, 0, len(steps))
	for _, step := range steps {
		rows = append(rows, []string{
			step.Name,
			step.Value.CSS,
			strconv.Itoa(step.Value.Cells),
			strings.Repeat("█", step.Value.Cells),
		})
	}

	return tokenTable(ctx, []string{"token", "css", "cells", "sample"}, rows, func(_, col int) lipgloss.Style {
		if col == 3 {
			return lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Primary.Base)
		}
		return lipgloss.NewStyle()
	})
}

// TypographyTable shows the font size scale and weights.
func TypographyTable(ctx components.RenderContext) string {
	steps := tokens.FontSizes()
	rows := make([][]string, 0, len(steps)+3)
	for _, step := range steps {
		rows = append(rows, []string{"font-size-" + step.Name, step.Value.CSS})
	}
	for _, w := range []tokens.FontWeight{tokens.FontWeightNormal, tokens.FontWeightMedium, tokens.FontWeightBold} {
		rows = append(rows, []string{"font-weight", string(w)})
	}

	return tokenTable(ctx, []string{"token", "value"}, rows, func(row, _ int) lipgloss.Style {
		if rows[row][1] == string(tokens.FontWeightBold) {
			return lipgloss.NewStyle().Bold(true)
		}
		return lipgloss.NewStyle()
	})
}

// RadiusTable shows the radius scale and the corner each maps to.
func RadiusTable(ctx components.RenderContext) string {
	steps := tokens.Radii()
	rows := make([][]string, 0, len(steps))
	for i, step := range steps {
		corner := components.BorderForRadius(ctx.Theme, components.RadiusSize(i)).TopLeft
		rows = append(rows, []string{step.Name, step.Value.CSS, corner})
	}
	return tokenTable(ctx, []string{"token", "css", "corner"}, rows, nil)
}

// VarsTable lists the exported design variables.
func VarsTable(ctx components.RenderContext) string {
	vars := tokens.Vars()
	rows := make([][]string, 0, len(vars))
	for _, v := range vars {
		rows = append(rows, []string{v.Name, v.Value})
	}
	return tokenTable(ctx, []string{"variable", "value"}, rows, nil)
}

// TokenTables renders every token table under a heading.
func TokenTables(ctx components.RenderContext) string {
	heading := components.TypographyStyle(ctx.Theme, components.TypographyTitle)
	sections := []struct {
		title  string
		render func(components.RenderContext) string
	}{
		{"Colours", ColourTable},
		{"Alert tones", ToneTable},
		{"Spacing", SpacingTable},
		{"Typography", TypographyTable},
		{"Radius", RadiusTable},
	}

	parts := make([]string, 0, len(sections)*2)
	for _, s := range sections {
		parts = append(parts, heading.Render(s.title), s.render(ctx), "")
	}
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
}

// FormatVars renders the design variables as "name: value;" lines.
func FormatVars() string {
	var b strings.Builder
	for _, v := range tokens.Vars() {
		fmt.Fprintf(&b, "%s: %s;\n", v.Name, v.Value)
	}
	return b.String()
}
