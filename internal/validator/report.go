package validator

import (
	"fmt"
	"strings"

	"schemagen/internal/schema"

	"github.com/mattn/go-runewidth"
)

// Section groups the issues found for one document kind.
type Section struct {
	Kind   schema.Kind
	Issues []Issue
}

// Summary counts issues by severity across all sections.
func Summary(sections []Section) (errors, warnings int) {
	for _, s := range sections {
		for _, issue := range s.Issues {
			if issue.Severity == SeverityError {
				errors++
			} else {
				warnings++
			}
		}
	}

	return errors, warnings
}

// FormatReport renders the validation outcome as a markdown table per
// kind. Sections without issues are listed as clean. Cell padding uses
// display width so the table stays aligned with non-ASCII field values.
func FormatReport(sections []Section) string {
	var sb strings.Builder

	sb.WriteString("# Validation Report\n")

	for _, s := range sections {
		sb.WriteString("\n## ")
		sb.WriteString(string(s.Kind))
		sb.WriteString("\n\n")

		if len(s.Issues) == 0 {
			sb.WriteString("No issues found.\n")

			continue
		}

		rows := [][]string{{"Severity", "Field", "Message"}}
		for _, issue := range s.Issues {
			rows = append(rows, []string{issue.Severity, issue.Field, issue.Message})
		}

		writeTable(&sb, rows)
	}

	errors, warnings := Summary(sections)

	sb.WriteString("\n")
	sb.WriteString(summaryLine(errors, warnings))
	sb.WriteString("\n")

	return sb.String()
}

func summaryLine(errors, warnings int) string {
	if errors == 0 && warnings == 0 {
		return "All checks passed."
	}

	var parts []string

	if errors > 0 {
		parts = append(parts, plural(errors, "error"))
	}

	if warnings > 0 {
		parts = append(parts, plural(warnings, "warning"))
	}

	return strings.Join(parts, ", ") + " found."
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}

func writeTable(sb *strings.Builder, rows [][]string) {
	colCount := len(rows[0])

	widths := make([]int, colCount)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	for r, row := range rows {
		sb.WriteString("|")

		for i, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)

			if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")

		if r == 0 {
			sb.WriteString("|")

			for i := 0; i < colCount; i++ {
				sb.WriteString(" ")
				sb.WriteString(strings.Repeat("-", widths[i]))
				sb.WriteString(" |")
			}

			sb.WriteString("\n")
		}
	}
}
