package Templates

import (
	"sort"
	"strings"
	"time"

	"Courier/Models"
)

// Render substitutes {{KEY}} placeholders in the template with values from
// one recipient row. Built-ins NAME, DATE and EMAIL resolve first, then
// every row column uppercased with spaces turned into underscores.
// Unmatched placeholders are left verbatim so a missing optional column
// never breaks rendering. Absent values render as an empty string.
func Render(template string, row map[string]string, columns Models.Columns, now time.Time) string {
	replacements := map[string]string{
		"{{NAME}}":  row[columns.Name],
		"{{DATE}}":  now.Format("January 2, 2006"),
		"{{EMAIL}}": row[columns.To],
	}

	for key, value := range row {
		placeholder := "{{" + strings.ToUpper(strings.ReplaceAll(key, " ", "_")) + "}}"
		if _, ok := replacements[placeholder]; !ok {
			replacements[placeholder] = value
		}
	}

	// Deterministic order keeps rendering byte-identical across calls.
	placeholders := make([]string, 0, len(replacements))
	for placeholder := range replacements {
		placeholders = append(placeholders, placeholder)
	}
	sort.Strings(placeholders)

	out := template
	for _, placeholder := range placeholders {
		out = strings.ReplaceAll(out, placeholder, replacements[placeholder])
	}
	return out
}

// Subject picks the row's custom subject when it is non-empty after
// trimming, otherwise the campaign default. The winner is not yet rendered.
func Subject(row map[string]string, columns Models.Columns, defaultSubject string) string {
	if custom := strings.TrimSpace(row[columns.CustomSubject]); custom != "" {
		return custom
	}
	return defaultSubject
}
