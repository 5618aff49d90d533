package export

import (
	"fmt"
	"strings"
)

// ToDelimitedText renders headers and rows as comma separated text. Fields
// containing a comma, a double quote or a newline are quoted with inner quotes
// doubled. Lines are joined with "\n" and no trailing newline is written.
func ToDelimitedText(headers []string, rows [][]interface{}) string {
	lines := make([]string, 0, len(rows)+1)

	head := make([]string, len(headers))
	for i, h := range headers {
		head[i] = escapeField(h)
	}
	lines = append(lines, strings.Join(head, ","))

	for _, row := range rows {
		fields := make([]string, len(row))
		for i, value := range row {
			fields[i] = escapeField(stringify(value))
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

func escapeField(text string) string {
	if strings.ContainsAny(text, ",\"\n") {
		return `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
	}
	return text
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
