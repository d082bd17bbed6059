package validate

import (
	"strings"
	"unicode"
)

// SanitizeTitle trims whitespace and strips control characters from a
// user-supplied title.
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(title)

	var sb strings.Builder
	for _, r := range title {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
