package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe   = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankLinesRe   = regexp.MustCompile(`\n{3,}`)
	bulletPrefixes = []string{"- ", "* ", "• ", "· "}
)

// CleanText normalizes line endings and whitespace while keeping headings, bullet
// indentation and paragraph breaks. At most one blank line survives between blocks.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLinesRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t\u00a0")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := ""
	if isBulletLine(trimmed) {
		indent = strings.Repeat(" ", len(line)-len(trimmed))
	}
	return indent + innerSpaceRe.ReplaceAllString(trimmed, " ")
}

func isBulletLine(trimmed string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
