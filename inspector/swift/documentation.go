package swift

import (
	"strings"
)

// splitLines splits source into lines without line terminators
func splitLines(src []byte) []string {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	return strings.Split(text, "\n")
}

// commentLines returns the contiguous comment block directly above row, the nearest line last
func commentLines(lines []string, row int) []string {
	if row > len(lines) {
		row = len(lines)
	}
	start := row
	for start > 0 && isCommentLine(lines[start-1]) {
		start--
	}
	if start == row {
		return nil
	}
	result := make([]string, row-start)
	copy(result, lines[start:row])
	return result
}

func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}
