// Package annotation extracts sourcery annotations from comment lines preceding a declaration
package annotation

import (
	"regexp"
	"strconv"
	"strings"
)

// Marker starts every annotation comment
const Marker = "sourcery:"

var integerExpr = regexp.MustCompile(`^-?[0-9]+$`)

// Parse returns annotations declared by lines, the line nearest to the declaration last.
// Scanning goes upwards and stops at the first blank or non-comment line,
// other comments are skipped. Duplicated keys keep the value nearest to the declaration.
func Parse(lines []string) Annotations {
	result := Annotations{}
	contributing, _ := scan(lines)
	for _, line := range contributing {
		parseLine(line, result)
	}
	return result
}

// Documentation returns text of /// comment lines within the scanned block in source order
func Documentation(lines []string) []string {
	_, docs := scan(lines)
	return docs
}

// scan walks lines upwards and returns annotation bodies and doc comments, both top to bottom
func scan(lines []string) (annotations []string, docs []string) {
	start := len(lines)
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || !isComment(trimmed) {
			break
		}
		start = i
	}
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if body, ok := annotationBody(trimmed); ok {
			annotations = append(annotations, body)
			continue
		}
		if strings.HasPrefix(trimmed, "///") {
			docs = append(docs, strings.TrimSpace(trimmed[3:]))
		}
	}
	return annotations, docs
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}

func annotationBody(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "///") {
		return "", false
	}
	text := strings.TrimLeft(trimmed[2:], " \t")
	if !strings.HasPrefix(text, Marker) {
		return "", false
	}
	return text[len(Marker):], true
}

// parseLine parses comma separated key or key = value pairs into result
func parseLine(body string, result Annotations) {
	for _, part := range splitPairs(body) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, raw, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !hasValue {
			result[key] = Bool(true)
			continue
		}
		result[key] = parseValue(strings.TrimSpace(raw))
	}
}

func parseValue(raw string) Value {
	if integerExpr.MatchString(raw) {
		if number, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Number(number)
		}
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return String(raw[1 : len(raw)-1])
	}
	return String(raw)
}

// splitPairs splits body on commas outside double quotes
func splitPairs(body string) []string {
	var parts []string
	inQuotes := false
	last := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				parts = append(parts, body[last:i])
				last = i + 1
			}
		}
	}
	return append(parts, body[last:])
}
