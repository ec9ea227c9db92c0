package graph

import (
	"encoding/json"
	"strings"
)

// unresolvedPrefix starts every placeholder produced for an uninferable type
const unresolvedPrefix = "<<unknown type"

// Access represents a single access modifier
type Access string

const (
	AccessNone        Access = "none"
	AccessInternal    Access = "internal"
	AccessPublic      Access = "public"
	AccessOpen        Access = "open"
	AccessPrivate     Access = "private"
	AccessFilePrivate Access = "fileprivate"
)

// AccessLevel represents read and write access of a variable
type AccessLevel struct {
	Read  Access `json:"read" yaml:"read"`
	Write Access `json:"write" yaml:"write"`
}

// String returns read/write form, e.g. internal/none
func (a AccessLevel) String() string {
	return string(a.Read) + "/" + string(a.Write)
}

// TypeName represents a canonical type name
type TypeName struct {
	Name string `json:"name" yaml:"name"`
}

// NewTypeName creates a type name
func NewTypeName(name string) TypeName {
	return TypeName{Name: strings.TrimSpace(name)}
}

// String returns the type name
func (t TypeName) String() string {
	return t.Name
}

// MarshalJSON renders the type name as a JSON string
func (t TypeName) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name)
}

// MarshalYAML renders the type name as a scalar
func (t TypeName) MarshalYAML() (interface{}, error) {
	return t.Name, nil
}

// IsUnresolved returns true for the placeholder produced when inference failed
func (t TypeName) IsUnresolved() bool {
	return strings.HasPrefix(t.Name, unresolvedPrefix)
}

// IsOptional returns true for T? and T! forms and the bare Optional type
func (t TypeName) IsOptional() bool {
	if t.Name == "Optional" || strings.HasPrefix(t.Name, "Optional<") {
		return true
	}
	return strings.HasSuffix(t.Name, "?") || strings.HasSuffix(t.Name, "!")
}

// UnwrappedTypeName returns the type name without optional wrapping
func (t TypeName) UnwrappedTypeName() string {
	name := t.Name
	switch {
	case strings.HasSuffix(name, "?"), strings.HasSuffix(name, "!"):
		return name[:len(name)-1]
	case strings.HasPrefix(name, "Optional<") && strings.HasSuffix(name, ">"):
		return name[len("Optional<") : len(name)-1]
	}
	return name
}

// IsArray returns true for [T] forms
func (t TypeName) IsArray() bool {
	name := t.UnwrappedTypeName()
	if strings.HasPrefix(name, "Array<") {
		return true
	}
	inner, ok := bracketed(name, '[', ']')
	return ok && topLevelIndex(inner, ':') == -1
}

// IsDictionary returns true for [K: V] forms
func (t TypeName) IsDictionary() bool {
	name := t.UnwrappedTypeName()
	if strings.HasPrefix(name, "Dictionary<") {
		return true
	}
	inner, ok := bracketed(name, '[', ']')
	return ok && topLevelIndex(inner, ':') != -1
}

// IsTuple returns true for (T0, T1) forms
func (t TypeName) IsTuple() bool {
	inner, ok := bracketed(t.UnwrappedTypeName(), '(', ')')
	return ok && topLevelIndex(inner, ',') != -1
}

// bracketed returns text inside open/close if they enclose the whole name
func bracketed(name string, open, close byte) (string, bool) {
	if len(name) < 2 || name[0] != open || name[len(name)-1] != close {
		return "", false
	}
	depth := 0
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '[', '(', '<':
			depth++
		case ']', ')', '>':
			if isArrow(name, i) {
				continue
			}
			depth--
			if depth == 0 && i != len(name)-1 {
				return "", false
			}
		}
	}
	return name[1 : len(name)-1], true
}

func topLevelIndex(text string, sep byte) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[', '(', '<':
			depth++
		case ']', ')', '>':
			if !isArrow(text, i) {
				depth--
			}
		case sep:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// isArrow returns true when text[i] closes the -> of a function type
func isArrow(text string, i int) bool {
	return text[i] == '>' && i > 0 && text[i-1] == '-'
}

// Location represents a declaration position in the source code
type Location struct {
	Raw    string `json:"-" yaml:"-"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}
