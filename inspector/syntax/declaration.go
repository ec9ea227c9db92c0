// Package syntax defines the declaration facade handed from a source parser to variable analysis
package syntax

import (
	"github.com/viant/sourcery/inspector/literal"
)

// Visibility represents a primary visibility modifier
type Visibility string

const (
	VisibilityInternal    Visibility = "internal"
	VisibilityPublic      Visibility = "public"
	VisibilityOpen        Visibility = "open"
	VisibilityPrivate     Visibility = "private"
	VisibilityFilePrivate Visibility = "fileprivate"
)

// IsRestricted returns true for private and fileprivate
func (v Visibility) IsRestricted() bool {
	return v == VisibilityPrivate || v == VisibilityFilePrivate
}

// ParseVisibility maps a modifier keyword to visibility, ok is false for non visibility keywords
func ParseVisibility(keyword string) (Visibility, bool) {
	switch v := Visibility(keyword); v {
	case VisibilityInternal, VisibilityPublic, VisibilityOpen, VisibilityPrivate, VisibilityFilePrivate:
		return v, true
	}
	return "", false
}

// Binding represents let or var
type Binding string

const (
	BindingLet Binding = "let"
	BindingVar Binding = "var"
)

// Accessor represents the accessor block shape
type Accessor int

const (
	AccessorNone Accessor = iota
	AccessorGetter
	AccessorGetterSetter
	AccessorObservers
)

// String returns accessor name
func (a Accessor) String() string {
	switch a {
	case AccessorGetter:
		return "getter"
	case AccessorGetterSetter:
		return "getterAndSetter"
	case AccessorObservers:
		return "observers"
	}
	return "none"
}

// Declaration represents a single variable declaration as exposed by a source parser
type Declaration struct {
	Name string
	// TypeText holds the explicit type annotation, empty when absent
	TypeText string
	// Initializer holds the initializer shape, nil when absent
	Initializer *literal.Expr
	Visibility  Visibility
	// SetterVisibility holds a private(set) style restriction, empty when absent
	SetterVisibility Visibility
	Binding          Binding
	Accessor         Accessor
	IsStatic         bool
	// CommentLines holds raw source lines above the declaration, the nearest line last
	CommentLines []string
	// Text holds the verbatim declaration source
	Text string
	// Start and End are byte offsets, Line and Column are 1-based
	Start, End   int
	Line, Column int
}

// HasInitializer returns true if declaration has an initializer expression
func (d *Declaration) HasInitializer() bool {
	return d.Initializer != nil
}
