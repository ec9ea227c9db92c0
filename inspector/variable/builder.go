// Package variable builds analysed variables from declaration facades
package variable

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/viant/sourcery/inspector/annotation"
	"github.com/viant/sourcery/inspector/graph"
	"github.com/viant/sourcery/inspector/literal"
	"github.com/viant/sourcery/inspector/syntax"
)

var (
	// ErrMissingType reports a declaration with neither type annotation nor initializer
	ErrMissingType = errors.New("declaration has neither type annotation nor initializer")
	// ErrMissingName reports a declaration without a name
	ErrMissingName = errors.New("declaration has no name")
)

// Builder builds variables, it holds no mutable state and can be shared across goroutines
type Builder struct {
	logger *slog.Logger
}

// New creates a builder, nil logger uses slog.Default
func New(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger}
}

// Build returns the variable for declaration.
// Private and fileprivate declarations yield a nil variable and nil error.
func (b *Builder) Build(decl *syntax.Declaration) (*graph.Variable, error) {
	if decl.Visibility.IsRestricted() {
		b.logger.Debug("skipping restricted declaration",
			slog.String("variable", decl.Name),
			slog.String("visibility", string(decl.Visibility)))
		return nil, nil
	}
	if decl.Name == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingName, decl.Text)
	}
	typeName, err := b.resolveType(decl)
	if err != nil {
		return nil, err
	}
	hash, err := graph.Fingerprint(decl.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to hash declaration %v: %w", decl.Name, err)
	}

	accessLevel, isComputed := classify(decl)
	result := &graph.Variable{
		Name:          decl.Name,
		TypeName:      typeName,
		AccessLevel:   accessLevel,
		IsComputed:    isComputed,
		IsStatic:      decl.IsStatic,
		Annotations:   annotation.Parse(decl.CommentLines),
		Documentation: annotation.Documentation(decl.CommentLines),
		Hash:          hash,
		Location: &graph.Location{
			Raw:    decl.Text,
			Start:  decl.Start,
			End:    decl.End,
			Line:   decl.Line,
			Column: decl.Column,
		},
	}
	if decl.Initializer != nil {
		result.DefaultValue = decl.Initializer.Text
	}
	return result, nil
}

// resolveType prefers the explicit annotation and falls back to literal inference
func (b *Builder) resolveType(decl *syntax.Declaration) (graph.TypeName, error) {
	if decl.TypeText != "" {
		return graph.NewTypeName(decl.TypeText), nil
	}
	if decl.Initializer == nil {
		return graph.TypeName{}, fmt.Errorf("%w: %q", ErrMissingType, decl.Text)
	}
	typeName, ok := literal.Infer(decl.Initializer)
	if !ok {
		b.logger.Debug("unable to infer variable type",
			slog.String("variable", decl.Name),
			slog.String("initializer", decl.Initializer.Text))
		typeName = literal.Unresolved(decl.Text)
	}
	return graph.NewTypeName(typeName), nil
}

// classify returns access level and computed flag for binding and accessor shape
func classify(decl *syntax.Declaration) (graph.AccessLevel, bool) {
	read := graph.AccessInternal
	if decl.Visibility != "" {
		read = graph.Access(decl.Visibility)
	}
	write := read
	if decl.SetterVisibility != "" {
		write = graph.Access(decl.SetterVisibility)
	}
	switch {
	case decl.Binding == syntax.BindingLet:
		return graph.AccessLevel{Read: read, Write: graph.AccessNone}, false
	case decl.Accessor == syntax.AccessorGetter:
		return graph.AccessLevel{Read: read, Write: graph.AccessNone}, true
	case decl.Accessor == syntax.AccessorGetterSetter:
		return graph.AccessLevel{Read: read, Write: write}, true
	}
	return graph.AccessLevel{Read: read, Write: write}, false
}
