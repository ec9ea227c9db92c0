package swift

import (
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/sourcery/inspector/syntax"
)

type bindingSpan struct {
	start, end int
}

// parsePropertyDeclaration converts a property_declaration node into one declaration per binding
func parsePropertyDeclaration(node *sitter.Node, src []byte, lines []string) []*syntax.Declaration {
	start := node.StartPoint()
	base := syntax.Declaration{
		Binding:      syntax.BindingVar,
		Visibility:   syntax.VisibilityInternal,
		Line:         int(start.Row) + 1,
		Column:       int(start.Column) + 1,
		CommentLines: commentLines(lines, int(start.Row)),
	}

	var result []*syntax.Declaration
	var spans []bindingSpan
	var current *syntax.Declaration
	prefixEnd := -1
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch field := node.FieldNameForChild(i); {
		case child.Type() == "modifiers":
			applyModifiers(&base, child, src)
		case child.Type() == "value_binding_pattern":
			if binding, ok := parseBinding(child, src); ok {
				base.Binding = binding
			}
		case field == "name":
			current = nil
			name, binding := boundName(child, src)
			if binding != "" {
				base.Binding = binding
			}
			if name == "" {
				continue
			}
			decl := base
			decl.Name = name
			current = &decl
			result = append(result, current)
			spans = append(spans, bindingSpan{start: int(child.StartByte())})
			if prefixEnd == -1 {
				prefixEnd = int(child.StartByte())
			}
		case current == nil:
			continue
		case field == "value":
			if current.Initializer == nil {
				current.Initializer = parseExpression(child, src)
			}
		case child.Type() == "type_annotation":
			current.TypeText = parseTypeAnnotation(child, src)
		case child.Type() == "computed_property":
			current.Accessor = classifyComputed(child)
		case child.Type() == "willset_didset_block":
			current.Accessor = syntax.AccessorObservers
		case child.Type() == "protocol_property_requirements":
			current.Accessor = classifyRequirements(child)
		}
		if current != nil && child.Type() != "," {
			spans[len(spans)-1].end = int(child.EndByte())
		}
	}

	for j, decl := range result {
		if len(result) == 1 {
			decl.Text = node.Content(src)
			decl.Start, decl.End = int(node.StartByte()), int(node.EndByte())
			continue
		}
		decl.Text = string(src[node.StartByte():prefixEnd]) + string(src[spans[j].start:spans[j].end])
		decl.Start, decl.End = spans[j].start, spans[j].end
	}
	// var a, b: Int declares both bindings with the trailing type
	for j := len(result) - 2; j >= 0; j-- {
		decl := result[j]
		if decl.TypeText == "" && decl.Initializer == nil && decl.Accessor == syntax.AccessorNone {
			decl.TypeText = result[j+1].TypeText
		}
	}
	return result
}

// boundName returns the identifier bound by a name pattern and the binding keyword found inside it
func boundName(node *sitter.Node, src []byte) (string, syntax.Binding) {
	if node.Type() == "simple_identifier" {
		return node.Content(src), ""
	}
	name := ""
	var binding syntax.Binding
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case node.FieldNameForChild(i) == "bound_identifier":
			name = child.Content(src)
		case child.Type() == "value_binding_pattern":
			if b, ok := parseBinding(child, src); ok {
				binding = b
			}
		case child.Type() == string(syntax.BindingLet), child.Type() == string(syntax.BindingVar):
			binding = syntax.Binding(child.Type())
		case node.IsError() && binding != "" && name == "" && isIdentifier(child.Content(src)):
			// recovered nodes keep the name right after the binding keyword
			name = child.Content(src)
		}
	}
	return name, binding
}

func isIdentifier(text string) bool {
	if text == "" {
		return false
	}
	for i, r := range text {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func parseBinding(node *sitter.Node, src []byte) (syntax.Binding, bool) {
	keyword := node
	if mutability := node.ChildByFieldName("mutability"); mutability != nil {
		keyword = mutability
	}
	switch binding := syntax.Binding(strings.TrimSpace(keyword.Content(src))); binding {
	case syntax.BindingLet, syntax.BindingVar:
		return binding, true
	}
	return "", false
}

func parseTypeAnnotation(node *sitter.Node, src []byte) string {
	if typeNode := node.ChildByFieldName("name"); typeNode != nil {
		return strings.TrimSpace(typeNode.Content(src))
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(node.Content(src)), ":"))
}

// applyModifiers sets visibility, setter visibility and static flag from modifiers children
func applyModifiers(decl *syntax.Declaration, node *sitter.Node, src []byte) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		modifier := node.NamedChild(i)
		switch modifier.Type() {
		case "visibility_modifier":
			if modifier.ChildCount() == 0 {
				continue
			}
			visibility, ok := syntax.ParseVisibility(modifier.Child(0).Content(src))
			if !ok {
				continue
			}
			if isSetterRestriction(modifier) {
				decl.SetterVisibility = visibility
				continue
			}
			decl.Visibility = visibility
		case "property_modifier":
			switch modifier.Content(src) {
			case "static", "class":
				decl.IsStatic = true
			}
		}
	}
}

// isSetterRestriction returns true for private(set) style modifiers
func isSetterRestriction(modifier *sitter.Node) bool {
	for i := 0; i < int(modifier.ChildCount()); i++ {
		if modifier.Child(i).Type() == "set" {
			return true
		}
	}
	return false
}

// classifyComputed distinguishes getter only, getter with setter and observer blocks
func classifyComputed(node *sitter.Node) syntax.Accessor {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		switch node.NamedChild(i).Type() {
		case "computed_setter", "computed_modify":
			return syntax.AccessorGetterSetter
		case "didset_clause", "willset_clause":
			return syntax.AccessorObservers
		}
	}
	return syntax.AccessorGetter
}

func classifyRequirements(node *sitter.Node) syntax.Accessor {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if node.NamedChild(i).Type() == "setter_specifier" {
			return syntax.AccessorGetterSetter
		}
	}
	return syntax.AccessorGetter
}
