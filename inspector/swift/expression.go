package swift

import (
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/sourcery/inspector/literal"
)

// parseExpression converts an initializer node into its literal shape
func parseExpression(node *sitter.Node, src []byte) *literal.Expr {
	expr := &literal.Expr{Kind: literal.KindOther, Text: node.Content(src)}
	if node.IsMissing() || node.IsError() {
		return expr
	}
	switch node.Type() {
	case "integer_literal", "hex_literal", "oct_literal", "bin_literal":
		expr.Kind = literal.KindInteger
	case "real_literal":
		expr.Kind = literal.KindFloat
	case "line_string_literal", "multi_line_string_literal", "raw_string_literal":
		expr.Kind = literal.KindString
	case "boolean_literal":
		expr.Kind = literal.KindBool
	case "nil":
		expr.Kind = literal.KindNil
	case "prefix_expression":
		expr.Kind = signedNumber(node, src)
	case "array_literal":
		forEachField(node, func(field string, child *sitter.Node) {
			if field == "element" {
				expr.Elements = append(expr.Elements, &literal.Element{Value: parseExpression(child, src)})
			}
		})
		if len(expr.Elements) > 0 {
			expr.Kind = literal.KindArray
		}
	case "dictionary_literal":
		var key *literal.Expr
		forEachField(node, func(field string, child *sitter.Node) {
			switch field {
			case "key":
				key = parseExpression(child, src)
			case "value":
				expr.Entries = append(expr.Entries, &literal.Entry{Key: key, Value: parseExpression(child, src)})
				key = nil
			}
		})
		if len(expr.Entries) > 0 {
			expr.Kind = literal.KindDictionary
		}
	case "tuple_expression":
		label := ""
		forEachField(node, func(field string, child *sitter.Node) {
			switch field {
			case "name":
				label = child.Content(src)
			case "value":
				expr.Elements = append(expr.Elements, &literal.Element{Label: label, Value: parseExpression(child, src)})
				label = ""
			}
		})
		switch {
		case len(expr.Elements) == 1 && expr.Elements[0].Label == "":
			return expr.Elements[0].Value
		case len(expr.Elements) > 0:
			expr.Kind = literal.KindTuple
		}
	case "call_expression":
		if node.NamedChildCount() == 2 && hasEmptyArguments(node.NamedChild(1)) {
			if typeName := initializedType(node.NamedChild(0), src); typeName != "" {
				expr.Kind = literal.KindInitializer
				expr.TypeName = typeName
			}
		}
	case "constructor_expression":
		constructed := node.ChildByFieldName("constructed_type")
		if constructed != nil && node.NamedChildCount() == 2 && hasEmptyArguments(node.NamedChild(1)) {
			expr.Kind = literal.KindInitializer
			expr.TypeName = typeText(constructed.Content(src))
		}
	}
	return expr
}

// forEachField visits children carrying a field name, anonymous ones such as nil included
func forEachField(node *sitter.Node, fn func(field string, child *sitter.Node)) {
	for i := 0; i < int(node.ChildCount()); i++ {
		if field := node.FieldNameForChild(i); field != "" {
			fn(field, node.Child(i))
		}
	}
}

// signedNumber returns the numeric kind of -1 or +1.5 forms
func signedNumber(node *sitter.Node, src []byte) literal.Kind {
	operation := node.ChildByFieldName("operation")
	target := node.ChildByFieldName("target")
	if operation == nil || target == nil {
		return literal.KindOther
	}
	if op := operation.Content(src); op != "-" && op != "+" {
		return literal.KindOther
	}
	switch kind := parseExpression(target, src).Kind; kind {
	case literal.KindInteger, literal.KindFloat:
		return kind
	}
	return literal.KindOther
}

// hasEmptyArguments returns true for a call suffix with an empty argument list and no trailing closure
func hasEmptyArguments(suffix *sitter.Node) bool {
	switch suffix.Type() {
	case "call_suffix", "constructor_suffix":
	default:
		return false
	}
	if suffix.NamedChildCount() != 1 {
		return false
	}
	arguments := suffix.NamedChild(0)
	return arguments.Type() == "value_arguments" && arguments.NamedChildCount() == 0
}

// initializedType returns the type constructed by a T(), T.init() or [T]() callee, empty when the callee is not a type
func initializedType(callee *sitter.Node, src []byte) string {
	if callee.Type() == "navigation_expression" && navigationName(callee, src) == "init" {
		callee = callee.ChildByFieldName("target")
		if callee == nil {
			return ""
		}
	}
	if !isTypeLike(callee, src) {
		return ""
	}
	return typeText(callee.Content(src))
}

func navigationName(node *sitter.Node, src []byte) string {
	suffix := node.ChildByFieldName("suffix")
	if suffix == nil {
		return ""
	}
	if name := suffix.ChildByFieldName("suffix"); name != nil {
		return name.Content(src)
	}
	return strings.TrimPrefix(suffix.Content(src), ".")
}

// isTypeLike reports whether an expression node spells a type, e.g. Parent.Child, [Int] or [String: Int]
func isTypeLike(node *sitter.Node, src []byte) bool {
	switch node.Type() {
	case "user_type", "array_type", "dictionary_type", "optional_type", "tuple_type":
		return true
	case "simple_identifier", "type_identifier":
		return isUpper(node.Content(src))
	case "navigation_expression":
		target := node.ChildByFieldName("target")
		return target != nil && isTypeLike(target, src) && isUpper(navigationName(node, src))
	case "array_literal":
		elements := 0
		valid := true
		forEachField(node, func(field string, child *sitter.Node) {
			if field != "element" {
				return
			}
			if !child.IsNamed() {
				valid = valid && (child.Content(src) == "?" || child.Content(src) == "!")
				return
			}
			elements++
			valid = valid && isTypeLike(child, src)
		})
		return valid && elements == 1
	case "dictionary_literal":
		var parts []*sitter.Node
		forEachField(node, func(field string, child *sitter.Node) {
			parts = append(parts, child)
		})
		return len(parts) == 2 && isTypeLike(parts[0], src) && isTypeLike(parts[1], src)
	}
	return false
}

func isUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// typeText renders type source in canonical spacing, e.g. [String:Int] as [String: Int]
func typeText(text string) string {
	text = strings.Join(strings.Fields(text), "")
	text = strings.ReplaceAll(text, ":", ": ")
	return strings.ReplaceAll(text, ",", ", ")
}
