package literal

import (
	"fmt"
	"slices"
	"strings"
)

// Unresolved returns the placeholder type name used when declaration type can not be inferred
func Unresolved(declaration string) string {
	return fmt.Sprintf("<<unknown type, please add type attribution to variable '%s'>>", declaration)
}

// InferType returns the type name inferred from expr or the Unresolved placeholder for declaration
func InferType(expr *Expr, declaration string) string {
	if typeName, ok := Infer(expr); ok {
		return typeName
	}
	return Unresolved(declaration)
}

// Infer returns the type name inferred from expr, ok is false when no rule applies
func Infer(expr *Expr) (string, bool) {
	if expr == nil {
		return "", false
	}
	switch expr.Kind {
	case KindInteger:
		return "Int", true
	case KindFloat:
		return "Double", true
	case KindString:
		return "String", true
	case KindBool:
		return "Bool", true
	case KindNil:
		return "Optional", true
	case KindInitializer:
		return expr.TypeName, expr.TypeName != ""
	case KindArray:
		values := make([]*Expr, len(expr.Elements))
		for i, element := range expr.Elements {
			values[i] = element.Value
		}
		elementType, ok := merge(values)
		if !ok {
			return "", false
		}
		return "[" + elementType + "]", true
	case KindDictionary:
		keys := make([]*Expr, len(expr.Entries))
		values := make([]*Expr, len(expr.Entries))
		for i, entry := range expr.Entries {
			keys[i], values[i] = entry.Key, entry.Value
		}
		keyType, ok := merge(keys)
		if !ok {
			return "", false
		}
		valueType, ok := merge(values)
		if !ok {
			return "", false
		}
		return "[" + keyType + ": " + valueType + "]", true
	case KindTuple:
		return inferTuple(expr)
	}
	return "", false
}

func inferTuple(expr *Expr) (string, bool) {
	parts := make([]string, 0, len(expr.Elements))
	for _, element := range expr.Elements {
		elementType, ok := Infer(element.Value)
		if !ok {
			return "", false
		}
		if element.Label != "" && element.Label != "_" {
			elementType = element.Label + ": " + elementType
		}
		parts = append(parts, elementType)
	}
	return "(" + strings.Join(parts, ", ") + ")", true
}

// merge returns the common type of exprs: T when uniform, T? when uniform with nil, Any when mixed
func merge(exprs []*Expr) (string, bool) {
	hasNil := false
	var distinct []string
	for _, expr := range exprs {
		if expr != nil && expr.Kind == KindNil {
			hasNil = true
			continue
		}
		typeName, ok := Infer(expr)
		if !ok {
			return "", false
		}
		if !slices.Contains(distinct, typeName) {
			distinct = append(distinct, typeName)
		}
	}
	switch len(distinct) {
	case 0:
		return "", false
	case 1:
		if hasNil {
			return distinct[0] + "?", true
		}
		return distinct[0], true
	}
	return "Any", true
}
