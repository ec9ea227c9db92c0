// Package literal infers a declared type from the shape of an initializer expression
package literal

// Kind identifies an initializer expression shape
type Kind int

const (
	// KindOther is any expression outside the supported literal grammar
	KindOther Kind = iota
	KindInteger
	KindFloat
	KindString
	KindBool
	KindNil
	// KindInitializer is an empty-argument call on a type, e.g. String() or [Int]()
	KindInitializer
	KindArray
	KindDictionary
	KindTuple
)

var kindNames = map[Kind]string{
	KindOther:       "other",
	KindInteger:     "integer",
	KindFloat:       "float",
	KindString:      "string",
	KindBool:        "bool",
	KindNil:         "nil",
	KindInitializer: "initializer",
	KindArray:       "array",
	KindDictionary:  "dictionary",
	KindTuple:       "tuple",
}

// String returns kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Expr represents an initializer expression shape
type Expr struct {
	Kind Kind
	// Text holds the raw source of the expression
	Text string
	// TypeName holds the constructed type for KindInitializer
	TypeName string
	// Elements holds array and tuple elements
	Elements []*Element
	// Entries holds dictionary entries
	Entries []*Entry
}

// Element represents an array or tuple element, Label is set for labeled tuple elements
type Element struct {
	Label string
	Value *Expr
}

// Entry represents a dictionary key/value pair
type Entry struct {
	Key   *Expr
	Value *Expr
}
