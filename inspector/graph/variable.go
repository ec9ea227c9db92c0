package graph

import (
	"github.com/viant/sourcery/inspector/annotation"
)

// Variable represents an analysed variable or property declaration
type Variable struct {
	Name          string                 `json:"name" yaml:"name"`
	TypeName      TypeName               `json:"typeName" yaml:"typeName"`
	AccessLevel   AccessLevel            `json:"accessLevel" yaml:"accessLevel"`
	IsComputed    bool                   `json:"isComputed" yaml:"isComputed"`
	IsStatic      bool                   `json:"isStatic,omitempty" yaml:"isStatic,omitempty"`
	DefaultValue  string                 `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Annotations   annotation.Annotations `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Documentation []string               `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Location      *Location              `json:"location,omitempty" yaml:"location,omitempty"`
	Hash          uint64                 `json:"hash,omitempty" yaml:"hash,omitempty"`
}

// IsMutable returns true if the variable can be written to
func (v *Variable) IsMutable() bool {
	return v.AccessLevel.Write != AccessNone
}

// IsOptional returns true if the variable type is optional
func (v *Variable) IsOptional() bool {
	return v.TypeName.IsOptional()
}

// Equal compares the analysed shape of two variables, ignoring location and hash
func (v *Variable) Equal(other *Variable) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Name == other.Name &&
		v.TypeName == other.TypeName &&
		v.AccessLevel == other.AccessLevel &&
		v.IsComputed == other.IsComputed &&
		v.IsStatic == other.IsStatic &&
		v.Annotations.Equal(other.Annotations)
}
