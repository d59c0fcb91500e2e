package model

// TypeAlias gives a name to a value shape.
type TypeAlias struct {
	BaseType

	Generics []TypeName `json:"generics,omitempty"`

	// Type is the aliased value shape.
	Type ValueOf `json:"type"`

	// Variants describes how a union alias is discriminated. It is opaque to
	// transforms and copied unchanged.
	Variants *TypeAliasVariants `json:"variants,omitempty"`
}

// Kind returns KindTypeAlias.
func (*TypeAlias) Kind() TypeKind { return KindTypeAlias }

// Base returns the alias's base attributes.
func (d *TypeAlias) Base() *BaseType { return &d.BaseType }

func (*TypeAlias) sealed() {}

// Clone returns a copy of d.
func (d *TypeAlias) Clone() *TypeAlias {
	c := *d
	c.Generics = append([]TypeName(nil), d.Generics...)
	return &c
}

// TypeAliasVariants describes a tagged or untagged union.
type TypeAliasVariants struct {
	Kind          string `json:"kind"`
	Tag           string `json:"tag,omitempty"`
	NonExhaustive bool   `json:"nonExhaustive,omitempty"`
}
