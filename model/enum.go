package model

// Enum is an enumeration of string members. Enums are never generic.
type Enum struct {
	BaseType

	Members []EnumMember `json:"members"`

	// IsOpen is set when values outside Members are accepted.
	IsOpen bool `json:"isOpen,omitempty"`
}

// Kind returns KindEnum.
func (*Enum) Kind() TypeKind { return KindEnum }

// Base returns the enum's base attributes.
func (d *Enum) Base() *BaseType { return &d.BaseType }

func (*Enum) sealed() {}

// Clone returns a copy of d.
func (d *Enum) Clone() *Enum {
	c := *d
	c.Members = append([]EnumMember(nil), d.Members...)
	return &c
}

// EnumMember is a single enum variant.
type EnumMember struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description,omitempty"`
}
