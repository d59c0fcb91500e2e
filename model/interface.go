package model

// Interface is an object type with named properties.
type Interface struct {
	BaseType

	// Generics contains the formal generic parameters, in declaration order.
	Generics []TypeName `json:"generics,omitempty"`

	// Inherits is the parent type, if any.
	Inherits *Inherits `json:"inherits,omitempty"`

	// Behaviors are capability attachments. Their generic arguments are
	// independent of this type's own generic parameters.
	Behaviors []Inherits `json:"behaviors,omitempty"`

	// AttachedBehaviors lists behavior names attached by name only.
	AttachedBehaviors []string `json:"attachedBehaviors,omitempty"`

	Properties []Property `json:"properties"`
}

// Kind returns KindInterface.
func (*Interface) Kind() TypeKind { return KindInterface }

// Base returns the interface's base attributes.
func (d *Interface) Base() *BaseType { return &d.BaseType }

func (*Interface) sealed() {}

// Clone returns a copy of d whose slices can be edited without affecting d.
// Values are shared.
func (d *Interface) Clone() *Interface {
	c := *d
	c.Generics = append([]TypeName(nil), d.Generics...)
	c.Inherits = cloneInherits(d.Inherits)
	c.Behaviors = cloneBehaviors(d.Behaviors)
	c.AttachedBehaviors = append([]string(nil), d.AttachedBehaviors...)
	c.Properties = cloneProperties(d.Properties)
	return &c
}

// Inherits is a reference to a parent type or to a behavior, with the
// generic arguments of that reference.
type Inherits struct {
	Type     TypeName
	Generics []ValueOf
}

// Property is a named field.
type Property struct {
	Name          string
	Type          ValueOf
	Required      bool
	Description   string
	ServerDefault any
	Aliases       []string
	Deprecation   *Deprecation
}

func cloneInherits(i *Inherits) *Inherits {
	if i == nil {
		return nil
	}
	return &Inherits{Type: i.Type, Generics: append([]ValueOf(nil), i.Generics...)}
}

func cloneBehaviors(behaviors []Inherits) []Inherits {
	if behaviors == nil {
		return nil
	}
	out := make([]Inherits, len(behaviors))
	for i, b := range behaviors {
		out[i] = Inherits{Type: b.Type, Generics: append([]ValueOf(nil), b.Generics...)}
	}
	return out
}

func cloneProperties(props []Property) []Property {
	if props == nil {
		return nil
	}
	return append(make([]Property, 0, len(props)), props...)
}
