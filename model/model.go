package model

import "strings"

// Model is a complete API specification: endpoints plus the type
// definitions they reference.
type Model struct {
	// Info is carried through transforms unchanged.
	Info *Info

	// Endpoints in specification order.
	Endpoints []Endpoint

	// Types contains every named type definition.
	Types *TypeTable
}

// New returns an empty model.
func New() *Model {
	return &Model{Types: NewTypeTable()}
}

// AddType registers a type definition under its own name.
func (m *Model) AddType(def TypeDefinition) {
	if m.Types == nil {
		m.Types = NewTypeTable()
	}
	m.Types.Insert(def.Base().Name, def)
}

// AddEndpoint appends an endpoint.
func (m *Model) AddEndpoint(e Endpoint) {
	m.Endpoints = append(m.Endpoints, e)
}

// GetType looks up a type definition by name.
func (m *Model) GetType(name TypeName) (TypeDefinition, error) {
	def, ok := m.Types.Get(name)
	if !ok {
		return nil, Errorf(CodeTypeNotFound, "type %s not found", name).WithType(name)
	}
	return def, nil
}

// GetInterface looks up an interface definition by name.
func (m *Model) GetInterface(name TypeName) (*Interface, error) {
	def, err := m.GetType(name)
	if err != nil {
		return nil, err
	}
	itf, ok := def.(*Interface)
	if !ok {
		return nil, Errorf(CodeWrongKind, "type %s is a %s, not an interface", name, def.Kind()).WithType(name)
	}
	return itf, nil
}

// ValidationError represents a structural problem found by Validate.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks that the model is closed and free of generics: every
// definition has an empty generic parameter list, every referenced type is
// either built-in or defined, and parents do not form cycles. It is meant to
// be run on the output of the generic expansion.
// Returns all validation errors found (not just the first).
func (m *Model) Validate() []error {
	var errs []*ValidationError

	for name, def := range m.Types.All() {
		if generics := Generics(def); len(generics) > 0 {
			errs = append(errs, &ValidationError{
				Code:    "unexpanded_generics",
				Message: "type " + name.String() + " still declares generic parameters",
			})
		}
		for _, ref := range references(def) {
			if !ref.IsBuiltin() && !m.Types.Has(ref) {
				errs = append(errs, &ValidationError{
					Code:    "missing_type_reference",
					Message: "type " + name.String() + " references unknown type: " + ref.String(),
				})
			}
		}
	}

	for _, ep := range m.Endpoints {
		for _, root := range []*TypeName{ep.Request, ep.Response} {
			if root != nil && !root.IsBuiltin() && !m.Types.Has(*root) {
				errs = append(errs, &ValidationError{
					Code:    "missing_endpoint_type",
					Message: "endpoint " + ep.Name + " references unknown type: " + root.String(),
				})
			}
		}
	}

	errs = append(errs, m.detectCircularInheritance()...)

	var result []error
	for _, e := range errs {
		result = append(result, e)
	}
	return result
}

// references returns the type names a definition depends on: its parent and
// every instance_of reachable from its properties, bodies and alias type.
// Behavior targets are excluded since behaviors are not expanded.
func references(def TypeDefinition) []TypeName {
	var refs []TypeName
	addValue := func(v ValueOf) {
		Walk(v, func(v ValueOf) {
			if inst, ok := v.(*InstanceOf); ok {
				refs = append(refs, inst.Type)
			}
		})
	}
	addProps := func(props []Property) {
		for _, p := range props {
			addValue(p.Type)
		}
	}
	addBody := func(b Body) {
		switch b := b.(type) {
		case *ValueBody:
			addValue(b.Value)
		case *PropertiesBody:
			addProps(b.Properties)
		}
	}
	addBehaviors := func(behaviors []Inherits) {
		for _, b := range behaviors {
			for _, arg := range b.Generics {
				addValue(arg)
			}
		}
	}

	switch d := def.(type) {
	case *Interface:
		if d.Inherits != nil {
			refs = append(refs, d.Inherits.Type)
		}
		addBehaviors(d.Behaviors)
		addProps(d.Properties)
	case *Request:
		if d.Inherits != nil {
			refs = append(refs, d.Inherits.Type)
		}
		addBehaviors(d.Behaviors)
		addProps(d.Path)
		addProps(d.Query)
		addBody(d.Body)
	case *Response:
		addBehaviors(d.Behaviors)
		addBody(d.Body)
	case *TypeAlias:
		addValue(d.Type)
	case *Enum:
	}
	return refs
}

// Walk calls fn for v and every value nested in it, depth first.
func Walk(v ValueOf, fn func(ValueOf)) {
	if v == nil {
		return
	}
	fn(v)
	switch v := v.(type) {
	case *InstanceOf:
		for _, arg := range v.Generics {
			Walk(arg, fn)
		}
	case *ArrayOf:
		Walk(v.Value, fn)
	case *DictionaryOf:
		Walk(v.Key, fn)
		Walk(v.Value, fn)
	case *UnionOf:
		for _, item := range v.Items {
			Walk(item, fn)
		}
	case *LiteralValue, *UserDefinedValue:
	default:
		panic("model: unknown value kind " + v.Kind().String())
	}
}

// parent returns the parent type of interfaces and requests.
func parent(def TypeDefinition) *Inherits {
	switch d := def.(type) {
	case *Interface:
		return d.Inherits
	case *Request:
		return d.Inherits
	}
	return nil
}

// detectCircularInheritance checks for cycles in parent references.
func (m *Model) detectCircularInheritance() []*ValidationError {
	var errs []*ValidationError

	visited := make(map[TypeName]bool)
	inStack := make(map[TypeName]bool)

	var detectCycle func(name TypeName, path []string)
	detectCycle = func(name TypeName, path []string) {
		if inStack[name] {
			errs = append(errs, &ValidationError{
				Code:    "circular_inheritance",
				Message: "circular inheritance detected: " + strings.Join(append(path, name.String()), " -> "),
			})
			return
		}
		if visited[name] {
			return
		}
		visited[name] = true
		inStack[name] = true

		if def, ok := m.Types.Get(name); ok {
			if p := parent(def); p != nil {
				detectCycle(p.Type, append(path, name.String()))
			}
		}

		inStack[name] = false
	}

	for _, name := range m.Types.Names() {
		detectCycle(name, nil)
	}
	return errs
}
