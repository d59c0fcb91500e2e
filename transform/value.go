package transform

import "github.com/specforge/monomorph/model"

// mapping binds the generic parameters of a definition to concrete values.
type mapping map[model.TypeName]model.ValueOf

// paramMapping pairs params with args. Pairing stops at the shorter of the
// two lists.
func paramMapping(params []model.TypeName, args []model.ValueOf) mapping {
	n := min(len(params), len(args))
	m := make(mapping, n)
	for i := range n {
		m[params[i]] = args[i]
	}
	return m
}

// expandValue substitutes generic parameters in v and expands every type it
// references. v is not modified.
func (e *expander) expandValue(v model.ValueOf, m mapping) (model.ValueOf, error) {
	switch v := v.(type) {
	case *model.ArrayOf:
		value, err := e.expandValue(v.Value, m)
		if err != nil {
			return nil, err
		}
		return &model.ArrayOf{Value: value}, nil

	case *model.DictionaryOf:
		key, err := e.expandValue(v.Key, m)
		if err != nil {
			return nil, err
		}
		value, err := e.expandValue(v.Value, m)
		if err != nil {
			return nil, err
		}
		return &model.DictionaryOf{Key: key, Value: value, SingleKey: v.SingleKey}, nil

	case *model.InstanceOf:
		// A generic parameter of the enclosing definition
		if p, ok := m[v.Type]; ok {
			return p, nil
		}
		for i, arg := range v.Generics {
			if arg == nil {
				return nil, model.Errorf(model.CodeDecode, "generic argument %d of type %s is null", i, v.Type).WithType(v.Type)
			}
		}

		args, err := e.expandValues(v.Generics, m)
		if err != nil {
			return nil, err
		}
		name, err := e.expandType(v.Type, args)
		if err != nil {
			return nil, err
		}
		return &model.InstanceOf{Type: name}, nil

	case *model.UnionOf:
		items, err := e.expandValues(v.Items, m)
		if err != nil {
			return nil, err
		}
		return &model.UnionOf{Items: items}, nil

	case *model.LiteralValue, *model.UserDefinedValue:
		return v, nil

	case nil:
		return nil, nil

	default:
		panic("transform: unknown value kind " + v.Kind().String())
	}
}

func (e *expander) expandValues(values []model.ValueOf, m mapping) ([]model.ValueOf, error) {
	if values == nil {
		return nil, nil
	}
	out := make([]model.ValueOf, len(values))
	for i, v := range values {
		expanded, err := e.expandValue(v, m)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}

// expandProperties expands the type of each property in place.
func (e *expander) expandProperties(props []model.Property, m mapping) error {
	for i := range props {
		typ, err := e.expandValue(props[i].Type, m)
		if err != nil {
			return err
		}
		props[i].Type = typ
	}
	return nil
}

// expandBody expands a body in place.
func (e *expander) expandBody(body model.Body, m mapping) error {
	switch b := body.(type) {
	case *model.ValueBody:
		value, err := e.expandValue(b.Value, m)
		if err != nil {
			return err
		}
		b.Value = value
	case *model.PropertiesBody:
		return e.expandProperties(b.Properties, m)
	case *model.NoBody, nil:
	default:
		panic("transform: unknown body kind " + body.Kind().String())
	}
	return nil
}

// expandBehaviors expands the generic arguments of behaviors in place.
// Behaviors keep their arguments: only the enclosing definition's own
// parameters are eliminated.
func (e *expander) expandBehaviors(behaviors []model.Inherits, m mapping) error {
	for i := range behaviors {
		args, err := e.expandValues(behaviors[i].Generics, m)
		if err != nil {
			return err
		}
		behaviors[i].Generics = args
	}
	return nil
}

// expandInherits expands a parent reference. The parent must expand to a
// type instance.
func (e *expander) expandInherits(i *model.Inherits, m mapping) (*model.Inherits, error) {
	if i == nil {
		return nil, nil
	}
	expanded, err := e.expandValue(&model.InstanceOf{Type: i.Type, Generics: i.Generics}, m)
	if err != nil {
		return nil, err
	}
	inst, ok := expanded.(*model.InstanceOf)
	if !ok {
		return nil, model.Errorf(model.CodeMalformedInherits,
			"inherits clause of %s doesn't expand to an instance_of: got %s", i.Type, kindOf(expanded)).WithType(i.Type)
	}
	return &model.Inherits{Type: inst.Type}, nil
}

func kindOf(v model.ValueOf) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind().String()
}
