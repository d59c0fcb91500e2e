// Package transform rewrites schema models.
//
// ExpandGenerics removes generic type parameters by creating a concrete type
// for every instantiation of a generic type that is reachable from an
// endpoint.
package transform

import (
	"log/slog"

	"github.com/specforge/monomorph/model"
)

// expander holds the state of one ExpandGenerics run.
type expander struct {
	model *model.Model
	opts  *options

	// types accumulates the expanded definitions.
	types *model.TypeTable

	// seen holds the names of types already expanded or being expanded.
	seen map[model.TypeName]struct{}
}

// ExpandGenerics expands all generics by creating new concrete types for
// every instantiation of a generic type.
//
// The resulting model has no generics anymore and contains only the types
// reachable from endpoints, sorted by name. Top-level generic parameters
// (e.g., the document type of a search response) are bound to
// UserDefinedValue.
//
// m is not modified; endpoints and info are shared with the result. On error
// the result is nil.
func ExpandGenerics(m *model.Model, opts ...Option) (*model.Model, error) {
	e := &expander{
		model: m,
		opts:  newOptions(opts),
		types: model.NewTypeTable(),
		seen:  make(map[model.TypeName]struct{}),
	}

	for _, endpoint := range m.Endpoints {
		for _, name := range []*model.TypeName{endpoint.Request, endpoint.Response} {
			if name == nil {
				continue
			}
			if err := e.expandRootType(*name); err != nil {
				return nil, err
			}
		}
	}

	e.types.SortKeys()

	e.opts.logger.Info("expanded generics",
		slog.Int("endpoints", len(m.Endpoints)),
		slog.Int("types_in", m.Types.Len()),
		slog.Int("types_out", e.types.Len()),
	)

	return &model.Model{
		Info:      m.Info,
		Endpoints: m.Endpoints,
		Types:     e.types,
	}, nil
}

// expandRootType expands an endpoint's request or response type, binding
// each of its generic parameters to UserDefinedValue.
func (e *expander) expandRootType(name model.TypeName) error {
	if name.IsBuiltin() {
		return nil
	}
	def, err := e.model.GetType(name)
	if err != nil {
		return err
	}

	generics := model.Generics(def)
	args := make([]model.ValueOf, len(generics))
	for i := range args {
		args[i] = model.UserDefined()
	}

	_, err = e.expandType(name, args)
	return err
}

// expandType expands a type definition given concrete values for its
// generic parameters and stores the new definition in the table.
//
// Returns the name to use for this (type, args) combination.
func (e *expander) expandType(name model.TypeName, args []model.ValueOf) (model.TypeName, error) {
	if name.IsBuiltin() {
		return name, nil
	}

	def, err := e.model.GetType(name)
	if err != nil {
		return model.TypeName{}, err
	}
	expanded := ExpandedName(def.Base().Name, args)

	if _, ok := e.seen[expanded]; ok {
		return expanded, nil
	}
	// Mark before descending so that recursive types terminate.
	e.seen[expanded] = struct{}{}

	var out model.TypeDefinition
	switch d := def.(type) {
	case *model.Interface:
		out, err = e.expandInterface(d, args)
	case *model.Request:
		out, err = e.expandRequest(d, args)
	case *model.Response:
		out, err = e.expandResponse(d, args)
	case *model.TypeAlias:
		out, err = e.expandTypeAlias(d, args)
	case *model.Enum:
		out = d.Clone()
	default:
		panic("transform: unknown type definition kind " + def.Kind().String())
	}
	if err != nil {
		return model.TypeName{}, err
	}

	out.Base().Name = expanded
	e.types.Insert(expanded, out)

	e.opts.logger.Debug("expanded type",
		slog.String("type", expanded.String()),
		slog.String("from", name.String()),
		slog.String("kind", def.Kind().String()),
	)

	return expanded, nil
}

func (e *expander) expandInterface(itf *model.Interface, args []model.ValueOf) (*model.Interface, error) {
	out := itf.Clone()

	m := paramMapping(out.Generics, args)
	out.Generics = nil

	inherits, err := e.expandInherits(out.Inherits, m)
	if err != nil {
		return nil, err
	}
	out.Inherits = inherits

	if err := e.expandBehaviors(out.Behaviors, m); err != nil {
		return nil, err
	}
	if err := e.expandProperties(out.Properties, m); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *expander) expandRequest(req *model.Request, args []model.ValueOf) (*model.Request, error) {
	out := req.Clone()

	m := paramMapping(out.Generics, args)
	out.Generics = nil

	inherits, err := e.expandInherits(out.Inherits, m)
	if err != nil {
		return nil, err
	}
	out.Inherits = inherits

	// Merged properties go through the same substitution as declared ones.
	out.Query = e.mergeQueryBehaviors(out.Query, out.AttachedBehaviors)

	if err := e.expandBehaviors(out.Behaviors, m); err != nil {
		return nil, err
	}
	if err := e.expandProperties(out.Path, m); err != nil {
		return nil, err
	}
	if err := e.expandProperties(out.Query, m); err != nil {
		return nil, err
	}
	if err := e.expandBody(out.Body, m); err != nil {
		return nil, err
	}
	return out, nil
}

// expandResponse expands a response. Exceptions are passed through as is.
func (e *expander) expandResponse(resp *model.Response, args []model.ValueOf) (*model.Response, error) {
	out := resp.Clone()

	m := paramMapping(out.Generics, args)
	out.Generics = nil

	if err := e.expandBehaviors(out.Behaviors, m); err != nil {
		return nil, err
	}
	if err := e.expandBody(out.Body, m); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *expander) expandTypeAlias(alias *model.TypeAlias, args []model.ValueOf) (*model.TypeAlias, error) {
	out := alias.Clone()

	m := paramMapping(out.Generics, args)
	out.Generics = nil

	typ, err := e.expandValue(out.Type, m)
	if err != nil {
		return nil, err
	}
	out.Type = typ
	return out, nil
}
