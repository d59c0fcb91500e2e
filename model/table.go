package model

import (
	"iter"
	"slices"
)

// TypeTable is an insertion-ordered mapping from type name to definition.
// The zero value is not usable; create tables with NewTypeTable.
type TypeTable struct {
	names []TypeName
	defs  map[TypeName]TypeDefinition
}

// NewTypeTable returns an empty table.
func NewTypeTable() *TypeTable {
	return &TypeTable{defs: make(map[TypeName]TypeDefinition)}
}

// Insert adds def under name. Inserting an existing name replaces the
// definition and keeps its position.
func (t *TypeTable) Insert(name TypeName, def TypeDefinition) {
	if _, exists := t.defs[name]; !exists {
		t.names = append(t.names, name)
	}
	t.defs[name] = def
}

// Get returns the definition registered under name.
func (t *TypeTable) Get(name TypeName) (TypeDefinition, bool) {
	if t == nil {
		return nil, false
	}
	def, ok := t.defs[name]
	return def, ok
}

// Has reports whether name is registered.
func (t *TypeTable) Has(name TypeName) bool {
	_, ok := t.Get(name)
	return ok
}

// Len returns the number of definitions.
func (t *TypeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns the registered names in table order.
func (t *TypeTable) Names() []TypeName {
	if t == nil {
		return nil
	}
	return slices.Clone(t.names)
}

// All iterates over the table in order.
func (t *TypeTable) All() iter.Seq2[TypeName, TypeDefinition] {
	return func(yield func(TypeName, TypeDefinition) bool) {
		if t == nil {
			return
		}
		for _, name := range t.names {
			if !yield(name, t.defs[name]) {
				return
			}
		}
	}
}

// SortKeys reorders the table by name (see TypeName.Compare).
func (t *TypeTable) SortKeys() {
	slices.SortFunc(t.names, TypeName.Compare)
}
