// Package model defines the schema model consumed and produced by the generic
// expansion transform. It is a language-agnostic representation of an API
// specification: named type definitions plus the endpoints that reference them.
package model

import (
	"cmp"
	"strings"
)

// BuiltinNamespace is the namespace of primitive types (string, number, ...).
// Types in this namespace are never looked up in the model.
const BuiltinNamespace = "_builtins"

// TypeName is a qualified type identifier.
type TypeName struct {
	// Namespace is the dotted namespace (e.g., "_types", "_global.search").
	Namespace string `json:"namespace"`

	// Name is the local name within the namespace (e.g., "SearchRequest").
	Name string `json:"name"`
}

// IsZero returns true if the name is empty.
func (n TypeName) IsZero() bool {
	return n.Namespace == "" && n.Name == ""
}

// IsBuiltin returns true if n names a built-in type.
func (n TypeName) IsBuiltin() bool {
	return n.Namespace == BuiltinNamespace
}

// String returns "namespace::name".
func (n TypeName) String() string {
	var b strings.Builder
	b.WriteString(n.Namespace)
	b.WriteString("::")
	b.WriteString(n.Name)
	return b.String()
}

// Compare orders type names by namespace, then by local name.
func (n TypeName) Compare(other TypeName) int {
	if c := cmp.Compare(n.Namespace, other.Namespace); c != 0 {
		return c
	}
	return cmp.Compare(n.Name, other.Name)
}

// Builtin returns the TypeName of a built-in type.
func Builtin(name string) TypeName {
	return TypeName{Namespace: BuiltinNamespace, Name: name}
}

// Deprecation marks a type or property as deprecated.
type Deprecation struct {
	Version     string `json:"version"`
	Description string `json:"description"`
}

// BaseType holds the attributes common to every type definition.
type BaseType struct {
	// Name is the qualified name of the definition. After expansion this is
	// the canonical name of the instantiation.
	Name TypeName `json:"name"`

	Description  string       `json:"description,omitempty"`
	DocURL       string       `json:"docUrl,omitempty"`
	Deprecation  *Deprecation `json:"deprecation,omitempty"`
	SpecLocation string       `json:"specLocation,omitempty"`
}

// Info is the model-level metadata block. It is carried through unchanged.
type Info struct {
	Title   string   `json:"title,omitempty"`
	License *License `json:"license,omitempty"`
}

// License describes the license of the API specification.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}
