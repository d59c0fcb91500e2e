package model

// TypeKind identifies the variant of a type definition.
type TypeKind int

const (
	KindInterface TypeKind = iota // Object type with properties
	KindRequest                   // Endpoint request (path, query and body)
	KindResponse                  // Endpoint response
	KindTypeAlias                 // Alias of a value shape
	KindEnum                      // Enumeration of string members
)

// String returns the kind discriminator used in serialized models.
func (k TypeKind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	case KindTypeAlias:
		return "type_alias"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// TypeDefinition is a named type in the model.
// The set of implementations is closed: Interface, Request, Response,
// TypeAlias and Enum.
type TypeDefinition interface {
	// Kind returns the definition kind for type switching.
	Kind() TypeKind

	// Base returns the attributes shared by every definition.
	// The returned pointer aliases the definition.
	Base() *BaseType

	sealed()
}

// Generics returns the generic parameters declared by def.
// Enums never declare any.
func Generics(def TypeDefinition) []TypeName {
	switch d := def.(type) {
	case *Interface:
		return d.Generics
	case *Request:
		return d.Generics
	case *Response:
		return d.Generics
	case *TypeAlias:
		return d.Generics
	case *Enum:
		return nil
	default:
		panic("model: unknown type definition " + def.Kind().String())
	}
}
