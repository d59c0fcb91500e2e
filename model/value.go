package model

import (
	"fmt"
	"strconv"
)

// ValueKind identifies the variant of a value shape.
type ValueKind int

const (
	KindInstanceOf       ValueKind = iota // Reference to a named type
	KindArrayOf                           // Ordered collection
	KindDictionaryOf                      // Key-value mapping
	KindUnionOf                           // Union of value shapes
	KindLiteralValue                      // Literal string, number or boolean
	KindUserDefinedValue                  // Value supplied by the API caller
)

// String returns the kind discriminator used in serialized models.
func (k ValueKind) String() string {
	switch k {
	case KindInstanceOf:
		return "instance_of"
	case KindArrayOf:
		return "array_of"
	case KindDictionaryOf:
		return "dictionary_of"
	case KindUnionOf:
		return "union_of"
	case KindLiteralValue:
		return "literal_value"
	case KindUserDefinedValue:
		return "user_defined_value"
	default:
		return "unknown"
	}
}

// ValueOf is the shape of a property, body or alias.
// The set of implementations is closed: InstanceOf, ArrayOf, DictionaryOf,
// UnionOf, LiteralValue and UserDefinedValue. Values are treated as
// immutable once built; transforms construct new values instead of
// editing existing ones.
type ValueOf interface {
	// Kind returns the value kind for type switching.
	Kind() ValueKind

	sealed()
}

// InstanceOf references a named type, possibly instantiated with generic
// arguments. When Type names a generic parameter of the enclosing
// definition, Generics is empty.
type InstanceOf struct {
	Type     TypeName
	Generics []ValueOf
}

// Kind returns KindInstanceOf.
func (*InstanceOf) Kind() ValueKind { return KindInstanceOf }
func (*InstanceOf) sealed()         {}

// Instance returns an InstanceOf for the given type and arguments.
func Instance(typ TypeName, generics ...ValueOf) *InstanceOf {
	return &InstanceOf{Type: typ, Generics: generics}
}

// ArrayOf is an ordered collection of Value.
type ArrayOf struct {
	Value ValueOf
}

// Kind returns KindArrayOf.
func (*ArrayOf) Kind() ValueKind { return KindArrayOf }
func (*ArrayOf) sealed()         {}

// Array returns an ArrayOf for the element shape.
func Array(value ValueOf) *ArrayOf {
	return &ArrayOf{Value: value}
}

// DictionaryOf maps Key to Value.
type DictionaryOf struct {
	Key   ValueOf
	Value ValueOf

	// SingleKey is set for dictionaries that hold exactly one entry
	// (e.g., aggregations keyed by field name).
	SingleKey bool
}

// Kind returns KindDictionaryOf.
func (*DictionaryOf) Kind() ValueKind { return KindDictionaryOf }
func (*DictionaryOf) sealed()         {}

// Dict returns a DictionaryOf for the key and value shapes.
func Dict(key, value ValueOf) *DictionaryOf {
	return &DictionaryOf{Key: key, Value: value}
}

// UnionOf is one of Items. Item order is significant.
type UnionOf struct {
	Items []ValueOf
}

// Kind returns KindUnionOf.
func (*UnionOf) Kind() ValueKind { return KindUnionOf }
func (*UnionOf) sealed()         {}

// Union returns a UnionOf for the items.
func Union(items ...ValueOf) *UnionOf {
	return &UnionOf{Items: items}
}

// LiteralValue is a constant. Value holds a string, bool or number
// (int64 or float64 when built in code, float64 after JSON decoding).
type LiteralValue struct {
	Value any
}

// Kind returns KindLiteralValue.
func (*LiteralValue) Kind() ValueKind { return KindLiteralValue }
func (*LiteralValue) sealed()         {}

// String returns the textual form of the literal. Floats never use
// exponent notation, so the result can be part of a type name.
func (l *LiteralValue) String() string {
	switch v := l.Value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
	return fmt.Sprint(l.Value)
}

// Literal returns a LiteralValue.
func Literal(v any) *LiteralValue {
	return &LiteralValue{Value: v}
}

// UserDefinedValue stands for data whose shape is chosen by the API caller,
// such as the document type of a search response.
type UserDefinedValue struct{}

// Kind returns KindUserDefinedValue.
func (*UserDefinedValue) Kind() ValueKind { return KindUserDefinedValue }
func (*UserDefinedValue) sealed()         {}

// UserDefined returns a UserDefinedValue.
func UserDefined() *UserDefinedValue {
	return &UserDefinedValue{}
}
