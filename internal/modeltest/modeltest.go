// Package modeltest provides helpers for building schema models and
// comparing serialized models in tests.
package modeltest

import (
	"bytes"
	"encoding/json"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/specforge/monomorph/model"
)

// Name returns a type name.
func Name(namespace, name string) model.TypeName {
	return model.TypeName{Namespace: namespace, Name: name}
}

// Ref returns an instance_of value for namespace.name with the given
// generic arguments.
func Ref(namespace, name string, generics ...model.ValueOf) *model.InstanceOf {
	return model.Instance(Name(namespace, name), generics...)
}

// String returns an instance_of the built-in string type.
func String() *model.InstanceOf {
	return model.Instance(model.Builtin("string"))
}

// Param returns an instance_of a generic parameter declared in namespace.
func Param(namespace, name string) *model.InstanceOf {
	return model.Instance(Name(namespace, name))
}

// Prop returns a required property.
func Prop(name string, typ model.ValueOf) model.Property {
	return model.Property{Name: name, Type: typ, Required: true}
}

// ModelBuilder builds a model with a fluent API.
type ModelBuilder struct {
	m *model.Model
}

// NewModel creates a new model builder.
func NewModel() *ModelBuilder {
	return &ModelBuilder{m: model.New()}
}

// WithType adds a type definition.
func (b *ModelBuilder) WithType(def model.TypeDefinition) *ModelBuilder {
	b.m.AddType(def)
	return b
}

// WithEndpoint adds an endpoint. A zero request or response name leaves it
// unset.
func (b *ModelBuilder) WithEndpoint(name string, request, response model.TypeName) *ModelBuilder {
	ep := model.Endpoint{Name: name}
	if !request.IsZero() {
		ep.Request = &request
	}
	if !response.IsZero() {
		ep.Response = &response
	}
	b.m.AddEndpoint(ep)
	return b
}

// Build returns the model.
func (b *ModelBuilder) Build() *model.Model {
	return b.m
}

// Interface returns an interface definition.
func Interface(name model.TypeName, generics []model.TypeName, props ...model.Property) *model.Interface {
	return &model.Interface{
		BaseType:   model.BaseType{Name: name},
		Generics:   generics,
		Properties: props,
	}
}

// Request returns a request definition with an optional value body.
func Request(name model.TypeName, generics []model.TypeName, query []model.Property, body model.ValueOf) *model.Request {
	req := &model.Request{
		BaseType: model.BaseType{Name: name},
		Generics: generics,
		Query:    query,
		Body:     &model.NoBody{},
	}
	if body != nil {
		req.Body = &model.ValueBody{Value: body}
	}
	return req
}

// Response returns a response definition with a value body.
func Response(name model.TypeName, generics []model.TypeName, body model.ValueOf) *model.Response {
	return &model.Response{
		BaseType: model.BaseType{Name: name},
		Generics: generics,
		Body:     &model.ValueBody{Value: body},
	}
}

// Encode returns the indented JSON form of m.
func Encode(t testing.TB, m *model.Model) []byte {
	t.Helper()
	data, err := model.Marshal(m, "  ")
	if err != nil {
		t.Fatalf("failed to encode model: %v", err)
	}
	return data
}

// ParseArchive reads a txtar archive and returns its files by name.
func ParseArchive(t testing.TB, path string) map[string][]byte {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to read archive %s: %v", path, err)
	}
	files := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = f.Data
	}
	return files
}

// AssertJSONEqual compares two JSON documents, ignoring formatting.
func AssertJSONEqual(t testing.TB, got, want []byte) {
	t.Helper()
	gotNorm, err := normalize(got)
	if err != nil {
		t.Fatalf("failed to parse actual JSON: %v\n%s", err, got)
	}
	wantNorm, err := normalize(want)
	if err != nil {
		t.Fatalf("failed to parse expected JSON: %v\n%s", err, want)
	}
	if !bytes.Equal(gotNorm, wantNorm) {
		t.Errorf("JSON mismatch:\nExpected:\n%s\nActual:\n%s", wantNorm, gotNorm)
	}
}

func normalize(data []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, "", "  ")
}
