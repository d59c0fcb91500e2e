package transform

import (
	"testing"

	"github.com/specforge/monomorph/internal/modeltest"
	"github.com/specforge/monomorph/model"
)

func TestExpandedName(t *testing.T) {
	container := modeltest.Name("_types", "Container")
	bar := modeltest.Ref("other.ns", "Bar")

	tests := []struct {
		name string
		args []model.ValueOf
		want string
	}{
		{
			name: "no arguments",
			args: nil,
			want: "Container",
		},
		{
			name: "user defined only",
			args: []model.ValueOf{model.UserDefined()},
			want: "Container",
		},
		{
			name: "array of reference",
			args: []model.ValueOf{model.Array(bar)},
			want: "ContainerArrayBar",
		},
		{
			name: "reference uses unqualified name",
			args: []model.ValueOf{bar},
			want: "ContainerBar",
		},
		{
			name: "reference arguments are ignored",
			args: []model.ValueOf{modeltest.Ref("other.ns", "Bar", modeltest.String())},
			want: "ContainerBar",
		},
		{
			name: "dictionary ignores key",
			args: []model.ValueOf{model.Dict(modeltest.Ref("_types", "Field"), bar)},
			want: "ContainerDictBar",
		},
		{
			name: "union",
			args: []model.ValueOf{model.Union(modeltest.String(), bar)},
			want: "ContainerUnionstringBar",
		},
		{
			name: "string literal",
			args: []model.ValueOf{model.Literal("x")},
			want: "Containerx",
		},
		{
			name: "number literal",
			args: []model.ValueOf{model.Literal(42)},
			want: "Container42",
		},
		{
			name: "large float literal",
			args: []model.ValueOf{model.Literal(1e21)},
			want: "Container1000000000000000000000",
		},
		{
			name: "fractional float literal",
			args: []model.ValueOf{model.Literal(0.25)},
			want: "Container0.25",
		},
		{
			name: "missing argument contributes nothing",
			args: []model.ValueOf{nil, bar},
			want: "ContainerBar",
		},
		{
			name: "nested user defined",
			args: []model.ValueOf{model.Array(model.UserDefined())},
			want: "ContainerArrayUserDefined",
		},
		{
			name: "user defined skipped between arguments",
			args: []model.ValueOf{bar, model.UserDefined(), modeltest.Ref("_types", "Baz")},
			want: "ContainerBarBaz",
		},
		{
			name: "nested collections",
			args: []model.ValueOf{model.Dict(modeltest.String(), model.Array(model.Union(bar, model.Literal(true))))},
			want: "ContainerDictArrayUnionBartrue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandedName(container, tt.args)
			if got.Name != tt.want {
				t.Errorf("ExpandedName() = %q, want %q", got.Name, tt.want)
			}
			if got.Namespace != container.Namespace {
				t.Errorf("ExpandedName() namespace = %q, want %q", got.Namespace, container.Namespace)
			}
		})
	}
}
