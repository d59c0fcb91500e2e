package model_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/specforge/monomorph/internal/modeltest"
	"github.com/specforge/monomorph/model"
)

func TestModel_GetType(t *testing.T) {
	bar := modeltest.Name("ns", "Bar")
	status := modeltest.Name("ns", "Status")
	m := modeltest.NewModel().
		WithType(modeltest.Interface(bar, nil)).
		WithType(&model.Enum{BaseType: model.BaseType{Name: status}}).
		Build()

	if def, err := m.GetType(bar); err != nil || def.Kind() != model.KindInterface {
		t.Errorf("GetType(%s) = %v, %v", bar, def, err)
	}
	if itf, err := m.GetInterface(bar); err != nil || itf.Name != bar {
		t.Errorf("GetInterface(%s) = %v, %v", bar, itf, err)
	}

	tests := []struct {
		name    string
		lookup  func() error
		wantErr error
		wantFor model.TypeName
	}{
		{
			name: "missing type",
			lookup: func() error {
				_, err := m.GetType(modeltest.Name("ns", "Missing"))
				return err
			},
			wantErr: model.ErrTypeNotFound,
			wantFor: modeltest.Name("ns", "Missing"),
		},
		{
			name: "missing interface",
			lookup: func() error {
				_, err := m.GetInterface(modeltest.Name("ns", "Missing"))
				return err
			},
			wantErr: model.ErrTypeNotFound,
			wantFor: modeltest.Name("ns", "Missing"),
		},
		{
			name: "not an interface",
			lookup: func() error {
				_, err := m.GetInterface(status)
				return err
			},
			wantErr: model.ErrWrongKind,
			wantFor: status,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var merr *model.Error
			if !errors.As(err, &merr) {
				t.Fatalf("error is %T, want *model.Error", err)
			}
			if merr.Type != tt.wantFor {
				t.Errorf("Error.Type = %s, want %s", merr.Type, tt.wantFor)
			}
			if !strings.Contains(err.Error(), tt.wantFor.String()) {
				t.Errorf("error message %q does not name %s", err, tt.wantFor)
			}
		})
	}
}

func TestModel_Validate(t *testing.T) {
	base := modeltest.Name("ns", "Base")
	child := modeltest.Name("ns", "Child")

	tests := []struct {
		name      string
		model     *model.Model
		wantCodes []string
	}{
		{
			name: "valid model",
			model: modeltest.NewModel().
				WithType(modeltest.Interface(base, nil, modeltest.Prop("id", modeltest.String()))).
				WithType(modeltest.Response(modeltest.Name("ns", "Response"), nil, modeltest.Ref("ns", "Base"))).
				WithEndpoint("get", model.TypeName{}, modeltest.Name("ns", "Response")).
				Build(),
		},
		{
			name: "generic type",
			model: modeltest.NewModel().
				WithType(modeltest.Interface(base, []model.TypeName{modeltest.Name("ns", "T")},
					modeltest.Prop("value", modeltest.Param("ns", "T")))).
				Build(),
			// The parameter reference itself is unresolved too.
			wantCodes: []string{"unexpanded_generics", "missing_type_reference"},
		},
		{
			name: "dangling reference",
			model: modeltest.NewModel().
				WithType(modeltest.Interface(base, nil,
					modeltest.Prop("items", model.Array(modeltest.Ref("ns", "Missing"))))).
				Build(),
			wantCodes: []string{"missing_type_reference"},
		},
		{
			name: "behavior target is not a reference",
			model: func() *model.Model {
				itf := modeltest.Interface(base, nil)
				itf.Behaviors = []model.Inherits{{
					Type:     modeltest.Name("_spec_utils", "AdditionalProperties"),
					Generics: []model.ValueOf{modeltest.String(), modeltest.Ref("ns", "Missing")},
				}}
				return modeltest.NewModel().WithType(itf).Build()
			}(),
			wantCodes: []string{"missing_type_reference"},
		},
		{
			name: "missing endpoint type",
			model: modeltest.NewModel().
				WithEndpoint("get", modeltest.Name("ns", "Request"), model.Builtin("void")).
				Build(),
			wantCodes: []string{"missing_endpoint_type"},
		},
		{
			name: "circular inheritance",
			model: func() *model.Model {
				b := modeltest.Interface(base, nil)
				b.Inherits = &model.Inherits{Type: child}
				c := modeltest.Interface(child, nil)
				c.Inherits = &model.Inherits{Type: base}
				return modeltest.NewModel().WithType(b).WithType(c).Build()
			}(),
			wantCodes: []string{"circular_inheritance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.model.Validate()
			var codes []string
			for _, err := range errs {
				var verr *model.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error is %T, want *model.ValidationError", err)
				}
				codes = append(codes, verr.Code)
			}
			if strings.Join(codes, ",") != strings.Join(tt.wantCodes, ",") {
				t.Errorf("Validate() codes = %v, want %v (errors: %v)", codes, tt.wantCodes, errs)
			}
		})
	}
}

func TestModel_JSONRoundTrip(t *testing.T) {
	files := modeltest.ParseArchive(t, "testdata/model.txtar")

	m, err := model.Decode(files["model.json"], model.FormatJSON)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if m.Info == nil || m.Info.Title != "Round trip" {
		t.Errorf("Info = %+v", m.Info)
	}
	if m.Types.Len() != 6 {
		t.Errorf("types = %v, want 6", m.Types.Names())
	}

	encoded := modeltest.Encode(t, m)
	modeltest.AssertJSONEqual(t, encoded, files["model.json"])

	// Encoding is stable.
	again, err := model.Decode(encoded, model.FormatJSON)
	if err != nil {
		t.Fatalf("Decode of encoded model failed: %v", err)
	}
	if second := modeltest.Encode(t, again); !bytes.Equal(encoded, second) {
		t.Errorf("re-encoding changed the output:\n%s\n---\n%s", encoded, second)
	}
}

func TestModel_DecodeYAML(t *testing.T) {
	files := modeltest.ParseArchive(t, "testdata/model.txtar")

	fromJSON, err := model.Decode(files["model.json"], model.FormatJSON)
	if err != nil {
		t.Fatalf("Decode(json) failed: %v", err)
	}
	fromYAML, err := model.Decode(files["model.yaml"], model.FormatYAML)
	if err != nil {
		t.Fatalf("Decode(yaml) failed: %v", err)
	}

	modeltest.AssertJSONEqual(t, modeltest.Encode(t, fromYAML), modeltest.Encode(t, fromJSON))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  model.Format
		wantErr error
	}{
		{
			name:    "unknown type kind",
			input:   `{"endpoints": [], "types": [{"kind": "class", "name": {"namespace": "ns", "name": "X"}}]}`,
			format:  model.FormatJSON,
			wantErr: model.ErrDecode,
		},
		{
			name:    "unknown value kind",
			input:   `{"endpoints": [], "types": [{"kind": "type_alias", "name": {"namespace": "ns", "name": "X"}, "type": {"kind": "tuple_of"}}]}`,
			format:  model.FormatJSON,
			wantErr: model.ErrDecode,
		},
		{
			name:    "unknown body kind",
			input:   `{"endpoints": [], "types": [{"kind": "response", "name": {"namespace": "ns", "name": "X"}, "body": {"kind": "stream"}}]}`,
			format:  model.FormatJSON,
			wantErr: model.ErrDecode,
		},
		{
			name:   "malformed JSON",
			input:  `{"types": [`,
			format: model.FormatJSON,
		},
		{
			name:   "malformed YAML",
			input:  "types: [\n  - kind: {",
			format: model.FormatYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.Decode([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]model.Format{
		"schema.json":    model.FormatJSON,
		"schema.yaml":    model.FormatYAML,
		"dir/schema.YML": model.FormatYAML,
		"schema":         model.FormatJSON,
		"schema.txt":     model.FormatJSON,
	}
	for path, want := range tests {
		if got := model.FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}
