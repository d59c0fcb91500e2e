package expand

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specforge/monomorph/internal/modeltest"
	"github.com/specforge/monomorph/model"
)

const searchModel = `
endpoints:
  - name: search
    request: {namespace: _global.search, name: Request}
    response: null
types:
  - kind: request
    name: {namespace: _global.search, name: Request}
    attachedBehaviors: [CommonQueryParameters]
    path: []
    query:
      - name: q
        required: false
        type: {kind: instance_of, type: {namespace: _builtins, name: string}}
    body:
      kind: value
      value:
        kind: instance_of
        type: {namespace: _types, name: Box}
        generics:
          - kind: instance_of
            type: {namespace: _builtins, name: string}
  - kind: interface
    name: {namespace: _types, name: Box}
    generics:
      - {namespace: _types, name: T}
    properties:
      - name: content
        required: true
        type: {kind: instance_of, type: {namespace: _types, name: T}}
  - kind: interface
    name: {namespace: _spec_utils, name: CommonQueryParameters}
    properties:
      - name: pretty
        required: false
        type: {kind: instance_of, type: {namespace: _builtins, name: boolean}}
  - kind: interface
    name: {namespace: _common, name: Paging}
    properties:
      - name: size
        required: false
        type: {kind: instance_of, type: {namespace: _builtins, name: integer}}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func queryNames(t *testing.T, data []byte) []string {
	t.Helper()
	m, err := model.Decode(data, model.FormatJSON)
	if err != nil {
		t.Fatalf("output is not a model: %v\n%s", err, data)
	}
	if errs := m.Validate(); len(errs) != 0 {
		t.Errorf("output does not validate: %v", errs)
	}
	req, err := m.GetType(modeltest.Name("_global.search", "Request"))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range req.(*model.Request).Query {
		names = append(names, p.Name)
	}
	return names
}

func TestExpand_Stdout(t *testing.T) {
	dir := t.TempDir()
	cmd := &Cmd{Input: writeFile(t, dir, "model.yaml", searchModel)}

	var stdout, stderr bytes.Buffer
	if err := cmd.run(context.Background(), &stdout, &stderr); err != nil {
		t.Fatalf("run() failed: %v\n%s", err, stderr.String())
	}

	if got := strings.Join(queryNames(t, stdout.Bytes()), ","); got != "q,pretty" {
		t.Errorf("query = %s, want q,pretty", got)
	}
	if !strings.Contains(stdout.String(), `"name": "Boxstring"`) {
		t.Errorf("output missing expanded type:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "expanded generics") {
		t.Errorf("stderr missing run summary:\n%s", stderr.String())
	}
}

func TestExpand_ConfigAndOverrides(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out", "schema.json")
	cmd := &Cmd{
		Input:    writeFile(t, dir, "model.yaml", searchModel),
		Out:      out,
		Config:   writeFile(t, dir, "monomorph.yaml", "queryBehaviors:\n  namespace: _common\n  names: [Paging]\n"),
		Set:      []string{"output.indent="},
		LogLevel: "debug",
	}

	var stdout, stderr bytes.Buffer
	if err := cmd.run(context.Background(), &stdout, &stderr); err != nil {
		t.Fatalf("run() failed: %v\n%s", err, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing when writing to a file", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Count(data, []byte("\n")) != 1 {
		t.Errorf("output is not compact:\n%s", data)
	}
	// CommonQueryParameters is not configured, so only Paging is merged,
	// and the request does not attach it.
	if got := strings.Join(queryNames(t, data), ","); got != "q" {
		t.Errorf("query = %s, want q", got)
	}
	if !strings.Contains(stderr.String(), "level=DEBUG") {
		t.Errorf("stderr missing debug logs:\n%s", stderr.String())
	}
}

func TestExpand_NoOverwrite(t *testing.T) {
	dir := t.TempDir()
	out := writeFile(t, dir, "schema.json", "existing")
	cmd := &Cmd{
		Input: writeFile(t, dir, "model.yaml", searchModel),
		Out:   out,
		Set:   []string{"output.overwrite=false"},
	}

	err := cmd.run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("run() error = %v, want already exists", err)
	}
	if data, _ := os.ReadFile(out); string(data) != "existing" {
		t.Errorf("output overwritten: %q", data)
	}
}

func TestExpand_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "model.yaml", searchModel)
	broken := writeFile(t, dir, "broken.yaml", strings.Replace(searchModel, "name: Box}", "name: Crate}", 1))

	tests := []struct {
		name    string
		cmd     *Cmd
		wantErr string
	}{
		{"bad log level", &Cmd{Input: input, LogLevel: "loud"}, "logLevel"},
		{"bad override", &Cmd{Input: input, Set: []string{"nope"}}, "invalid override"},
		{"missing type", &Cmd{Input: broken}, "expand generics: type_not_found"},
		{"missing input", &Cmd{Input: filepath.Join(dir, "missing.json")}, "read model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("run() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
