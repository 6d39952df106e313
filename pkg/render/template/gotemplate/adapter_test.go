package gotemplate

import (
	"testing"
	"testing/fstest"
)

func TestEngine_RenderTemplate(t *testing.T) {
	files := fstest.MapFS{
		"greet.tmpl": {Data: []byte(`Hello {{ name }}`)},
	}
	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderTemplate("greet", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("output = %q", out)
	}

	again, err := engine.RenderTemplate("greet.tmpl", map[string]any{"name": "Bob"})
	if err != nil {
		t.Fatalf("render cached: %v", err)
	}
	if again != "Hello Bob" {
		t.Fatalf("cached output = %q", again)
	}
}

func TestEngine_StructDataUsesJSONNames(t *testing.T) {
	type row struct {
		DisplayName string `json:"display_name"`
	}
	files := fstest.MapFS{
		"row.html": {Data: []byte(`{{ row.display_name }}`)},
	}
	engine, err := New(WithFS(files), WithExtension("html"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := engine.RenderTemplate("row", map[string]any{"row": row{DisplayName: "x"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "x" {
		t.Fatalf("output = %q", out)
	}
}

func TestNew_RequiresFS(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}
