package form

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/tags"
)

// DecodeYAML reads a form file. Fields missing from the document keep their
// defaults; seed keywords go through the same trimming and de-duplication as
// the tag editor.
func DecodeYAML(r io.Reader) (model.FormState, error) {
	state := model.NewFormState()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&state); err != nil && err != io.EOF {
		return model.FormState{}, fmt.Errorf("form: decode yaml: %w", err)
	}

	keywords := []string{}
	for _, candidate := range state.SeedKeywords {
		keywords, _ = tags.Add(keywords, candidate)
	}
	state.SeedKeywords = keywords
	return state, nil
}

// LoadFile reads a YAML form file from disk.
func LoadFile(path string) (model.FormState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormState{}, fmt.Errorf("form: read %s: %w", path, err)
	}
	return DecodeYAML(bytes.NewReader(data))
}
