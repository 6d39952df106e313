// Package contract checks payloads exchanged with the keyword research service
// against its OpenAPI description.
package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var embeddedDocument []byte

// SearchOperationPath is the path of the search operation in the document.
const SearchOperationPath = "/api/v1/keywords/search"

// Document returns the embedded OpenAPI description.
func Document() []byte {
	return append([]byte(nil), embeddedDocument...)
}

// Validator holds the resolved request and response schemas of the search
// operation.
type Validator struct {
	request  *openapi3.Schema
	response *openapi3.Schema
}

// New loads the embedded document.
func New(ctx context.Context) (*Validator, error) {
	return Load(ctx, embeddedDocument)
}

// Load builds a Validator from an OpenAPI document.
func Load(ctx context.Context, data []byte) (*Validator, error) {
	if len(data) == 0 {
		return nil, errors.New("contract: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate document: %w", err)
	}

	if doc.Paths == nil {
		return nil, errors.New("contract: document does not contain any paths")
	}
	item := doc.Paths.Find(SearchOperationPath)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("contract: POST %s not described", SearchOperationPath)
	}
	op := item.Post

	request, err := requestSchema(op)
	if err != nil {
		return nil, err
	}
	response, err := responseSchema(op)
	if err != nil {
		return nil, err
	}
	return &Validator{request: request, response: response}, nil
}

// ValidateRequest checks a JSON request body.
func (v *Validator) ValidateRequest(body []byte) error {
	return visit(v.request, body, "request")
}

// ValidateResponse checks a JSON response body.
func (v *Validator) ValidateResponse(body []byte) error {
	return visit(v.response, body, "response")
}

func visit(schema *openapi3.Schema, body []byte, kind string) error {
	if schema == nil {
		return fmt.Errorf("contract: %s schema missing", kind)
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("contract: decode %s: %w", kind, err)
	}
	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("contract: invalid %s: %w", kind, err)
	}
	return nil
}

func requestSchema(op *openapi3.Operation) (*openapi3.Schema, error) {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil, errors.New("contract: search operation has no request body")
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, errors.New("contract: search request body has no JSON schema")
	}
	return media.Schema.Value, nil
}

func responseSchema(op *openapi3.Operation) (*openapi3.Schema, error) {
	if op.Responses == nil {
		return nil, errors.New("contract: search operation has no responses")
	}
	ref := op.Responses.Status(http.StatusOK)
	if ref == nil || ref.Value == nil {
		return nil, errors.New("contract: search operation has no 200 response")
	}
	media := ref.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, errors.New("contract: search response has no JSON schema")
	}
	return media.Schema.Value, nil
}
