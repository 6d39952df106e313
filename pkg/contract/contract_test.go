package contract

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/testsupport"
)

func mustValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	return v
}

func TestValidateRequest(t *testing.T) {
	v := mustValidator(t)

	typed := testsupport.SampleForm()
	typed.MinSearchVolume = model.Text("750")

	for name, form := range map[string]model.FormState{
		"defaults":      testsupport.SampleForm(),
		"typed numeric": typed,
	} {
		t.Run(name, func(t *testing.T) {
			body, err := json.Marshal(form)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if err := v.ValidateRequest(body); err != nil {
				t.Fatalf("validate: %v", err)
			}
		})
	}
}

func TestValidateRequest_Rejects(t *testing.T) {
	v := mustValidator(t)

	tests := map[string]string{
		"missing location":      `{"brand_website":"","competitor_website":"","seed_keywords":[],"min_search_volume":500,"shopping_ads_budget":0,"search_ads_budget":2000,"pmax_ads_budget":0}`,
		"keywords not an array": `{"brand_website":"","competitor_website":"","location":"x","seed_keywords":"a","min_search_volume":500,"shopping_ads_budget":0,"search_ads_budget":2000,"pmax_ads_budget":0}`,
		"numeric as bool":       `{"brand_website":"","competitor_website":"","location":"x","seed_keywords":[],"min_search_volume":true,"shopping_ads_budget":0,"search_ads_budget":2000,"pmax_ads_budget":0}`,
		"not json":              `{`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if err := v.ValidateRequest([]byte(body)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestValidateResponse(t *testing.T) {
	v := mustValidator(t)

	body, err := json.Marshal(testsupport.SampleResult())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := v.ValidateResponse(body); err != nil {
		t.Fatalf("validate sample: %v", err)
	}

	if err := v.ValidateResponse([]byte(`{"total_keywords":0,"processing_time":1.2,"deliverable":null}`)); err != nil {
		t.Fatalf("validate null deliverable: %v", err)
	}
	if err := v.ValidateResponse([]byte(`{"total_keywords":0,"processing_time":1.2}`)); err != nil {
		t.Fatalf("validate absent deliverable: %v", err)
	}
}

func TestValidateResponse_Rejects(t *testing.T) {
	v := mustValidator(t)

	tests := map[string]string{
		"missing total":      `{"processing_time":1.2}`,
		"total as string":    `{"total_keywords":"12","processing_time":1.2}`,
		"ad groups missing":  `{"total_keywords":1,"processing_time":1.2,"deliverable":{}}`,
		"keyword incomplete": `{"total_keywords":1,"processing_time":1.2,"deliverable":{"ad_groups":[{"group_name":"g","group_type":"search","budget_allocation":1,"budget_percentage":1,"total_keywords":1,"keywords":[{"keyword":"k"}]}]}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if err := v.ValidateResponse([]byte(body)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
	doc := []byte("openapi: 3.0.3\ninfo:\n  title: x\n  version: '1'\npaths: {}\n")
	if _, err := Load(context.Background(), doc); err == nil {
		t.Fatalf("expected error for document without the search operation")
	}
}

func TestDocument_ReturnsCopy(t *testing.T) {
	a := Document()
	a[0] = 'X'
	if Document()[0] == 'X' {
		t.Fatalf("Document exposed the embedded bytes")
	}
}
