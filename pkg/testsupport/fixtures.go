// Package testsupport holds fixtures and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-keywordform/pkg/model"
)

// SampleResult is a four ad-group response: 120 keywords, 24.3 seconds, and a
// final group without keywords.
func SampleResult() model.ResultData {
	return model.ResultData{
		TotalKeywords:  120,
		ProcessingTime: 24.3,
		Deliverable: &model.Deliverable{
			TotalBudget:       2000,
			TotalKeywordsUsed: 3,
			AdGroups: []model.AdGroup{
				{
					GroupName:        "Emergency Plumbing",
					GroupType:        "search",
					BudgetAllocation: 1200,
					BudgetPercentage: 60,
					TotalKeywords:    2,
					Keywords: []model.KeywordResult{
						{
							Keyword:             "emergency plumber",
							SearchVolume:        12000,
							CompetitionLevel:    "HIGH",
							CPCLow:              4.5,
							CPCHigh:             12.25,
							SuggestedMatchTypes: []string{"exact", "phrase"},
						},
						{
							Keyword:             "24 hour plumber",
							SearchVolume:        880,
							CompetitionLevel:    "MEDIUM",
							CPCLow:              3,
							CPCHigh:             9.8,
							SuggestedMatchTypes: []string{"phrase"},
						},
					},
				},
				{
					GroupName:        "Local Services",
					GroupType:        "search",
					BudgetAllocation: 500,
					BudgetPercentage: 25,
					TotalKeywords:    1,
					Keywords: []model.KeywordResult{
						{
							Keyword:             "plumber near me",
							SearchVolume:        90500,
							CompetitionLevel:    "HIGH",
							CPCLow:              6,
							CPCHigh:             18,
							SuggestedMatchTypes: []string{"exact"},
						},
					},
				},
				{
					GroupName:        "Brand",
					GroupType:        "pmax",
					BudgetAllocation: 300,
					BudgetPercentage: 15,
					TotalKeywords:    0,
					Keywords:         []model.KeywordResult{},
				},
				{
					GroupName:        "Shopping",
					GroupType:        "shopping",
					BudgetAllocation: 0,
					BudgetPercentage: 0,
					TotalKeywords:    0,
					Keywords:         []model.KeywordResult{},
				},
			},
		},
	}
}

// SampleForm is the form used by round-trip tests: two seed keywords, a
// location and every other field at its default.
func SampleForm() model.FormState {
	form := model.NewFormState()
	form.Location = "Austin, TX"
	form.SeedKeywords = []string{"plumber near me", "emergency plumber"}
	return form
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got with the golden file at path, rewriting it first
// when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, got []byte) {
	t.Helper()
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGolden(t, path)
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", path, diff)
	}
}

// DecodeJSON unmarshals a request or response body into a generic map so
// tests can compare wire shapes independent of Go types.
func DecodeJSON(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, errors.New("testsupport: empty payload")
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: decode json: %w", err)
	}
	return out, nil
}
