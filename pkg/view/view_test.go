package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/submission"
	"github.com/goliatone/go-keywordform/pkg/testsupport"
)

func TestProject_Idle(t *testing.T) {
	for _, state := range []submission.Lifecycle{nil, submission.Idle{}} {
		v := Project(state)
		if diff := cmp.Diff(View{Phase: submission.PhaseIdle}, v); diff != "" {
			t.Fatalf("idle view mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestProject_LoadingShowsOnlyProgress(t *testing.T) {
	v := Project(submission.Loading{})
	want := View{
		Phase: submission.PhaseLoading,
		Progress: &Progress{
			Class: ClassLoading,
			Lines: []string{
				"AI is analyzing keywords and creating ad groups...",
				"This may take 20-30 seconds",
			},
		},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("loading view mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_FailedShowsOnlyMessage(t *testing.T) {
	v := Project(submission.Failed{Message: submission.FailureMessage})
	want := View{
		Phase: submission.PhaseError,
		Error: &Notice{Class: ClassError, Message: submission.FailureMessage},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("failed view mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_SummaryStats(t *testing.T) {
	v := Project(submission.Succeeded{Result: testsupport.SampleResult()})
	if v.Results == nil {
		t.Fatalf("expected results")
	}
	want := []Stat{
		{Class: ClassStat, Value: "120", Label: LabelTotalKeywords},
		{Class: ClassStat, Value: "24.3s", Label: LabelProcessingTime},
		{Class: ClassStat, Value: "4", Label: LabelAdGroups},
	}
	if diff := cmp.Diff(want, v.Results.Summary.Stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
	if v.Progress != nil || v.Error != nil {
		t.Fatalf("success view must not carry progress or error")
	}
}

func TestProject_NoDeliverable(t *testing.T) {
	v := Project(submission.Succeeded{Result: model.ResultData{TotalKeywords: 5, ProcessingTime: 2}})
	if v.Results.AdGroups != nil {
		t.Fatalf("ad group section rendered without a deliverable")
	}
	if got := v.Results.Summary.Stats[2].Value; got != "0" {
		t.Fatalf("ad group count = %q, want 0", got)
	}
	if got := v.Results.Summary.Stats[1].Value; got != "2.0s" {
		t.Fatalf("processing time = %q, want 2.0s", got)
	}
}

func TestProject_AdGroupsInDeliveredOrder(t *testing.T) {
	v := Project(submission.Succeeded{Result: testsupport.SampleResult()})
	section := v.Results.AdGroups
	if section == nil {
		t.Fatalf("expected ad group section")
	}

	var names []string
	for _, g := range section.Groups {
		names = append(names, g.Name)
	}
	want := []string{"Emergency Plumbing", "Local Services", "Brand", "Shopping"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}

	first := section.Groups[0]
	wantFirst := GroupCard{
		Class:        ClassAdGroupCard,
		Name:         "Emergency Plumbing",
		Type:         "search",
		Budget:       "$1,200.00",
		Percentage:   "60%",
		KeywordCount: "2",
		ListClass:    ClassKeywordsList,
		Keywords: []KeywordRow{
			{
				Class:        ClassKeywordItem,
				Text:         "emergency plumber",
				SearchVolume: "12,000",
				Competition:  "HIGH",
				CPCRange:     "$4.50 - $12.25",
				MatchTypes:   "exact, phrase",
			},
			{
				Class:        ClassKeywordItem,
				Text:         "24 hour plumber",
				SearchVolume: "880",
				Competition:  "MEDIUM",
				CPCRange:     "$3.00 - $9.80",
				MatchTypes:   "phrase",
			},
		},
	}
	if diff := cmp.Diff(wantFirst, first); diff != "" {
		t.Fatalf("first card mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_EmptyKeywordGroup(t *testing.T) {
	v := Project(submission.Succeeded{Result: testsupport.SampleResult()})
	brand := v.Results.AdGroups.Groups[2]
	if brand.Name != "Brand" || brand.KeywordCount != "0" {
		t.Fatalf("unexpected card header: %+v", brand)
	}
	if len(brand.Keywords) != 0 {
		t.Fatalf("expected no keyword rows, got %d", len(brand.Keywords))
	}
}

func TestProject_KeywordTextIsLiteral(t *testing.T) {
	result := model.ResultData{
		Deliverable: &model.Deliverable{AdGroups: []model.AdGroup{{
			GroupName: "<b>x</b>",
			Keywords:  []model.KeywordResult{{Keyword: `<script>alert(1)</script>`}},
		}}},
	}
	v := Project(submission.Succeeded{Result: result})
	card := v.Results.AdGroups.Groups[0]
	if card.Name != "<b>x</b>" || card.Keywords[0].Text != `<script>alert(1)</script>` {
		t.Fatalf("projection altered remote text: %+v", card)
	}
}

func TestProject_Locale(t *testing.T) {
	result := model.ResultData{
		Deliverable: &model.Deliverable{AdGroups: []model.AdGroup{{
			Keywords: []model.KeywordResult{{Keyword: "k", SearchVolume: 1234567}},
		}}},
	}
	v := Project(submission.Succeeded{Result: result}, WithLocale(language.German), WithCurrencySymbol("€"))
	row := v.Results.AdGroups.Groups[0].Keywords[0]
	if row.SearchVolume != "1.234.567" {
		t.Fatalf("search volume = %q, want 1.234.567", row.SearchVolume)
	}
	if row.CPCRange != "€0,00 - €0,00" {
		t.Fatalf("cpc range = %q", row.CPCRange)
	}
}

func TestProject_IsPure(t *testing.T) {
	state := submission.Succeeded{Result: testsupport.SampleResult()}
	if diff := cmp.Diff(Project(state), Project(state)); diff != "" {
		t.Fatalf("projection not deterministic (-first +second):\n%s", diff)
	}
}

func TestProject_ProgressLinesOption(t *testing.T) {
	v := Project(submission.Loading{}, WithProgressLines("Working..."))
	if diff := cmp.Diff([]string{"Working..."}, v.Progress.Lines); diff != "" {
		t.Fatalf("progress lines mismatch (-want +got):\n%s", diff)
	}
}
