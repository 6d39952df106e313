// Package view projects a submission lifecycle onto a display tree. The
// projection is pure: the same lifecycle and options always yield the same
// tree, and nothing here holds state between calls. Every node carries a
// stable class hook so presentation layers can style it without depending on
// the tree's shape.
package view

import (
	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/submission"
)

// Structural class hooks.
const (
	ClassLoading      = "loading-state"
	ClassError        = "error-message"
	ClassResults      = "results-container"
	ClassSummary      = "results-summary"
	ClassStat         = "stat"
	ClassAdGroups     = "ad-groups-container"
	ClassAdGroupCard  = "ad-group-card"
	ClassKeywordsList = "keywords-list"
	ClassKeywordItem  = "keyword-item"
)

// Stat labels, in display order.
const (
	LabelTotalKeywords  = "Total Keywords"
	LabelProcessingTime = "Processing Time"
	LabelAdGroups       = "Ad Groups"
)

// View is the display tree for one lifecycle state. At most one of Progress,
// Error and Results is set.
type View struct {
	Phase    submission.Phase `json:"phase"`
	Progress *Progress        `json:"progress,omitempty"`
	Error    *Notice          `json:"error,omitempty"`
	Results  *Results         `json:"results,omitempty"`
}

// Progress is the loading indicator.
type Progress struct {
	Class string   `json:"class"`
	Lines []string `json:"lines"`
}

// Notice is the user-facing failure message.
type Notice struct {
	Class   string `json:"class"`
	Message string `json:"message"`
}

// Results is the success rendering. AdGroups is nil when the result carried
// no deliverable.
type Results struct {
	Class    string          `json:"class"`
	Summary  Summary         `json:"summary"`
	AdGroups *AdGroupSection `json:"ad_groups,omitempty"`
}

// Summary holds the headline stats.
type Summary struct {
	Class string `json:"class"`
	Title string `json:"title"`
	Stats []Stat `json:"stats"`
}

// Stat is one headline number.
type Stat struct {
	Class string `json:"class"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// AdGroupSection lists the recommended ad groups in delivered order.
type AdGroupSection struct {
	Class  string      `json:"class"`
	Title  string      `json:"title"`
	Groups []GroupCard `json:"groups"`
}

// GroupCard renders one ad group.
type GroupCard struct {
	Class        string       `json:"class"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Budget       string       `json:"budget"`
	Percentage   string       `json:"percentage"`
	KeywordCount string       `json:"keyword_count"`
	ListClass    string       `json:"list_class"`
	Keywords     []KeywordRow `json:"keywords"`
}

// KeywordRow renders one keyword.
type KeywordRow struct {
	Class        string `json:"class"`
	Text         string `json:"text"`
	SearchVolume string `json:"search_volume"`
	Competition  string `json:"competition"`
	CPCRange     string `json:"cpc_range"`
	MatchTypes   string `json:"match_types"`
}

// Project builds the display tree for state.
func Project(state submission.Lifecycle, options ...Option) View {
	cfg := newConfig(options...)
	if state == nil {
		state = submission.Idle{}
	}

	v := View{Phase: state.Phase()}
	switch s := state.(type) {
	case submission.Loading:
		v.Progress = &Progress{
			Class: ClassLoading,
			Lines: append([]string(nil), cfg.progressLines...),
		}
	case submission.Failed:
		v.Error = &Notice{Class: ClassError, Message: s.Message}
	case submission.Succeeded:
		results := projectResults(s.Result, cfg)
		v.Results = &results
	}
	return v
}

func projectResults(result model.ResultData, cfg config) Results {
	out := Results{
		Class: ClassResults,
		Summary: Summary{
			Class: ClassSummary,
			Title: "Research Summary",
			Stats: []Stat{
				{Class: ClassStat, Value: formatCount(result.TotalKeywords), Label: LabelTotalKeywords},
				{Class: ClassStat, Value: formatSeconds(result.ProcessingTime), Label: LabelProcessingTime},
				{Class: ClassStat, Value: formatCount(len(result.AdGroups())), Label: LabelAdGroups},
			},
		},
	}

	if result.Deliverable == nil {
		return out
	}

	section := &AdGroupSection{
		Class:  ClassAdGroups,
		Title:  "Recommended Ad Groups",
		Groups: make([]GroupCard, 0, len(result.Deliverable.AdGroups)),
	}
	for _, group := range result.Deliverable.AdGroups {
		section.Groups = append(section.Groups, projectGroup(group, cfg))
	}
	out.AdGroups = section
	return out
}

func projectGroup(group model.AdGroup, cfg config) GroupCard {
	card := GroupCard{
		Class:        ClassAdGroupCard,
		Name:         group.GroupName,
		Type:         group.GroupType,
		Budget:       cfg.formatCurrency(group.BudgetAllocation),
		Percentage:   formatPercent(group.BudgetPercentage),
		KeywordCount: formatCount(group.TotalKeywords),
		ListClass:    ClassKeywordsList,
		Keywords:     make([]KeywordRow, 0, len(group.Keywords)),
	}
	for _, kw := range group.Keywords {
		card.Keywords = append(card.Keywords, KeywordRow{
			Class:        ClassKeywordItem,
			Text:         kw.Keyword,
			SearchVolume: cfg.formatGrouped(kw.SearchVolume),
			Competition:  kw.CompetitionLevel,
			CPCRange:     cfg.formatCurrency(kw.CPCLow) + " - " + cfg.formatCurrency(kw.CPCHigh),
			MatchTypes:   joinMatchTypes(kw.SuggestedMatchTypes),
		})
	}
	return card
}
