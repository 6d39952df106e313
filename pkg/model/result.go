package model

// ResultData is the payload returned by a successful search.
type ResultData struct {
	TotalKeywords  int          `json:"total_keywords"`
	ProcessingTime float64      `json:"processing_time"`
	Deliverable    *Deliverable `json:"deliverable,omitempty"`
}

// AdGroups returns the delivered ad groups, or nil when the deliverable is absent.
func (r ResultData) AdGroups() []AdGroup {
	if r.Deliverable == nil {
		return nil
	}
	return r.Deliverable.AdGroups
}

// Deliverable is the structured output of a search. Only AdGroups is rendered;
// the remaining fields are carried through untouched.
type Deliverable struct {
	AdGroups          []AdGroup      `json:"ad_groups"`
	TotalBudget       float64        `json:"total_budget,omitempty"`
	TotalKeywordsUsed int            `json:"total_keywords_used,omitempty"`
	BudgetSummary     map[string]any `json:"budget_summary,omitempty"`
	ProcessingTime    float64        `json:"processing_time,omitempty"`
}

// AdGroup is a named cluster of keywords with a budget allocation.
type AdGroup struct {
	GroupName        string          `json:"group_name"`
	GroupType        string          `json:"group_type"`
	BudgetAllocation float64         `json:"budget_allocation"`
	BudgetPercentage float64         `json:"budget_percentage"`
	TotalKeywords    int             `json:"total_keywords"`
	Keywords         []KeywordResult `json:"keywords"`
	AvgCPCRange      string          `json:"avg_cpc_range,omitempty"`
}

// KeywordResult describes a single keyword inside an ad group.
type KeywordResult struct {
	Keyword             string   `json:"keyword"`
	SearchVolume        int      `json:"search_volume"`
	CompetitionLevel    string   `json:"competition_level"`
	CPCLow              float64  `json:"cpc_low"`
	CPCHigh             float64  `json:"cpc_high"`
	SuggestedMatchTypes []string `json:"suggested_match_types"`
}
