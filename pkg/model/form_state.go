package model

// Default values applied to a fresh form.
const (
	DefaultMinSearchVolume   = 500
	DefaultShoppingAdsBudget = 0
	DefaultSearchAdsBudget   = 2000
	DefaultPMaxAdsBudget     = 0
)

// FormState is the single record submitted to the keyword research service.
// Field names and ordering match the service's request body.
type FormState struct {
	BrandWebsite      string   `json:"brand_website" yaml:"brand_website"`
	CompetitorWebsite string   `json:"competitor_website" yaml:"competitor_website"`
	Location          string   `json:"location" yaml:"location"`
	SeedKeywords      []string `json:"seed_keywords" yaml:"seed_keywords"`
	MinSearchVolume   Numeric  `json:"min_search_volume" yaml:"min_search_volume"`
	ShoppingAdsBudget Numeric  `json:"shopping_ads_budget" yaml:"shopping_ads_budget"`
	SearchAdsBudget   Numeric  `json:"search_ads_budget" yaml:"search_ads_budget"`
	PMaxAdsBudget     Numeric  `json:"pmax_ads_budget" yaml:"pmax_ads_budget"`
}

// NewFormState returns a form populated with the session-start defaults.
func NewFormState() FormState {
	return FormState{
		SeedKeywords:      []string{},
		MinSearchVolume:   Number(DefaultMinSearchVolume),
		ShoppingAdsBudget: Number(DefaultShoppingAdsBudget),
		SearchAdsBudget:   Number(DefaultSearchAdsBudget),
		PMaxAdsBudget:     Number(DefaultPMaxAdsBudget),
	}
}

// Clone returns a copy that shares no mutable state with the receiver. The
// seed keyword list is always non-nil so it serialises as [].
func (f FormState) Clone() FormState {
	out := f
	out.SeedKeywords = make([]string, len(f.SeedKeywords))
	copy(out.SeedKeywords, f.SeedKeywords)
	return out
}
