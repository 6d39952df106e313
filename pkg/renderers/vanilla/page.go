package vanilla

import (
	"strconv"

	"github.com/goliatone/go-keywordform/pkg/locations"
	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/submission"
	"github.com/goliatone/go-keywordform/pkg/view"
)

// Submit button labels.
const (
	SubmitLabel        = "Generate Keywords & Ad Groups"
	SubmitLabelLoading = "Analyzing..."
)

// Page is the data bound to the page template.
type Page struct {
	Title          string        `json:"title"`
	Action         string        `json:"action"`
	KeywordAction  string        `json:"keyword_action"`
	Fields         Fields        `json:"fields"`
	Tags           []Tag         `json:"tags"`
	Pending        string        `json:"pending"`
	Locations      []LocationOpt `json:"locations"`
	SubmitDisabled bool          `json:"submit_disabled"`
	SubmitLabel    string        `json:"submit_label"`
	View           view.View     `json:"view"`
}

// Fields holds the current value binding of every plain input.
type Fields struct {
	BrandWebsite      string `json:"brand_website"`
	CompetitorWebsite string `json:"competitor_website"`
	Location          string `json:"location"`
	MinSearchVolume   string `json:"min_search_volume"`
	ShoppingAdsBudget string `json:"shopping_ads_budget"`
	SearchAdsBudget   string `json:"search_ads_budget"`
	PMaxAdsBudget     string `json:"pmax_ads_budget"`
}

// Tag is one committed seed keyword with its removal index. The index is kept
// as text since template data goes through JSON and numbers would come back
// as floats.
type Tag struct {
	Index string `json:"index"`
	Text  string `json:"text"`
}

// LocationOpt is one entry of the location picker.
type LocationOpt struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// PageInput collects what a page needs from a session.
type PageInput struct {
	Form      model.FormState
	Pending   string
	CanSubmit bool
	View      view.View
	Catalog   *locations.Catalog
}

// NewPage binds a session's state to the page template.
func NewPage(in PageInput) Page {
	p := Page{
		Title:         "AI-Powered Keyword Search",
		Action:        "/",
		KeywordAction: "/keywords",
		Fields: Fields{
			BrandWebsite:      in.Form.BrandWebsite,
			CompetitorWebsite: in.Form.CompetitorWebsite,
			Location:          in.Form.Location,
			MinSearchVolume:   in.Form.MinSearchVolume.String(),
			ShoppingAdsBudget: in.Form.ShoppingAdsBudget.String(),
			SearchAdsBudget:   in.Form.SearchAdsBudget.String(),
			PMaxAdsBudget:     in.Form.PMaxAdsBudget.String(),
		},
		Pending:     in.Pending,
		SubmitLabel: SubmitLabel,
		View:        in.View,
	}

	for i, kw := range in.Form.SeedKeywords {
		p.Tags = append(p.Tags, Tag{Index: strconv.Itoa(i), Text: kw})
	}
	for _, name := range in.Catalog.Values() {
		p.Locations = append(p.Locations, LocationOpt{Value: name, Selected: name == in.Form.Location})
	}

	loading := in.View.Phase == submission.PhaseLoading
	p.SubmitDisabled = loading || !in.CanSubmit
	if loading {
		p.SubmitLabel = SubmitLabelLoading
	}
	return p
}
