package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-keywordform/pkg/model"
)

// ErrUnknownField is returned by ParseField for names outside the form.
var ErrUnknownField = errors.New("form: unknown field")

// Field names as they appear in the request body and in HTML inputs.
const (
	FieldBrandWebsite      = "brand_website"
	FieldCompetitorWebsite = "competitor_website"
	FieldLocation          = "location"
	FieldSeedKeywords      = "seed_keywords"
	FieldMinSearchVolume   = "min_search_volume"
	FieldShoppingAdsBudget = "shopping_ads_budget"
	FieldSearchAdsBudget   = "search_ads_budget"
	FieldPMaxAdsBudget     = "pmax_ads_budget"
)

// FieldUpdate overwrites exactly one attribute of a FormState. The set of
// variants is closed; use the constructors below.
type FieldUpdate interface {
	Field() string
	apply(*model.FormState)
}

type brandWebsite string
type competitorWebsite string
type location string
type minSearchVolume model.Numeric
type shoppingAdsBudget model.Numeric
type searchAdsBudget model.Numeric
type pmaxAdsBudget model.Numeric

// BrandWebsite sets brand_website.
func BrandWebsite(v string) FieldUpdate { return brandWebsite(v) }

// CompetitorWebsite sets competitor_website.
func CompetitorWebsite(v string) FieldUpdate { return competitorWebsite(v) }

// Location sets location.
func Location(v string) FieldUpdate { return location(v) }

// MinSearchVolume sets min_search_volume.
func MinSearchVolume(v model.Numeric) FieldUpdate { return minSearchVolume(v) }

// ShoppingAdsBudget sets shopping_ads_budget.
func ShoppingAdsBudget(v model.Numeric) FieldUpdate { return shoppingAdsBudget(v) }

// SearchAdsBudget sets search_ads_budget.
func SearchAdsBudget(v model.Numeric) FieldUpdate { return searchAdsBudget(v) }

// PMaxAdsBudget sets pmax_ads_budget.
func PMaxAdsBudget(v model.Numeric) FieldUpdate { return pmaxAdsBudget(v) }

func (u brandWebsite) Field() string      { return FieldBrandWebsite }
func (u competitorWebsite) Field() string { return FieldCompetitorWebsite }
func (u location) Field() string          { return FieldLocation }
func (u minSearchVolume) Field() string   { return FieldMinSearchVolume }
func (u shoppingAdsBudget) Field() string { return FieldShoppingAdsBudget }
func (u searchAdsBudget) Field() string   { return FieldSearchAdsBudget }
func (u pmaxAdsBudget) Field() string     { return FieldPMaxAdsBudget }

func (u brandWebsite) apply(s *model.FormState)      { s.BrandWebsite = string(u) }
func (u competitorWebsite) apply(s *model.FormState) { s.CompetitorWebsite = string(u) }
func (u location) apply(s *model.FormState)          { s.Location = string(u) }
func (u minSearchVolume) apply(s *model.FormState)   { s.MinSearchVolume = model.Numeric(u) }
func (u shoppingAdsBudget) apply(s *model.FormState) { s.ShoppingAdsBudget = model.Numeric(u) }
func (u searchAdsBudget) apply(s *model.FormState)   { s.SearchAdsBudget = model.Numeric(u) }
func (u pmaxAdsBudget) apply(s *model.FormState)     { s.PMaxAdsBudget = model.Numeric(u) }

// ParseField maps an input name and its raw widget value onto a FieldUpdate.
// Numeric inputs are kept as text. seed_keywords is not a plain field and is
// rejected; it is edited through the tag editor.
func ParseField(name, raw string) (FieldUpdate, error) {
	switch strings.TrimSpace(name) {
	case FieldBrandWebsite:
		return BrandWebsite(raw), nil
	case FieldCompetitorWebsite:
		return CompetitorWebsite(raw), nil
	case FieldLocation:
		return Location(raw), nil
	case FieldMinSearchVolume:
		return MinSearchVolume(model.Text(raw)), nil
	case FieldShoppingAdsBudget:
		return ShoppingAdsBudget(model.Text(raw)), nil
	case FieldSearchAdsBudget:
		return SearchAdsBudget(model.Text(raw)), nil
	case FieldPMaxAdsBudget:
		return PMaxAdsBudget(model.Text(raw)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}
