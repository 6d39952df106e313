package vanilla

import (
	"html"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

// FilterClean is the template filter applied to text received from the
// keyword research service.
const FilterClean = "clean"

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
	filterOnce     sync.Once
)

// sanitizeText renders remote-provided text literally. Markup-shaped text is
// escaped before the strict policy runs, so "Tools <Pro>" survives as text
// and the policy only sees plain text nodes. The result is HTML-escaped.
func sanitizeText(raw string) string {
	return strings.TrimSpace(textSanitizer().Sanitize(html.EscapeString(raw)))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func registerFilters() {
	filterOnce.Do(func() {
		if pongo2.FilterExists(FilterClean) {
			return
		}
		_ = pongo2.RegisterFilter(FilterClean, filterClean)
	})
}

func filterClean(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in == nil || in.IsNil() {
		return pongo2.AsSafeValue(""), nil
	}
	return pongo2.AsSafeValue(sanitizeText(in.String())), nil
}
