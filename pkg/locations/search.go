package locations

import (
	"sort"
	"strings"
)

// Search limits.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// Option is one location picker entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search returns up to limit locations containing query, ignoring case.
// Prefix matches come first; ties keep catalog order. An empty query returns
// the head of the catalog.
func (c *Catalog) Search(query string, limit int) []string {
	limit = clampLimit(limit)
	if c.Len() == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if len(c.values) <= limit {
			return append([]string(nil), c.values...)
		}
		return append([]string(nil), c.values[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]match, 0, 16)
	for _, name := range c.values {
		lower := strings.ToLower(name)
		if !strings.Contains(lower, q) {
			continue
		}
		matches = append(matches, match{name: name, isPrefix: strings.HasPrefix(lower, q)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}

// SearchOptions wraps Search results as picker options.
func (c *Catalog) SearchOptions(query string, limit int) []Option {
	results := c.Search(query, limit)
	out := make([]Option, 0, len(results))
	for _, name := range results {
		out = append(out, Option{Value: name, Label: name})
	}
	return out
}

type match struct {
	name     string
	isPrefix bool
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}
