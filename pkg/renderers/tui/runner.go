// Package tui runs a keyword research session in the terminal. Prompts go
// through a PromptDriver (survey by default) so the flow can be scripted in
// tests.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-keywordform/pkg/form"
	"github.com/goliatone/go-keywordform/pkg/locations"
	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/renderers/text"
	"github.com/goliatone/go-keywordform/pkg/session"
	"github.com/goliatone/go-keywordform/pkg/submission"
	"github.com/goliatone/go-keywordform/pkg/tags"
	"github.com/goliatone/go-keywordform/pkg/view"
)

// Runner walks a user through the form, submits it and prints the outcome.
type Runner struct {
	driver     PromptDriver
	catalog    *locations.Catalog
	out        io.Writer
	viewOpts   []view.Option
	offerRetry bool
}

// New constructs a runner with the survey driver writing to stdout.
func New(catalog *locations.Catalog, options ...Option) (*Runner, error) {
	if catalog.Len() == 0 {
		return nil, ErrNoLocations
	}
	r := &Runner{
		catalog:    catalog,
		out:        os.Stdout,
		offerRetry: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Observe prints the loading indicator. Register it on the controller with
// submission.WithObserver.
func (r *Runner) Observe(state submission.Lifecycle) {
	if state.Phase() != submission.PhaseLoading {
		return
	}
	_ = text.Render(r.out, view.Project(state, r.viewOpts...))
}

// Run collects the form, submits it and writes the rendered result.
func (r *Runner) Run(ctx context.Context, sess *session.Session) error {
	if err := r.Collect(ctx, sess); err != nil {
		return err
	}
	return r.Submit(ctx, sess)
}

// Collect prompts for every field, starting from the session's current values.
func (r *Runner) Collect(ctx context.Context, sess *session.Session) error {
	if err := r.promptKeywords(ctx, sess); err != nil {
		return err
	}
	current := sess.Form()

	brand, err := r.driver.Input(ctx, InputConfig{
		Message:   "Website URL:",
		Default:   current.BrandWebsite,
		Help:      "https://....",
		Validator: required,
	})
	if err != nil {
		return err
	}
	sess.Set(form.BrandWebsite(strings.TrimSpace(brand)))

	competitor, err := r.driver.Input(ctx, InputConfig{
		Message: "Competitor URL (optional):",
		Default: current.CompetitorWebsite,
	})
	if err != nil {
		return err
	}
	sess.Set(form.CompetitorWebsite(strings.TrimSpace(competitor)))

	if err := r.promptLocation(ctx, sess, current.Location); err != nil {
		return err
	}

	numbers := []struct {
		message string
		help    string
		current model.Numeric
		update  func(model.Numeric) form.FieldUpdate
	}{
		{"Minimum Monthly Searches for the Resulting Keywords:", "Only show keywords with at least this many monthly searches", current.MinSearchVolume, form.MinSearchVolume},
		{"Search Ads Budget ($):", "", current.SearchAdsBudget, form.SearchAdsBudget},
		{"PMax Ads Budget ($):", "", current.PMaxAdsBudget, form.PMaxAdsBudget},
		{"Shopping Ads Budget ($):", "", current.ShoppingAdsBudget, form.ShoppingAdsBudget},
	}
	for _, field := range numbers {
		def := field.current.String()
		resp, err := r.driver.Input(ctx, InputConfig{
			Message:   field.message,
			Default:   def,
			Help:      field.help,
			Validator: required,
		})
		if err != nil {
			return err
		}
		// An untouched default keeps its original type.
		if resp == def {
			continue
		}
		sess.Set(field.update(model.Text(resp)))
	}
	return nil
}

// Submit sends the form and prints the outcome, offering a retry after a
// failure.
func (r *Runner) Submit(ctx context.Context, sess *session.Session) error {
	for {
		err := sess.Submit(ctx)
		if renderErr := text.Render(r.out, sess.View()); renderErr != nil {
			return renderErr
		}
		if err == nil {
			return nil
		}
		if !errors.Is(err, submission.ErrSearchFailed) || !r.offerRetry {
			return err
		}
		again, promptErr := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Try again?",
			Default: true,
		})
		if promptErr != nil {
			return promptErr
		}
		if !again {
			return err
		}
	}
}

func (r *Runner) promptKeywords(ctx context.Context, sess *session.Session) error {
	editor := sess.Keywords()
	for {
		if list := sess.Form().SeedKeywords; len(list) > 0 {
			if err := r.info(ctx, "Keywords: "+formatTags(list)); err != nil {
				return err
			}
		}
		resp, err := r.driver.Input(ctx, InputConfig{
			Message: "Keywords (Optional):",
			Help:    "Type a keyword and press Enter. Leave blank to continue, -N removes keyword N.",
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(resp) == "" {
			editor.SetPending(resp)
			editor.HandleKey(tags.KeyEnter)
			return nil
		}
		if idx, ok := removalIndex(resp); ok {
			if !editor.Remove(idx) {
				if err := r.info(ctx, fmt.Sprintf("No keyword at position %d", idx+1)); err != nil {
					return err
				}
			}
			continue
		}
		editor.SetPending(resp)
		editor.HandleKey(tags.KeyEnter)
	}
}

func (r *Runner) promptLocation(ctx context.Context, sess *session.Session, current string) error {
	options := r.catalog.Values()
	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      "Service Location:",
			Options:      options,
			DefaultIndex: r.catalog.IndexOf(current),
			Help:         "Select a city/region/country",
			PageSize:     12,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			if err := r.info(ctx, "Select a city/region/country"); err != nil {
				return err
			}
			continue
		}
		sess.Set(form.Location(options[idx]))
		return nil
	}
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

// removalIndex parses "-N" into the zero-based index N-1.
func removalIndex(resp string) (int, bool) {
	trimmed := strings.TrimSpace(resp)
	if !strings.HasPrefix(trimmed, "-") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(trimmed, "-"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func formatTags(list []string) string {
	parts := make([]string, len(list))
	for i, kw := range list {
		parts[i] = fmt.Sprintf("[%d] %s", i+1, kw)
	}
	return strings.Join(parts, "  ")
}
