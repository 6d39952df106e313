// Package session wires the form store, the seed keyword editor and the
// submission controller for a single user.
package session

import (
	"context"

	"github.com/goliatone/go-keywordform/pkg/form"
	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/submission"
	"github.com/goliatone/go-keywordform/pkg/tags"
	"github.com/goliatone/go-keywordform/pkg/view"
)

// Session is one user's form and its request lifecycle.
type Session struct {
	store      *form.Store
	keywords   *tags.Editor
	controller *submission.Controller
	viewOpts   []view.Option
}

// Option configures a Session.
type Option func(*Session)

// WithInitialForm replaces the default form, e.g. with one loaded from a file.
func WithInitialForm(state model.FormState) Option {
	return func(s *Session) {
		s.store = form.NewStoreFrom(state)
	}
}

// WithViewOptions forwards options to every projection.
func WithViewOptions(options ...view.Option) Option {
	return func(s *Session) {
		s.viewOpts = append(s.viewOpts, options...)
	}
}

// New builds a session around a controller.
func New(controller *submission.Controller, options ...Option) *Session {
	s := &Session{
		store:      form.NewStore(),
		controller: controller,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.keywords = tags.NewEditor(s.store)
	return s
}

// Set applies a field update.
func (s *Session) Set(update form.FieldUpdate) {
	s.store.Apply(update)
}

// SetField parses and applies a named field.
func (s *Session) SetField(name, raw string) error {
	update, err := form.ParseField(name, raw)
	if err != nil {
		return err
	}
	s.store.Apply(update)
	return nil
}

// Keywords returns the seed keyword editor.
func (s *Session) Keywords() *tags.Editor {
	return s.keywords
}

// Form returns a snapshot of the form for input bindings.
func (s *Session) Form() model.FormState {
	return s.store.Snapshot()
}

// CanSubmit reports whether the submit control is usable.
func (s *Session) CanSubmit() bool {
	return s.controller.CanSubmit(s.store.Snapshot())
}

// Submit sends the current form.
func (s *Session) Submit(ctx context.Context) error {
	return s.controller.Submit(ctx, s.store.Snapshot())
}

// State returns the current lifecycle.
func (s *Session) State() submission.Lifecycle {
	return s.controller.State()
}

// View projects the current lifecycle.
func (s *Session) View() view.View {
	return view.Project(s.controller.State(), s.viewOpts...)
}
