// Package form holds the mutable form record of a session. Every mutation
// replaces the record wholesale so snapshots taken earlier never change.
package form

import (
	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/tags"
)

// Store owns one FormState.
type Store struct {
	state model.FormState
}

// NewStore seeds a store with the session-start defaults.
func NewStore() *Store {
	return &Store{state: model.NewFormState()}
}

// NewStoreFrom seeds a store with an existing record, e.g. one loaded from a
// form file.
func NewStoreFrom(state model.FormState) *Store {
	return &Store{state: state.Clone()}
}

// Apply overwrites the attribute named by update.
func (s *Store) Apply(update FieldUpdate) {
	if update == nil {
		return
	}
	next := s.state.Clone()
	update.apply(&next)
	s.state = next
}

// AddSeedKeyword commits a candidate tag.
func (s *Store) AddSeedKeyword(candidate string) bool {
	list, changed := tags.Add(s.state.SeedKeywords, candidate)
	if !changed {
		return false
	}
	next := s.state
	next.SeedKeywords = list
	s.state = next
	return true
}

// RemoveSeedKeywordAt removes the tag at index.
func (s *Store) RemoveSeedKeywordAt(index int) bool {
	list, changed := tags.RemoveAt(s.state.SeedKeywords, index)
	if !changed {
		return false
	}
	next := s.state
	next.SeedKeywords = list
	s.state = next
	return true
}

// Snapshot returns an independent copy of the record.
func (s *Store) Snapshot() model.FormState {
	return s.state.Clone()
}

var _ tags.Target = (*Store)(nil)
