package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-keywordform/pkg/model"
	"github.com/goliatone/go-keywordform/pkg/submission"
)

// SessionCookie names the cookie that ties a browser to its session.
const SessionCookie = "keywordform_session"

// DefaultSessionTTL is how long an idle browser session is kept.
const DefaultSessionTTL = 30 * time.Minute

// browserSession is the state kept between requests of one browser. The
// controller is shared by every request carrying the cookie, so a submit that
// arrives while another is loading is suppressed instead of racing it.
type browserSession struct {
	id         string
	controller *submission.Controller

	mu       sync.Mutex
	form     model.FormState
	hasForm  bool
	lastSeen time.Time
}

// Form returns the form last rendered for this browser.
func (b *browserSession) Form() (model.FormState, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form.Clone(), b.hasForm
}

// Remember stores the form rendered for this browser.
func (b *browserSession) Remember(state model.FormState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form = state.Clone()
	b.hasForm = true
}

func (b *browserSession) touch(now time.Time) {
	b.mu.Lock()
	b.lastSeen = now
	b.mu.Unlock()
}

func (b *browserSession) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastSeen)
}

// sessionStore maps session cookies to browser sessions. Entries idle for
// longer than ttl are dropped, except while their search is still loading.
type sessionStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   map[string]*browserSession
	lastSweep time.Time
	build     func() (*submission.Controller, error)
	now       func() time.Time
}

func newSessionStore(ttl time.Duration, build func() (*submission.Controller, error)) *sessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionStore{
		ttl:     ttl,
		entries: make(map[string]*browserSession),
		build:   build,
		now:     time.Now,
	}
}

// Acquire returns the session named by the request cookie, creating one (and
// setting the cookie on w) when the cookie is missing, unknown or expired.
func (s *sessionStore) Acquire(w http.ResponseWriter, r *http.Request) (*browserSession, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)

	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if entry, ok := s.entries[cookie.Value]; ok {
			entry.touch(now)
			return entry, nil
		}
	}

	controller, err := s.build()
	if err != nil {
		return nil, err
	}
	entry := &browserSession{
		id:         uuid.NewString(),
		controller: controller,
		lastSeen:   now,
	}
	s.entries[entry.id] = entry
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    entry.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return entry, nil
}

// Len reports how many sessions are live.
func (s *sessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *sessionStore) sweepLocked(now time.Time) {
	interval := s.ttl / 4
	if interval > time.Minute {
		interval = time.Minute
	}
	if now.Sub(s.lastSweep) < interval {
		return
	}
	s.lastSweep = now
	for id, entry := range s.entries {
		if entry.idleSince(now) <= s.ttl {
			continue
		}
		if entry.controller.State().Phase() == submission.PhaseLoading {
			continue
		}
		delete(s.entries, id)
	}
}
