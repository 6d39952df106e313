// Package submission drives the submit → loading → success/error lifecycle of
// a keyword research request. At most one request is in flight per
// controller, so results are applied without request tagging.
package submission

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-keywordform/pkg/model"
)

// Transport performs the remote search.
type Transport interface {
	Search(ctx context.Context, form model.FormState) (model.ResultData, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, form model.FormState) (model.ResultData, error)

// Search calls fn.
func (fn TransportFunc) Search(ctx context.Context, form model.FormState) (model.ResultData, error) {
	return fn(ctx, form)
}

// Controller owns the lifecycle of one session's requests.
type Controller struct {
	mu        sync.Mutex
	state     Lifecycle
	transport Transport
	logger    zerolog.Logger
	observers []Observer
}

// New constructs a Controller in the Idle state.
func New(transport Transport, options ...Option) (*Controller, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}
	c := &Controller{
		state:     Idle{},
		transport: transport,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// State returns the current lifecycle.
func (c *Controller) State() Lifecycle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanSubmit reports whether the submit control is usable for form.
func (c *Controller) CanSubmit(form model.FormState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Phase() != PhaseLoading && strings.TrimSpace(form.Location) != ""
}

// Submit sends form to the transport. Submits during Loading, or without a
// location, are suppressed and leave the state untouched. A transport failure
// moves the lifecycle to Failed with FailureMessage and is returned wrapped in
// ErrSearchFailed so callers can report it to operators.
func (c *Controller) Submit(ctx context.Context, form model.FormState) error {
	c.mu.Lock()
	if c.state.Phase() == PhaseLoading {
		c.mu.Unlock()
		c.logger.Debug().Msg("submit suppressed: request in flight")
		return ErrInFlight
	}
	if strings.TrimSpace(form.Location) == "" {
		c.mu.Unlock()
		return ErrLocationRequired
	}
	c.state = Loading{}
	c.mu.Unlock()
	c.notify(Loading{})

	snapshot := form.Clone()
	started := time.Now()
	c.logger.Info().
		Str("brand_website", snapshot.BrandWebsite).
		Str("location", snapshot.Location).
		Int("seed_keywords", len(snapshot.SeedKeywords)).
		Msg("submitting keyword research")

	result, err := c.search(ctx, snapshot)
	elapsed := time.Since(started)

	var next Lifecycle
	if err != nil {
		c.logger.Error().
			Err(err).
			Dur("elapsed", elapsed).
			Msg("keyword research failed")
		next = Failed{Message: FailureMessage}
		err = fmt.Errorf("%w: %w", ErrSearchFailed, err)
	} else {
		c.logger.Info().
			Int("total_keywords", result.TotalKeywords).
			Int("ad_groups", len(result.AdGroups())).
			Dur("elapsed", elapsed).
			Msg("keyword research completed")
		next = Succeeded{Result: result}
	}

	c.mu.Lock()
	c.state = next
	c.mu.Unlock()
	c.notify(next)
	return err
}

// search calls the transport, turning a panic into an error so the lifecycle
// never stays in Loading.
func (c *Controller) search(ctx context.Context, form model.FormState) (result model.ResultData, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = model.ResultData{}
			err = fmt.Errorf("%w: %v", errTransportPanic, r)
		}
	}()
	return c.transport.Search(ctx, form)
}

func (c *Controller) notify(state Lifecycle) {
	for _, fn := range c.observers {
		fn(state)
	}
}
