package submission

import "github.com/rs/zerolog"

// Observer is notified after every lifecycle transition.
type Observer func(Lifecycle)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the operational log channel. Transport failures are logged
// here with full detail.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithObserver registers a transition observer.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}
