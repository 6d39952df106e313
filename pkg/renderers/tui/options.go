package tui

import (
	"io"

	"github.com/goliatone/go-keywordform/pkg/view"
)

// Option configures the runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where rendered views are written.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		if out != nil {
			r.out = out
		}
	}
}

// WithViewOptions forwards options to the loading indicator projection.
func WithViewOptions(options ...view.Option) Option {
	return func(r *Runner) {
		r.viewOpts = append(r.viewOpts, options...)
	}
}

// WithRetryPrompt toggles the "try again" question after a failure. It is on
// by default; without it a failed search ends the run.
func WithRetryPrompt(enabled bool) Option {
	return func(r *Runner) {
		r.offerRetry = enabled
	}
}
