// Package vanilla renders the keyword research form and its results as plain
// server-side HTML.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	rendertemplate "github.com/goliatone/go-keywordform/pkg/render/template"
	gotemplate "github.com/goliatone/go-keywordform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-keywordform/pkg/view"
)

// Template names inside the bundle.
const (
	TemplatePage    = "templates/page.tmpl"
	TemplateResults = "templates/partials/results.tmpl"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	registerFilters()

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

// ContentType is the media type of rendered pages.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderPage renders the full page: form plus the current lifecycle view.
func (r *Renderer) RenderPage(_ context.Context, page Page) ([]byte, error) {
	return r.render(TemplatePage, map[string]any{"page": page})
}

// RenderView renders only the result area for v.
func (r *Renderer) RenderView(_ context.Context, v view.View) ([]byte, error) {
	return r.render(TemplateResults, map[string]any{"view": v})
}

func (r *Renderer) render(name string, data map[string]any) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	result, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
