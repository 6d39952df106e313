package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/goliatone/go-keywordform/internal/config"
	"github.com/goliatone/go-keywordform/internal/logging"
	"github.com/goliatone/go-keywordform/pkg/contract"
	"github.com/goliatone/go-keywordform/pkg/form"
	"github.com/goliatone/go-keywordform/pkg/locations"
	"github.com/goliatone/go-keywordform/pkg/renderers/text"
	"github.com/goliatone/go-keywordform/pkg/renderers/tui"
	"github.com/goliatone/go-keywordform/pkg/renderers/vanilla"
	"github.com/goliatone/go-keywordform/pkg/session"
	"github.com/goliatone/go-keywordform/pkg/submission"
	"github.com/goliatone/go-keywordform/pkg/transport"
	"github.com/goliatone/go-keywordform/pkg/view"
)

func main() {
	configPath := flag.String("config", "", "config file (optional)")
	formPath := flag.String("form", "", "YAML form file; submitted directly unless -interactive is set")
	interactive := flag.Bool("interactive", false, "prompt for every field, using -form values as defaults")
	format := flag.String("format", "text", "output format for -form runs: text, json or html")
	output := flag.String("output", "", "output file (stdout if empty)")
	health := flag.Bool("health", false, "check the keyword research service and exit")
	retry := flag.Bool("retry", true, "offer to retry after a failed search in interactive mode")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := logging.New(cfg.Logger)

	exit := func(code int) {
		stop()
		os.Exit(code)
	}

	client, err := newTransport(ctx, cfg, logger)
	if err != nil {
		exit(exitCode(logger, fmt.Errorf("configure transport: %w", err)))
	}

	if *health {
		h, err := client.Health(ctx)
		if err != nil {
			exit(exitCode(logger, fmt.Errorf("keyword service unavailable: %w", err)))
		}
		fmt.Printf("%s: %s\n", h.Status, h.Message)
		return
	}

	viewOpts, err := viewOptions(cfg)
	if err != nil {
		exit(exitCode(logger, fmt.Errorf("invalid locale: %w", err)))
	}

	if *formPath != "" && !*interactive {
		err := runFile(ctx, *formPath, *format, *output, client, logger, viewOpts)
		exit(exitCode(logger, err))
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		exit(exitCode(logger, fmt.Errorf("load locations: %w", err)))
	}
	sessOpts := []session.Option{session.WithViewOptions(viewOpts...)}
	if *formPath != "" {
		state, err := form.LoadFile(*formPath)
		if err != nil {
			exit(exitCode(logger, err))
		}
		sessOpts = append(sessOpts, session.WithInitialForm(state))
	}
	runnerOpts := []tui.Option{tui.WithViewOptions(viewOpts...), tui.WithRetryPrompt(*retry)}
	err = runInteractive(ctx, catalog, client, logger, runnerOpts, sessOpts)
	exit(exitCode(logger, err))
}

// exitCode maps a run error to the process exit status. Search failures are
// already logged by the submission controller and shown to the user as the
// generic failure message, so their detail is not repeated.
func exitCode(logger zerolog.Logger, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, tui.ErrAborted):
		return 130
	case errors.Is(err, submission.ErrSearchFailed):
		return 1
	default:
		logger.Error().Err(err).Msg("keywordform failed")
		return 1
	}
}

func runFile(ctx context.Context, path, format, output string, client submission.Transport, logger zerolog.Logger, viewOpts []view.Option) error {
	state, err := form.LoadFile(path)
	if err != nil {
		return err
	}
	controller, err := submission.New(client, submission.WithLogger(logging.Component(logger, "submission")))
	if err != nil {
		return err
	}
	sess := session.New(controller,
		session.WithInitialForm(state),
		session.WithViewOptions(viewOpts...),
	)

	submitErr := sess.Submit(ctx)
	if errors.Is(submitErr, submission.ErrLocationRequired) {
		return fmt.Errorf("%s: location is required", path)
	}

	var out io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	if err := writeView(ctx, out, format, sess.View()); err != nil {
		return err
	}
	return submitErr
}

func runInteractive(ctx context.Context, catalog *locations.Catalog, client submission.Transport, logger zerolog.Logger, runnerOpts []tui.Option, sessOpts []session.Option) error {
	runner, err := tui.New(catalog, runnerOpts...)
	if err != nil {
		return err
	}
	controller, err := submission.New(client,
		submission.WithLogger(logging.Component(logger, "submission")),
		submission.WithObserver(runner.Observe),
	)
	if err != nil {
		return err
	}
	return runner.Run(ctx, session.New(controller, sessOpts...))
}

func writeView(ctx context.Context, out io.Writer, format string, v view.View) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "html":
		renderer, err := vanilla.New()
		if err != nil {
			return err
		}
		html, err := renderer.RenderView(ctx, v)
		if err != nil {
			return err
		}
		_, err = out.Write(html)
		return err
	case "text", "":
		return text.Render(out, v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newTransport(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*transport.Client, error) {
	opts := []transport.Option{
		transport.WithTimeout(cfg.Service.Timeout),
		transport.WithUserAgent(cfg.Service.UserAgent),
		transport.WithLogger(logging.Component(logger, "transport")),
	}
	if cfg.Service.ValidateContract {
		validator, err := contract.New(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, transport.WithResponseValidator(validator))
	}
	return transport.New(cfg.Service.BaseURL, opts...)
}

func loadCatalog(cfg *config.Config) (*locations.Catalog, error) {
	if cfg.LocationsFile != "" {
		return locations.Load(cfg.LocationsFile)
	}
	return locations.Default()
}

func viewOptions(cfg *config.Config) ([]view.Option, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, err
	}
	return []view.Option{view.WithLocale(tag)}, nil
}
