package view

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Option configures the projection.
type Option func(*config)

type config struct {
	locale         language.Tag
	currencySymbol string
	progressLines  []string
	printer        *message.Printer
}

var defaultProgressLines = []string{
	"AI is analyzing keywords and creating ad groups...",
	"This may take 20-30 seconds",
}

// WithLocale selects the locale used for digit grouping.
func WithLocale(tag language.Tag) Option {
	return func(cfg *config) {
		cfg.locale = tag
	}
}

// WithCurrencySymbol overrides the "$" prefix on money amounts.
func WithCurrencySymbol(symbol string) Option {
	return func(cfg *config) {
		cfg.currencySymbol = symbol
	}
}

// WithProgressLines replaces the loading indicator text.
func WithProgressLines(lines ...string) Option {
	return func(cfg *config) {
		if len(lines) > 0 {
			cfg.progressLines = append([]string(nil), lines...)
		}
	}
}

func newConfig(options ...Option) config {
	cfg := config{
		locale:         language.AmericanEnglish,
		currencySymbol: "$",
		progressLines:  defaultProgressLines,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	cfg.printer = message.NewPrinter(cfg.locale)
	return cfg
}

func (cfg config) formatGrouped(n int) string {
	return cfg.printer.Sprintf("%d", n)
}

func (cfg config) formatCurrency(amount float64) string {
	return cfg.currencySymbol + cfg.printer.Sprintf("%.2f", amount)
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}

func formatSeconds(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func joinMatchTypes(types []string) string {
	return strings.Join(types, ", ")
}
