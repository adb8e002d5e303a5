package tjs

import (
	"log/slog"

	"tjs/internal/parser"
)

// Option tunes parsing and decoding.
type Option func(*settings)

type settings struct {
	parse           parser.Options
	disallowUnknown bool
	logger          *slog.Logger
	name            string
	diags           *Diagnostics
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// WithStrictKeys makes a repeated dict key a DuplicateKey parse error
// instead of silently keeping the last value.
func WithStrictKeys(on bool) Option {
	return func(s *settings) { s.parse.StrictKeys = on }
}

// WithNFC normalizes every parsed string and key to Unicode NFC.
func WithNFC(on bool) Option {
	return func(s *settings) { s.parse.NormalizeNFC = on }
}

// WithLogger receives debug records about collapsed keys and ignored
// fields. A nil logger keeps the library silent.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
		s.parse.Logger = l
	}
}

// WithDisallowUnknownFields makes Record reject dict keys it has no field
// for.
func WithDisallowUnknownFields(on bool) Option {
	return func(s *settings) { s.disallowUnknown = on }
}

// WithFileName names the input in diagnostics collected with
// WithDiagnostics.
func WithFileName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithDiagnostics collects the diagnostics of the parse into d: the first
// lexical or syntax error and warnings such as collapsed duplicate keys.
// Each parse replaces what d held before.
func WithDiagnostics(d *Diagnostics) Option {
	return func(s *settings) { s.diags = d }
}
