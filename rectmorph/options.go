// SPDX-License-Identifier: MIT

// Package rectmorph: functional configuration for Engine construction.
// This file defines:
//   - Option (functional option over an unexported settings struct),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values: programmer error).
//
// Runtime changes after construction go through Engine.SetMultithreading
// and Engine.SetContinuation instead.
package rectmorph

import (
	"github.com/katalvlaran/lvmorph/matrix"
	"github.com/katalvlaran/lvmorph/morphology"
	"github.com/rs/zerolog"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultMultithreading runs every pass on the calling goroutine.
	DefaultMultithreading = false

	// DefaultContinuation leaves boundary handling to the filters.
	DefaultContinuation = matrix.ContinuationNone
)

const (
	panicContinuationInvalid    = "rectmorph: WithContinuation: unknown continuation mode"
	panicSetContinuationInvalid = "rectmorph: Engine.SetContinuation: unknown continuation mode"
	panicServiceNil             = "rectmorph: WithService: service must not be nil"
)

// Option configures an Engine at construction.
type Option func(*settings)

// settings is the resolved construction-time configuration.
type settings struct {
	multithreading bool
	continuation   matrix.Continuation
	service        morphology.Service // nil: morphology.Default(multithreading)
	logger         *zerolog.Logger    // nil: package Logger()
}

func defaultSettings() settings {
	return settings{
		multithreading: DefaultMultithreading,
		continuation:   DefaultContinuation,
	}
}

// gatherSettings applies opts over the defaults.
func gatherSettings(opts ...Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

// WithMultithreading selects parallel (true) or single-goroutine passes for
// every elementary step, fused 3×3 kernels included.
func WithMultithreading(enabled bool) Option {
	return func(s *settings) { s.multithreading = enabled }
}

// WithContinuation sets the boundary policy of every elementary step.
// Panics if mode is not one of the declared Continuation constants.
func WithContinuation(mode matrix.Continuation) Option {
	if !knownContinuation(mode) {
		panic(panicContinuationInvalid)
	}

	return func(s *settings) { s.continuation = mode }
}

// knownContinuation reports whether mode is one of the declared constants.
func knownContinuation(mode matrix.Continuation) bool {
	return mode >= matrix.ContinuationNone && mode <= matrix.ZeroConstant
}

// WithService replaces the shared Basic service used for generic steps.
// A custom service is used as-is; SetMultithreading then only affects the
// 3×3 kernels. Panics on nil.
func WithService(svc morphology.Service) Option {
	if svc == nil {
		panic(panicServiceNil)
	}

	return func(s *settings) { s.service = svc }
}

// WithLogger overrides the package logger for one engine.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.logger = &l }
}
