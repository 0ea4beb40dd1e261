/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/friendsincode/openhours/internal/models"
	"github.com/friendsincode/openhours/internal/store"
	"github.com/friendsincode/openhours/internal/telemetry"
)

// Service runs one open-hours evaluation per call: fetch candidates, then
// fold. It holds no mutable state; every invocation builds its own context
// and decision, so concurrent calls are independent.
type Service struct {
	store  store.RecordStore
	loc    *time.Location
	margin time.Duration
	logger zerolog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewService wires a record store to the evaluator.
func NewService(st store.RecordStore, loc *time.Location, earlyOpenMargin time.Duration, logger zerolog.Logger) *Service {
	if earlyOpenMargin <= 0 {
		earlyOpenMargin = 30 * time.Minute
	}
	return &Service{
		store:  st,
		loc:    loc,
		margin: earlyOpenMargin,
		logger: logger.With().Str("component", "hours").Logger(),
		now:    time.Now,
	}
}

// Check evaluates the catalog against the current instant for a scope.
// The returned error is only ever a data-access failure; the evaluation
// itself cannot fail. Callers translate the error into the error-shaped
// payload rather than surfacing a fault.
func (s *Service) Check(ctx context.Context, scope string) (models.Decision, error) {
	ectx := NewContext(s.now(), s.loc, scope, s.margin)

	fetchStart := time.Now()
	records, err := s.store.Fetch(ctx, ectx.Weekday, ectx.FormattedDate, scope)
	telemetry.StoreFetchDuration.Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		telemetry.EvaluationsTotal.WithLabelValues(scope, "error").Inc()
		s.logger.Error().Err(err).Str("scope", scope).Msg("schedule record fetch failed")
		return models.Decision{}, fmt.Errorf("fetch schedule records: %w", err)
	}

	s.warnDuplicates(records, scope)

	decision := Evaluate(records, ectx)
	telemetry.EvaluationsTotal.WithLabelValues(scope, outcome(decision)).Inc()

	s.logger.Info().
		Str("scope", scope).
		Str("weekday", ectx.Weekday).
		Str("date", ectx.FormattedDate).
		Int("records", len(records)).
		Bool("open", decision.WorkingHours).
		Bool("holiday", decision.Holiday).
		Bool("emergency", decision.Emergency || decision.EmergencyAll).
		Bool("weather", decision.Weather).
		Msg("open-hours evaluated")

	return decision, nil
}

// warnDuplicates flags more than one active record in a single override
// category. The catalog contract is at most one each; extras are a data
// integrity problem, resolved most-recently-updated-wins by fold order.
func (s *Service) warnDuplicates(records []models.ScheduleRecord, scope string) {
	active := map[models.RecordKind]int{}
	for _, rec := range records {
		switch rec.Kind {
		case models.KindEmergencyAll, models.KindEmergency, models.KindWeather:
			if rec.Active() {
				active[rec.Kind]++
			}
		}
	}
	for kind, n := range active {
		if n > 1 {
			telemetry.DuplicateActiveRecords.WithLabelValues(string(kind)).Inc()
			s.logger.Warn().
				Str("kind", string(kind)).
				Str("scope", scope).
				Int("count", n).
				Msg("multiple active records in one category; most recently updated wins")
		}
	}
}

func outcome(d models.Decision) string {
	if d.WorkingHours {
		return "open"
	}
	return "closed"
}
