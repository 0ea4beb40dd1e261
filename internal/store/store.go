/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package store provides access to the schedule-record catalog backing the
// open-hours decision. Backends share a single fixed filter predicate so
// the evaluator only ever sees records relevant to "now".
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/friendsincode/openhours/internal/models"
)

// RecordStore is the catalog the evaluator reads.
//
// Fetch returns the candidate records for the given weekday, formatted date
// (MM-DD-YYYY) and scope, per the predicate implemented by Matches. An
// empty result is valid and means no rule applies. Records are returned
// oldest-update-first so a last-wins fold resolves duplicates in favor of
// the most recently updated record.
//
// Put upserts records; it exists for fixture import and tests.
type RecordStore interface {
	Fetch(ctx context.Context, weekday, formattedDate, scope string) ([]models.ScheduleRecord, error)
	Put(ctx context.Context, records ...models.ScheduleRecord) error
}

// DataAccessError wraps any backend failure: unreachable store, throttling,
// malformed rows. It is never retried here; the caller converts it into the
// error-shaped response.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("schedule store %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// Matches is the candidate predicate shared by backends that filter in
// process. A record is a candidate iff any of:
//   - EmergencyAll (affects every scope, no further boundary)
//   - Emergency or Weather with matching scope
//   - WeeklyHours with matching weekday and scope
//   - Holiday with matching date and scope
func Matches(rec models.ScheduleRecord, weekday, formattedDate, scope string) bool {
	switch rec.Kind {
	case models.KindEmergencyAll:
		return true
	case models.KindEmergency, models.KindWeather:
		return rec.Scope == scope
	case models.KindWeeklyHours:
		return rec.Weekday == weekday && rec.Scope == scope
	case models.KindHoliday:
		return rec.Date == formattedDate && rec.Scope == scope
	default:
		return false
	}
}

// sortByUpdate orders records oldest update first, breaking ties by ID so
// the fold order is deterministic even when timestamps collide.
func sortByUpdate(records []models.ScheduleRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].UpdatedAt.Equal(records[j].UpdatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].UpdatedAt.Before(records[j].UpdatedAt)
	})
}
