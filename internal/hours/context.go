/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package hours

import (
	"time"

	"github.com/friendsincode/openhours/internal/models"
)

// EvaluationContext carries the "now" an evaluation runs against: the
// current instant in the contact center's time zone plus the derived
// weekday name and formatted date the record catalog is keyed by. One
// context belongs to exactly one evaluation; nothing is shared or retained
// between invocations.
type EvaluationContext struct {
	Now           time.Time
	Weekday       string
	FormattedDate string
	Scope         string

	// EarlyOpenMargin is the pre-opening window during which the
	// early-working-hours signal is raised.
	EarlyOpenMargin time.Duration
}

// NewContext derives an evaluation context from an instant. The instant is
// shifted into loc first so weekday and date boundaries follow the contact
// center's local calendar, not the host's.
func NewContext(now time.Time, loc *time.Location, scope string, earlyOpenMargin time.Duration) EvaluationContext {
	local := now.In(loc)
	return EvaluationContext{
		Now:             local,
		Weekday:         models.WeekdayNames[local.Weekday()],
		FormattedDate:   local.Format(models.DateFormat),
		Scope:           scope,
		EarlyOpenMargin: earlyOpenMargin,
	}
}
