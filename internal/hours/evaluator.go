/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package hours implements the open-hours decision core: folding a catalog
// of override and schedule records into the flag/message bundle the
// call-routing layer consumes.
package hours

import (
	"time"

	"github.com/friendsincode/openhours/internal/models"
)

// Evaluate folds candidate records into a decision for the given instant.
//
// It is a pure function over its inputs and never fails: records with
// missing flags or malformed bounds are treated as not matching rather than
// faulting, so the returned decision is always fully formed.
//
// Within a category the fold is last-wins: a later record of the same kind
// overwrites an earlier one's result. The store returns records sorted by
// update time, so in practice the most recently updated record of a
// category decides. Across categories the slots are independent.
func Evaluate(records []models.ScheduleRecord, ctx EvaluationContext) models.Decision {
	d := models.Decision{
		WorkingHoursMessage: ClosedPrompt(ctx.Scope),
	}

	for _, rec := range records {
		switch rec.Kind {
		case models.KindEmergencyAll:
			if rec.Active() {
				d.EmergencyAll = true
				d.EmergencyAllMessage = rec.Message
			}
		case models.KindEmergency:
			if rec.Active() {
				d.Emergency = true
				d.EmergencyMessage = rec.Message
			}
		case models.KindWeather:
			if rec.Active() {
				d.Weather = true
				d.WeatherMessage = rec.Message
			}
		case models.KindHoliday:
			applyHoliday(&d, rec, ctx)
		case models.KindWeeklyHours:
			applyWeeklyHours(&d, rec, ctx)
		}
	}
	return d
}

// applyHoliday merges a holiday record's window result, overwriting any
// prior holiday outcome.
func applyHoliday(d *models.Decision, rec models.ScheduleRecord, ctx EvaluationContext) {
	res := evalWindow(rec.StartTime, rec.EndTime, holidayAnchor(rec, ctx), ctx)
	if !res.ok {
		return
	}

	d.Holiday = res.within
	if res.within {
		d.HolidayMessage = rec.Message
	} else {
		d.HolidayMessage = ""
	}
	if res.early {
		d.EarlyWorkingHours = true
	}
}

// applyWeeklyHours merges a weekly open-hours record's window result,
// overwriting the default closed state or any prior weekly-hours outcome.
func applyWeeklyHours(d *models.Decision, rec models.ScheduleRecord, ctx EvaluationContext) {
	res := evalWindow(rec.StartTime, rec.EndTime, ctx.Now, ctx)
	if !res.ok {
		return
	}

	d.WorkingHours = res.within
	if res.within {
		if rec.Message != "" {
			d.WorkingHoursMessage = rec.Message
		}
	} else {
		d.WorkingHoursMessage = ClosedPrompt(ctx.Scope)
	}
	if res.early {
		d.EarlyWorkingHours = true
	}
}

// holidayAnchor resolves the calendar date a holiday record's time-of-day
// bounds attach to. The fetch predicate already matched the record's date
// against today, so a malformed date field falls back to today.
func holidayAnchor(rec models.ScheduleRecord, ctx EvaluationContext) time.Time {
	if rec.Date == "" {
		return ctx.Now
	}
	day, err := time.ParseInLocation(models.DateFormat, rec.Date, ctx.Now.Location())
	if err != nil {
		return ctx.Now
	}
	return day
}
