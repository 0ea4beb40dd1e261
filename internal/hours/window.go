/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package hours

import (
	"strings"
	"time"
)

// Bound layouts accepted in schedule records. Time-of-day bounds are
// anchored to the evaluation's (or the holiday's) calendar date; absolute
// bounds carry their own date.
var (
	timeOfDayLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM"}
	absoluteLayouts  = []string{"01-02-2006 15:04", "01-02-2006 15:04:05", time.RFC3339}
)

// windowResult is the partial decision produced by comparing the current
// instant against one start/end window.
type windowResult struct {
	// within is true when now falls inside [start, end). Start inclusive,
	// end exclusive, so the instant exactly at closing counts as closed.
	within bool

	// early is true when now precedes start on the same day by no more than
	// the early-open margin.
	early bool

	// ok is false when either bound failed to parse. A malformed window
	// never matches and never faults.
	ok bool
}

// evalWindow normalizes a record's bounds to absolute instants anchored to
// anchor's calendar date and compares ctx.Now against them.
func evalWindow(startRaw, endRaw string, anchor time.Time, ctx EvaluationContext) windowResult {
	start, ok := parseBound(startRaw, anchor)
	if !ok {
		return windowResult{}
	}
	end, ok := parseBound(endRaw, anchor)
	if !ok {
		return windowResult{}
	}

	now := ctx.Now
	res := windowResult{ok: true}
	res.within = !now.Before(start) && now.Before(end)

	if now.Before(start) && sameDay(now, start) {
		if start.Sub(now) <= ctx.EarlyOpenMargin {
			res.early = true
		}
	}
	return res
}

// parseBound interprets a raw bound as either a time of day on anchor's
// date or an absolute timestamp. Empty or unparseable bounds report false.
func parseBound(raw string, anchor time.Time) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	loc := anchor.Location()
	for _, layout := range timeOfDayLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return time.Date(anchor.Year(), anchor.Month(), anchor.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, loc), true
		}
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
