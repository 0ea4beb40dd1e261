package hours

import (
	"testing"
	"time"
)

func TestNewContextDerivesLocalCalendar(t *testing.T) {
	east, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 02:30 UTC on March 12 is still the evening of March 11 in the east.
	now := time.Date(2026, 3, 12, 2, 30, 0, 0, time.UTC)
	ctx := NewContext(now, east, "Main", 30*time.Minute)

	if ctx.Weekday != "Wednesday" {
		t.Fatalf("weekday = %q, want Wednesday", ctx.Weekday)
	}
	if ctx.FormattedDate != "03-11-2026" {
		t.Fatalf("formatted date = %q, want 03-11-2026", ctx.FormattedDate)
	}
	if ctx.Scope != "Main" {
		t.Fatalf("scope = %q", ctx.Scope)
	}
	if ctx.EarlyOpenMargin != 30*time.Minute {
		t.Fatalf("margin = %v", ctx.EarlyOpenMargin)
	}
}

func TestNewContextFormatsDatePadded(t *testing.T) {
	ctx := NewContext(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), time.UTC, "Main", 0)
	if ctx.FormattedDate != "01-05-2026" {
		t.Fatalf("formatted date = %q, want zero padded 01-05-2026", ctx.FormattedDate)
	}
	if ctx.Weekday != "Monday" {
		t.Fatalf("weekday = %q, want Monday", ctx.Weekday)
	}
}
