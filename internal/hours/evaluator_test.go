/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package hours

import (
	"testing"
	"time"

	"github.com/friendsincode/openhours/internal/models"
)

// A Wednesday at noon, the baseline instant most cases evaluate against.
var noon = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func testCtx(now time.Time, scope string) EvaluationContext {
	return NewContext(now, time.UTC, scope, 30*time.Minute)
}

func TestEvaluateDefaultsWhenNoRecordsMatch(t *testing.T) {
	tests := []struct {
		name       string
		scope      string
		wantPrompt string
	}{
		{name: "main scope gets the self-service prompt", scope: "Main", wantPrompt: ClosedPrompt("Main")},
		{name: "other scopes get the call-back prompt", scope: "Billing", wantPrompt: ClosedPrompt("Billing")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(nil, testCtx(noon, tt.scope))

			if d.EmergencyAll || d.Emergency || d.Weather || d.Holiday || d.WorkingHours || d.EarlyWorkingHours {
				t.Fatalf("expected all flags false, got %+v", d)
			}
			if d.WorkingHoursMessage != tt.wantPrompt {
				t.Fatalf("unexpected default prompt: %q", d.WorkingHoursMessage)
			}
			if d.EmergencyAllMessage != "" || d.EmergencyMessage != "" || d.WeatherMessage != "" || d.HolidayMessage != "" {
				t.Fatalf("expected empty override messages, got %+v", d)
			}
		})
	}
}

func TestEvaluateFlagRecords(t *testing.T) {
	tests := []struct {
		name   string
		record models.ScheduleRecord
		check  func(t *testing.T, d models.Decision)
	}{
		{
			name:   "active emergency-all sets its slot only",
			record: models.ScheduleRecord{Kind: models.KindEmergencyAll, ActiveFlag: "TRUE", Message: "M"},
			check: func(t *testing.T, d models.Decision) {
				if !d.EmergencyAll || d.EmergencyAllMessage != "M" {
					t.Fatalf("emergency-all not applied: %+v", d)
				}
				if d.Emergency || d.Weather || d.Holiday || d.WorkingHours {
					t.Fatalf("other categories affected: %+v", d)
				}
			},
		},
		{
			name:   "active flag compares case-insensitively",
			record: models.ScheduleRecord{Kind: models.KindEmergency, Scope: "Main", ActiveFlag: "true", Message: "closed"},
			check: func(t *testing.T, d models.Decision) {
				if !d.Emergency || d.EmergencyMessage != "closed" {
					t.Fatalf("emergency not applied: %+v", d)
				}
			},
		},
		{
			name:   "inactive weather record is ignored",
			record: models.ScheduleRecord{Kind: models.KindWeather, Scope: "Main", ActiveFlag: "FALSE", Message: "snow"},
			check: func(t *testing.T, d models.Decision) {
				if d.Weather || d.WeatherMessage != "" {
					t.Fatalf("inactive weather applied: %+v", d)
				}
			},
		},
		{
			name:   "missing active flag means not active",
			record: models.ScheduleRecord{Kind: models.KindWeather, Scope: "Main", Message: "snow"},
			check: func(t *testing.T, d models.Decision) {
				if d.Weather {
					t.Fatalf("weather without flag applied: %+v", d)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate([]models.ScheduleRecord{tt.record}, testCtx(noon, "Main"))
			tt.check(t, d)
		})
	}
}

func TestEvaluateWeeklyHours(t *testing.T) {
	window := models.ScheduleRecord{
		Kind:      models.KindWeeklyHours,
		Scope:     "Main",
		Weekday:   "Wednesday",
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	tests := []struct {
		name      string
		now       time.Time
		wantOpen  bool
		wantEarly bool
	}{
		{name: "inside the window is open", now: noon, wantOpen: true},
		{name: "start is inclusive", now: noon.Add(-3 * time.Hour), wantOpen: true},              // 09:00
		{name: "end is exclusive", now: noon.Add(5 * time.Hour), wantOpen: false},                // 17:00
		{name: "just before close is open", now: noon.Add(5*time.Hour - time.Minute), wantOpen: true}, // 16:59
		{name: "within margin before open raises early", now: noon.Add(-3*time.Hour - 15*time.Minute), wantOpen: false, wantEarly: true}, // 08:45
		{name: "outside margin before open stays quiet", now: noon.Add(-4 * time.Hour), wantOpen: false},                                 // 08:00
		{name: "after close is closed", now: noon.Add(6 * time.Hour), wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate([]models.ScheduleRecord{window}, testCtx(tt.now, "Main"))

			if d.WorkingHours != tt.wantOpen {
				t.Fatalf("workingHours = %v, want %v", d.WorkingHours, tt.wantOpen)
			}
			if d.EarlyWorkingHours != tt.wantEarly {
				t.Fatalf("earlyWorkingHours = %v, want %v", d.EarlyWorkingHours, tt.wantEarly)
			}
			if !tt.wantOpen && d.WorkingHoursMessage != ClosedPrompt("Main") {
				t.Fatalf("closed state lost default prompt: %q", d.WorkingHoursMessage)
			}
		})
	}
}

func TestEvaluateWeeklyHoursOpenPrompt(t *testing.T) {
	rec := models.ScheduleRecord{
		Kind:      models.KindWeeklyHours,
		Scope:     "Main",
		Weekday:   "Wednesday",
		StartTime: "09:00",
		EndTime:   "17:00",
		Message:   "welcome",
	}

	d := Evaluate([]models.ScheduleRecord{rec}, testCtx(noon, "Main"))
	if !d.WorkingHours || d.WorkingHoursMessage != "welcome" {
		t.Fatalf("open prompt not applied: %+v", d)
	}

	rec.Message = ""
	d = Evaluate([]models.ScheduleRecord{rec}, testCtx(noon, "Main"))
	if !d.WorkingHours || d.WorkingHoursMessage != ClosedPrompt("Main") {
		t.Fatalf("expected default prompt retained when record has none: %+v", d)
	}
}

func TestEvaluateHoliday(t *testing.T) {
	holiday := models.ScheduleRecord{
		Kind:      models.KindHoliday,
		Scope:     "Main",
		Date:      "03-11-2026",
		StartTime: "00:00",
		EndTime:   "23:59",
		Message:   "Closed for holiday",
	}

	d := Evaluate([]models.ScheduleRecord{holiday}, testCtx(noon, "Main"))
	if !d.Holiday || d.HolidayMessage != "Closed for holiday" {
		t.Fatalf("holiday not applied: %+v", d)
	}
	if d.WorkingHours {
		t.Fatalf("holiday record must not open the office: %+v", d)
	}

	// A sub-day holiday window that has already ended.
	holiday.StartTime = "08:00"
	holiday.EndTime = "10:00"
	d = Evaluate([]models.ScheduleRecord{holiday}, testCtx(noon, "Main"))
	if d.Holiday || d.HolidayMessage != "" {
		t.Fatalf("expired holiday window applied: %+v", d)
	}
}

func TestEvaluateMalformedBoundsNeverMatch(t *testing.T) {
	records := []models.ScheduleRecord{
		{Kind: models.KindWeeklyHours, Scope: "Main", Weekday: "Wednesday", StartTime: "soon", EndTime: "late"},
		{Kind: models.KindHoliday, Scope: "Main", Date: "03-11-2026", StartTime: "", EndTime: "23:59"},
	}

	d := Evaluate(records, testCtx(noon, "Main"))
	if d.WorkingHours || d.Holiday || d.EarlyWorkingHours {
		t.Fatalf("malformed bounds matched: %+v", d)
	}
	if d.WorkingHoursMessage != ClosedPrompt("Main") {
		t.Fatalf("default prompt lost: %q", d.WorkingHoursMessage)
	}
}

func TestEvaluateLastWinsWithinCategory(t *testing.T) {
	// Two overlapping weekly windows; the one processed last decides.
	open := models.ScheduleRecord{Kind: models.KindWeeklyHours, Scope: "Main", Weekday: "Wednesday", StartTime: "09:00", EndTime: "17:00"}
	closed := models.ScheduleRecord{Kind: models.KindWeeklyHours, Scope: "Main", Weekday: "Wednesday", StartTime: "14:00", EndTime: "15:00"}

	d := Evaluate([]models.ScheduleRecord{open, closed}, testCtx(noon, "Main"))
	if d.WorkingHours {
		t.Fatalf("expected last record (closed at noon) to win: %+v", d)
	}

	d = Evaluate([]models.ScheduleRecord{closed, open}, testCtx(noon, "Main"))
	if !d.WorkingHours {
		t.Fatalf("expected last record (open at noon) to win: %+v", d)
	}

	// Same for flag categories.
	first := models.ScheduleRecord{Kind: models.KindEmergency, Scope: "Main", ActiveFlag: "TRUE", Message: "first"}
	second := models.ScheduleRecord{Kind: models.KindEmergency, Scope: "Main", ActiveFlag: "TRUE", Message: "second"}
	d = Evaluate([]models.ScheduleRecord{first, second}, testCtx(noon, "Main"))
	if d.EmergencyMessage != "second" {
		t.Fatalf("expected last emergency message to win, got %q", d.EmergencyMessage)
	}
}

func TestEvaluateCategoriesAreIndependent(t *testing.T) {
	records := []models.ScheduleRecord{
		{Kind: models.KindEmergencyAll, ActiveFlag: "TRUE", Message: "all closed"},
		{Kind: models.KindWeather, Scope: "Main", ActiveFlag: "TRUE", Message: "storm"},
		{Kind: models.KindWeeklyHours, Scope: "Main", Weekday: "Wednesday", StartTime: "09:00", EndTime: "17:00"},
	}

	d := Evaluate(records, testCtx(noon, "Main"))
	if !d.EmergencyAll || !d.Weather || !d.WorkingHours {
		t.Fatalf("categories interfered with each other: %+v", d)
	}
}
