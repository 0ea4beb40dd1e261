/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package store

import (
	"context"
	"testing"
	"time"

	"github.com/friendsincode/openhours/internal/models"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		record models.ScheduleRecord
		want   bool
	}{
		{
			name:   "emergency-all matches regardless of scope",
			record: models.ScheduleRecord{Kind: models.KindEmergencyAll, Scope: "Billing"},
			want:   true,
		},
		{
			name:   "emergency in scope",
			record: models.ScheduleRecord{Kind: models.KindEmergency, Scope: "Main"},
			want:   true,
		},
		{
			name:   "emergency out of scope",
			record: models.ScheduleRecord{Kind: models.KindEmergency, Scope: "Billing"},
		},
		{
			name:   "weather in scope",
			record: models.ScheduleRecord{Kind: models.KindWeather, Scope: "Main"},
			want:   true,
		},
		{
			name:   "weekly hours for today",
			record: models.ScheduleRecord{Kind: models.KindWeeklyHours, Scope: "Main", Weekday: "Wednesday"},
			want:   true,
		},
		{
			name:   "weekly hours for another day",
			record: models.ScheduleRecord{Kind: models.KindWeeklyHours, Scope: "Main", Weekday: "Thursday"},
		},
		{
			name:   "holiday for today",
			record: models.ScheduleRecord{Kind: models.KindHoliday, Scope: "Main", Date: "03-11-2026"},
			want:   true,
		},
		{
			name:   "holiday for another date",
			record: models.ScheduleRecord{Kind: models.KindHoliday, Scope: "Main", Date: "12-25-2026"},
		},
		{
			name:   "unknown kind never matches",
			record: models.ScheduleRecord{Kind: "Maintenance", Scope: "Main"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(tt.record, "Wednesday", "03-11-2026", "Main")
			if got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMemoryStoreFetchFiltersAndSorts(t *testing.T) {
	mem := NewMemoryStore()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	err := mem.Put(context.Background(),
		models.ScheduleRecord{ID: "b", Kind: models.KindWeather, Scope: "Main", UpdatedAt: base.Add(2 * time.Hour)},
		models.ScheduleRecord{ID: "a", Kind: models.KindWeather, Scope: "Main", UpdatedAt: base.Add(time.Hour)},
		models.ScheduleRecord{ID: "c", Kind: models.KindWeather, Scope: "Billing", UpdatedAt: base},
		models.ScheduleRecord{ID: "d", Kind: models.KindWeeklyHours, Scope: "Main", Weekday: "Thursday", UpdatedAt: base},
	)
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	records, err := mem.Fetch(context.Background(), "Wednesday", "03-11-2026", "Main")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(records))
	}
	if records[0].ID != "a" || records[1].ID != "b" {
		t.Fatalf("expected oldest-update-first order, got %s then %s", records[0].ID, records[1].ID)
	}
}

func TestMemoryStoreFetchHonorsContext(t *testing.T) {
	mem := NewMemoryStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mem.Fetch(ctx, "Wednesday", "03-11-2026", "Main"); err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestMemoryStorePutUpserts(t *testing.T) {
	mem := NewMemoryStore()
	ctx := context.Background()

	rec := models.ScheduleRecord{ID: "e1", Kind: models.KindEmergency, Scope: "Main", ActiveFlag: "TRUE"}
	if err := mem.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec.ActiveFlag = "FALSE"
	if err := mem.Put(ctx, rec); err != nil {
		t.Fatalf("re-put: %v", err)
	}

	records, err := mem.Fetch(ctx, "Wednesday", "03-11-2026", "Main")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 || records[0].Active() {
		t.Fatalf("expected single inactive record, got %+v", records)
	}
}
