package calendar

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
)

var testCompanyID = primitive.NewObjectID()

func day(value string) time.Time {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestResolveDefaults(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantType string
	}{
		{"weekday defaults to working day", "2026-03-04", models.DayTypeWorkingDay},
		{"saturday defaults to weekend", "2026-03-07", models.DayTypeWeekend},
		{"sunday defaults to weekend", "2026-03-08", models.DayTypeWeekend},
		{"monday defaults to working day", "2026-03-09", models.DayTypeWorkingDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(nil, testCompanyID, day(tt.date))
			if got.DayType != tt.wantType {
				t.Errorf("Resolve() day type = %v, want %v", got.DayType, tt.wantType)
			}
			if got.PayMultiplier != DefaultPayMultiplier {
				t.Errorf("Resolve() multiplier = %v, want %v", got.PayMultiplier, DefaultPayMultiplier)
			}
			if got.Description != "" {
				t.Errorf("Resolve() synthesized entry must have no description, got %q", got.Description)
			}
			if got.Date != tt.date {
				t.Errorf("Resolve() date = %v, want %v", got.Date, tt.date)
			}
		})
	}
}

func TestResolveExplicitEntryWinsVerbatim(t *testing.T) {
	explicit := &models.CalendarEntry{
		CompanyID:     testCompanyID,
		Date:          "2026-03-07",
		DayType:       models.DayTypeHoliday,
		PayMultiplier: 2.0,
		Description:   "Company anniversary",
	}

	got := Resolve(explicit, testCompanyID, day("2026-03-07"))
	if !reflect.DeepEqual(got, *explicit) {
		t.Errorf("Resolve() = %+v, want explicit entry verbatim %+v", got, *explicit)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	first := Resolve(nil, testCompanyID, day("2026-03-07"))
	second := Resolve(nil, testCompanyID, day("2026-03-07"))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Resolve() not idempotent: %+v vs %+v", first, second)
	}
}

func TestResolveRange(t *testing.T) {
	explicit := map[string]models.CalendarEntry{
		"2026-03-06": {
			CompanyID:     testCompanyID,
			Date:          "2026-03-06",
			DayType:       models.DayTypeHoliday,
			PayMultiplier: 1.5,
			Description:   "Bridge day",
		},
	}

	entries := ResolveRange(explicit, testCompanyID, day("2026-03-05"), day("2026-03-08"))
	if len(entries) != 4 {
		t.Fatalf("ResolveRange() returned %d entries, want 4", len(entries))
	}

	wantTypes := []string{
		models.DayTypeWorkingDay, // Thursday
		models.DayTypeHoliday,    // explicit override
		models.DayTypeWeekend,    // Saturday
		models.DayTypeWeekend,    // Sunday
	}
	for i, want := range wantTypes {
		if entries[i].DayType != want {
			t.Errorf("ResolveRange()[%d] day type = %v, want %v", i, entries[i].DayType, want)
		}
	}
	if entries[1].PayMultiplier != 1.5 {
		t.Errorf("ResolveRange() explicit multiplier = %v, want 1.5", entries[1].PayMultiplier)
	}
}

func TestValidateRangeWrite(t *testing.T) {
	tests := []struct {
		name       string
		dates      []string
		dayType    string
		multiplier float64
		wantErr    error
	}{
		{
			name:       "valid write",
			dates:      []string{"2026-03-05", "2026-03-06"},
			dayType:    models.DayTypeHoliday,
			multiplier: 1.5,
		},
		{
			name:       "empty date set rejected",
			dates:      nil,
			dayType:    models.DayTypeHoliday,
			multiplier: 1.5,
			wantErr:    ErrEmptyDateSet,
		},
		{
			name:       "zero multiplier rejected",
			dates:      []string{"2026-03-05"},
			dayType:    models.DayTypeHoliday,
			multiplier: 0,
			wantErr:    ErrInvalidMultiplier,
		},
		{
			name:       "negative multiplier rejected",
			dates:      []string{"2026-03-05"},
			dayType:    models.DayTypeHoliday,
			multiplier: -1,
			wantErr:    ErrInvalidMultiplier,
		},
		{
			name:       "unknown day type rejected",
			dates:      []string{"2026-03-05"},
			dayType:    "VACATION",
			multiplier: 1,
			wantErr:    ErrInvalidDayType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRangeWrite(tt.dates, tt.dayType, tt.multiplier)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRangeWrite() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("malformed date rejected", func(t *testing.T) {
		err := ValidateRangeWrite([]string{"05-03-2026"}, models.DayTypeHoliday, 1)
		if err == nil {
			t.Error("ValidateRangeWrite() accepted malformed date")
		}
	})
}

func TestRejectionReason(t *testing.T) {
	tests := []struct {
		name       string
		dates      []string
		dayType    string
		multiplier float64
		want       string
	}{
		{"empty date set", nil, models.DayTypeHoliday, 1.5, "EmptyDateSet"},
		{"invalid multiplier", []string{"2026-03-05"}, models.DayTypeHoliday, 0, "InvalidMultiplier"},
		{"invalid day type", []string{"2026-03-05"}, "VACATION", 1, "InvalidDayType"},
		{"malformed date", []string{"05-03-2026"}, models.DayTypeHoliday, 1, "InvalidDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRangeWrite(tt.dates, tt.dayType, tt.multiplier)
			if err == nil {
				t.Fatal("ValidateRangeWrite() accepted an invalid write")
			}
			if got := RejectionReason(err); got != tt.want {
				t.Errorf("RejectionReason() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandRecurrence(t *testing.T) {
	// Every Friday in March 2026: the 6th, 13th, 20th and 27th.
	dates, err := ExpandRecurrence("FREQ=WEEKLY;BYDAY=FR", "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}

	want := []string{"2026-03-06", "2026-03-13", "2026-03-20", "2026-03-27"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("ExpandRecurrence() = %v, want %v", dates, want)
	}
}

func TestExpandRecurrenceErrors(t *testing.T) {
	if _, err := ExpandRecurrence("NOT A RULE", "2026-03-01", "2026-03-31"); err == nil {
		t.Error("ExpandRecurrence() accepted a malformed rule")
	}
	if _, err := ExpandRecurrence("FREQ=DAILY", "2026-03-31", "2026-03-01"); err == nil {
		t.Error("ExpandRecurrence() accepted an inverted range")
	}
}
