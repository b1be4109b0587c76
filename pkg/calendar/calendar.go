// Package calendar resolves day classifications for tenant dates. Resolution
// is pure: explicit entries win, otherwise Saturday/Sunday default to WEEKEND
// and every other day to WORKING_DAY, multiplier 1.0. Persistence lives in
// the repository layer.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
)

// DateLayout is the wire format for calendar dates, company-local.
const DateLayout = "2006-01-02"

// DefaultPayMultiplier applies to synthesized entries and is the baseline
// for explicit ones.
const DefaultPayMultiplier = 1.0

var (
	ErrEmptyDateSet      = errors.New("EmptyDateSet: at least one date is required")
	ErrInvalidMultiplier = errors.New("InvalidMultiplier: pay multiplier must be greater than zero")
	ErrInvalidDayType    = errors.New("day type must be WORKING_DAY, HOLIDAY or WEEKEND")
)

// Resolve returns the classification for one date. If explicit is non-nil it
// is returned verbatim; otherwise a default entry is synthesized. Total and
// deterministic for any valid date.
func Resolve(explicit *models.CalendarEntry, companyID primitive.ObjectID, date time.Time) models.CalendarEntry {
	if explicit != nil {
		return *explicit
	}

	dayType := models.DayTypeWorkingDay
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		dayType = models.DayTypeWeekend
	}

	return models.CalendarEntry{
		CompanyID:     companyID,
		Date:          date.Format(DateLayout),
		DayType:       dayType,
		PayMultiplier: DefaultPayMultiplier,
	}
}

// ResolveRange resolves every day from start through end inclusive.
// explicitByDate is keyed by DateLayout strings.
func ResolveRange(explicitByDate map[string]models.CalendarEntry, companyID primitive.ObjectID, start, end time.Time) []models.CalendarEntry {
	var entries []models.CalendarEntry
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		if explicit, ok := explicitByDate[key]; ok {
			entries = append(entries, explicit)
			continue
		}
		entries = append(entries, Resolve(nil, companyID, d))
	}
	return entries
}

// ValidateRangeWrite checks a bulk-set request before it reaches storage.
func ValidateRangeWrite(dates []string, dayType string, payMultiplier float64) error {
	if len(dates) == 0 {
		return ErrEmptyDateSet
	}
	if payMultiplier <= 0 {
		return ErrInvalidMultiplier
	}
	switch dayType {
	case models.DayTypeWorkingDay, models.DayTypeHoliday, models.DayTypeWeekend:
	default:
		return ErrInvalidDayType
	}
	for _, d := range dates {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return fmt.Errorf("invalid date %q: %w", d, err)
		}
	}
	return nil
}

// RejectionReason maps a range-write validation error to the stable reason
// code API clients receive.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyDateSet):
		return "EmptyDateSet"
	case errors.Is(err, ErrInvalidMultiplier):
		return "InvalidMultiplier"
	case errors.Is(err, ErrInvalidDayType):
		return "InvalidDayType"
	default:
		return "InvalidDate"
	}
}

// ExpandRecurrence expands an RRULE string into the concrete dates it
// produces between start and end inclusive. Used by the bulk calendar write
// so admins can set e.g. every Friday as a weekend in one request.
func ExpandRecurrence(rule, startDate, endDate string) ([]string, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end_date %s is before start_date %s", endDate, startDate)
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}
	r.DTStart(start)

	occurrences := r.Between(start.Add(-time.Second), end.Add(24*time.Hour-time.Second), true)
	dates := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		dates = append(dates, occ.Format(DateLayout))
	}
	return dates, nil
}
