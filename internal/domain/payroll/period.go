package payroll

import (
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
)

// Period is an inclusive [Start, End] date range. Payroll is always computed
// for a period, never at a point in time.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod builds a period from "YYYY-MM-DD" strings.
func NewPeriod(startStr, endStr string) (Period, error) {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(startStr)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(endStr)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if len(errs) > 0 {
		return Period{}, errs
	}
	return Period{Start: start, End: end}, nil
}

// Days returns the inclusive day count of the period.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Contains reports whether the date falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// HalfMonthKind classifies how a period relates to the calendar half-month
// windows the manager stipend is quoted in.
type HalfMonthKind int

const (
	// HalfMonthNone - the period matches no half-month window exactly.
	HalfMonthNone HalfMonthKind = iota
	// HalfMonthFirst - day 1 through day 15 of one month.
	HalfMonthFirst
	// HalfMonthSecond - day 16 through the last day of one month, or day 16
	// through day 1 of the immediately following month.
	HalfMonthSecond
)

// HalfMonthWindow reports which calendar half-month window the period matches
// exactly, if any. Caller-supplied periods are not always calendar-aligned;
// non-matching periods fall back to a day-count rule elsewhere.
func (p Period) HalfMonthWindow() HalfMonthKind {
	sy, sm, sd := p.Start.Date()
	ey, em, ed := p.End.Date()

	sameMonth := sy == ey && sm == em

	if sd == 1 && ed == 15 && sameMonth {
		return HalfMonthFirst
	}
	if sd == 16 && sameMonth && ed == lastDayOfMonth(sy, sm) {
		return HalfMonthSecond
	}
	// Second half spilling into the first day of the next month.
	if sd == 16 && ed == 1 {
		next := time.Date(sy, sm, 1, 0, 0, 0, 0, p.Start.Location()).AddDate(0, 1, 0)
		if next.Year() == ey && next.Month() == em {
			return HalfMonthSecond
		}
	}
	return HalfMonthNone
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
