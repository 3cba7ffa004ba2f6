package payroll

import (
	"errors"
	"testing"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	p, err := NewPeriod("2025-01-01", "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, 15, p.Days())

	_, err = NewPeriod("2025-01-15", "2025-01-01")
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "period_end")

	_, err = NewPeriod("not-a-date", "2025-01-15")
	require.Error(t, err)

	_, err = NewPeriod("2025-01-01", "")
	require.Error(t, err)
}

func TestPeriodDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-01-01", "2025-01-01", 1},
		{"2025-01-01", "2025-01-15", 15},
		{"2025-01-16", "2025-01-31", 16},
		{"2025-01-16", "2025-02-01", 17},
		{"2025-02-01", "2025-02-28", 28},
		{"2024-02-01", "2024-02-29", 29},
	}
	for _, c := range cases {
		p, err := NewPeriod(c.start, c.end)
		require.NoError(t, err)
		assert.Equal(t, c.want, p.Days(), "[%s, %s]", c.start, c.end)
	}
}

func TestHalfMonthWindow(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       HalfMonthKind
	}{
		{"first half", "2025-01-01", "2025-01-15", HalfMonthFirst},
		{"second half january", "2025-01-16", "2025-01-31", HalfMonthSecond},
		{"second half february", "2025-02-16", "2025-02-28", HalfMonthSecond},
		{"second half leap february", "2024-02-16", "2024-02-29", HalfMonthSecond},
		{"second half crossing into next month", "2025-01-16", "2025-02-01", HalfMonthSecond},
		{"second half crossing year boundary", "2025-12-16", "2026-01-01", HalfMonthSecond},
		{"full month", "2025-01-01", "2025-01-31", HalfMonthNone},
		{"misaligned start", "2025-01-02", "2025-01-15", HalfMonthNone},
		{"second half short", "2025-01-16", "2025-01-30", HalfMonthNone},
		{"crossing too far", "2025-01-16", "2025-02-02", HalfMonthNone},
		{"sixteenth to first of month after next", "2025-01-16", "2025-03-01", HalfMonthNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewPeriod(c.start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.want, p.HalfMonthWindow())
		})
	}
}

func TestPeriodContains(t *testing.T) {
	p, err := NewPeriod("2025-01-10", "2025-01-20")
	require.NoError(t, err)

	assert.True(t, p.Contains(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)))
}
