package service

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func pgDate(t *testing.T, value string) pgtype.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("failed parsing date=%s with error=%s", value, err)
	}
	return pgtype.Date{Time: parsed, Valid: true}
}

func TestUnavailableDatesEmpty(t *testing.T) {
	assert.Equal(t, []string{}, UnavailableDates(nil))
	assert.Equal(t, []string{}, UnavailableDates([]pgtype.Date{}))
}

func TestUnavailableDatesSortedAndDeduplicated(t *testing.T) {
	dates := []pgtype.Date{
		pgDate(t, "2026-09-15"),
		pgDate(t, "2026-09-01"),
		pgDate(t, "2026-09-15"),
		pgDate(t, "2026-08-30"),
	}
	assert.Equal(
		t,
		[]string{"2026-08-30", "2026-09-01", "2026-09-15"},
		UnavailableDates(dates),
	)
}

func TestUnavailableDatesSkipsInvalid(t *testing.T) {
	dates := []pgtype.Date{
		{},
		pgDate(t, "2026-09-01"),
		{},
	}
	assert.Equal(t, []string{"2026-09-01"}, UnavailableDates(dates))
}

func TestIsDateUnavailable(t *testing.T) {
	unavailable := []string{"2026-09-01", "2026-09-15"}

	assert.True(t, IsDateUnavailable("2026-09-01", unavailable))
	assert.True(t, IsDateUnavailable("2026-09-15", unavailable))
	assert.False(t, IsDateUnavailable("2026-09-02", unavailable))
	assert.False(t, IsDateUnavailable("2026-09-01", nil))
}
