package schedule

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

// 2025-06-04 - среда
var wednesday = time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC)

func newTestPolicy(t *testing.T, now time.Time) *Policy {
	t.Helper()
	p, err := NewPolicy(Settings{
		OpenDays: domain.DefaultOpenDays,
		Slots:    domain.DefaultSlots,
	}, &fixedClock{now: now})
	require.NoError(t, err)
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsValidSlot(t *testing.T) {
	p := newTestPolicy(t, wednesday)

	tests := []struct {
		name string
		date time.Time
		time types.TimeString
		want bool
	}{
		{name: "today morning slot", date: date(2025, 6, 4), time: "09:00", want: true},
		{name: "future saturday", date: date(2025, 6, 7), time: "17:30", want: true},
		{name: "yesterday", date: date(2025, 6, 3), time: "09:00", want: false},
		{name: "sunday closed", date: date(2025, 6, 8), time: "09:00", want: false},
		{name: "lunch break", date: date(2025, 6, 5), time: "12:00", want: false},
		{name: "off-grid minute", date: date(2025, 6, 5), time: "09:15", want: false},
		{name: "after closing", date: date(2025, 6, 5), time: "18:00", want: false},
		{name: "empty time", date: date(2025, 6, 5), time: "", want: false},
		{name: "zero date", date: time.Time{}, time: "09:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsValidSlot(tt.date, tt.time))
		})
	}
}

func TestIsValidSlot_AcceptedImpliesRules(t *testing.T) {
	p := newTestPolicy(t, wednesday)
	today := p.Today()

	for i := -3; i < 21; i++ {
		day := today.AddDate(0, 0, i)
		for _, raw := range []string{"08:30", "09:00", "11:30", "12:00", "14:00", "17:30", "18:00"} {
			ts := types.TimeString(raw)
			if !p.IsValidSlot(day, ts) {
				continue
			}
			assert.False(t, day.Before(today))
			assert.NotEqual(t, time.Sunday, day.Weekday())
			assert.Contains(t, domain.DefaultSlots, raw)
		}
	}
}

func TestAvailableDates(t *testing.T) {
	p := newTestPolicy(t, wednesday)

	dates := slices.Collect(p.AvailableDates(7))

	// 7 дней со среды: ср, чт, пт, сб, (вс пропущено), пн, вт
	require.Len(t, dates, 6)
	assert.Equal(t, date(2025, 6, 4), dates[0])
	assert.Equal(t, date(2025, 6, 10), dates[5])
	for _, d := range dates {
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}

	// Повторный обход даёт тот же результат
	assert.Equal(t, dates, slices.Collect(p.AvailableDates(7)))
}

func TestAvailableDates_DefaultHorizon(t *testing.T) {
	p := newTestPolicy(t, wednesday)

	dates := slices.Collect(p.AvailableDates(domain.DefaultHorizonDays))

	// 30 дней содержат 4 или 5 воскресений
	assert.GreaterOrEqual(t, len(dates), 25)
	assert.LessOrEqual(t, len(dates), 26)
}

func TestCurrentWeek(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		wantMonday time.Time
	}{
		{name: "wednesday", now: wednesday, wantMonday: date(2025, 6, 2)},
		{name: "monday", now: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), wantMonday: date(2025, 6, 2)},
		{name: "sunday belongs to previous monday", now: time.Date(2025, 6, 8, 8, 0, 0, 0, time.UTC), wantMonday: date(2025, 6, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPolicy(t, tt.now)
			from, to := p.CurrentWeek()
			assert.Equal(t, tt.wantMonday, from)
			assert.Equal(t, tt.wantMonday.AddDate(0, 0, 6), to)
			assert.Equal(t, time.Sunday, to.Weekday())
		})
	}
}

func TestToday_UsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC 5 июня = 22:00 4 июня по BRT
	p, err := NewPolicy(Settings{
		OpenDays: domain.DefaultOpenDays,
		Slots:    domain.DefaultSlots,
		Location: loc,
	}, &fixedClock{now: time.Date(2025, 6, 5, 1, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, date(2025, 6, 4), p.Today())
}

func TestNewPolicy_Validation(t *testing.T) {
	_, err := NewPolicy(Settings{Slots: domain.DefaultSlots}, nil)
	assert.ErrorIs(t, err, ErrNoOpenDays)

	_, err = NewPolicy(Settings{OpenDays: domain.DefaultOpenDays}, nil)
	assert.ErrorIs(t, err, ErrNoSlots)

	_, err = NewPolicy(Settings{OpenDays: domain.DefaultOpenDays, Slots: []string{"9h"}}, nil)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSlots_SortedAndDeduplicated(t *testing.T) {
	p, err := NewPolicy(Settings{
		OpenDays: domain.DefaultOpenDays,
		Slots:    []string{"14:00", "09:00", "14:00"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "14:00"}, p.Slots())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 6, 2), d)

	_, err = ParseDate("02/06/2025")
	assert.Error(t, err)
}
