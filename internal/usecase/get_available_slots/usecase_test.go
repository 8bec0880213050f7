package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/schedule"
	"github.com/m04kA/barber-booking/pkg/logger"
	"github.com/m04kA/barber-booking/pkg/types"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
	filter       *domain.AppointmentFilter
}

func (r *fakeRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.filter = &filter
	return r.appointments, r.err
}

func newTestUseCase(t *testing.T, repo *fakeRepo) *UseCase {
	t.Helper()
	policy, err := schedule.NewPolicy(schedule.Settings{
		OpenDays: domain.DefaultOpenDays,
		Slots:    []string{"09:00", "09:30", "10:00"},
	}, &fixedClock{now: time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	return NewUseCase(repo, policy, logger.NewNop())
}

func TestExecute_MarksTakenSlots(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{ID: 1, Time: "09:00", Status: domain.StatusConfirmed},
		{ID: 2, Time: "09:30", Status: domain.StatusCancelled},
		{ID: 3, Time: "10:00", Status: domain.StatusPending},
	}}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-06-05"})
	require.NoError(t, err)

	assert.True(t, resp.Open)
	assert.Equal(t, []Slot{
		{Time: types.TimeString("09:00"), Available: false},
		{Time: types.TimeString("09:30"), Available: true},
		{Time: types.TimeString("10:00"), Available: false},
	}, resp.Slots)

	day := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, repo.filter)
	assert.Equal(t, day, *repo.filter.From)
	assert.Equal(t, day, *repo.filter.To)
	assert.Nil(t, repo.filter.Status)
}

func TestExecute_ClosedDay(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-06-08"})
	require.NoError(t, err)

	assert.False(t, resp.Open)
	assert.Empty(t, resp.Slots)
	assert.Nil(t, repo.filter)
}

func TestExecute_InvalidDates(t *testing.T) {
	tests := []struct {
		date    string
		wantErr error
	}{
		{date: "", wantErr: ErrDateRequired},
		{date: "tomorrow", wantErr: ErrInvalidDate},
		{date: "2025-06-03", wantErr: ErrDateInPast},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			uc := newTestUseCase(t, &fakeRepo{})
			_, err := uc.Execute(context.Background(), &Request{Date: tt.date})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestExecute_StorageError(t *testing.T) {
	uc := newTestUseCase(t, &fakeRepo{err: fmt.Errorf("%w: down", domain.ErrStorageUnavailable)})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-06-05"})
	assert.True(t, errors.Is(err, ErrInternal))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
