package bookings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barber-booking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/barber-booking/internal/infra/storage/catalog"
	"github.com/m04kA/barber-booking/internal/service/bookings/models"
	"github.com/m04kA/barber-booking/internal/service/schedule"
	"github.com/m04kA/barber-booking/pkg/logger"
	"github.com/m04kA/barber-booking/pkg/types"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type txKey struct{}

// fakeTxManager помечает контекст, чтобы репозиторий видел, что вызван внутри транзакции
type fakeTxManager struct {
	calls int
	err   error
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(context.WithValue(ctx, txKey{}, true))
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// fakeAppointments хранилище записей в памяти, фильтрует так же, как репозиторий
type fakeAppointments struct {
	items     []*domain.Appointment
	updateErr error
	listErr   error

	// вызовы UpdateStatus и GetByID вне транзакции
	outsideTx []string
}

func (r *fakeAppointments) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if !inTx(ctx) {
		r.outsideTx = append(r.outsideTx, "GetByID")
	}
	for _, a := range r.items {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (r *fakeAppointments) List(_ context.Context, f domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range r.items {
		if f.From != nil && a.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && a.Date.After(*f.To) {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointments) FindByClientName(_ context.Context, fragment string) ([]*domain.Appointment, error) {
	return r.items[:1], nil
}

func (r *fakeAppointments) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if !inTx(ctx) {
		r.outsideTx = append(r.outsideTx, "UpdateStatus")
	}
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, a := range r.items {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return appointmentRepo.ErrAppointmentNotFound
}

type fakeCatalog struct {
	services  []*domain.Service
	createErr error
}

func (r *fakeCatalog) List(_ context.Context) ([]*domain.Service, error) {
	return r.services, nil
}

func (r *fakeCatalog) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	s.ID = int64(len(r.services) + 1)
	r.services = append(r.services, s)
	return s, nil
}

var staff = &domain.StaffIdentity{ID: 1, Name: "Admin", Email: "admin@barber.local"}

func newTestService(t *testing.T, now time.Time, repo *fakeAppointments) *Service {
	t.Helper()
	policy, err := schedule.NewPolicy(schedule.Settings{
		OpenDays: domain.DefaultOpenDays,
		Slots:    domain.DefaultSlots,
	}, &fixedClock{now: now})
	require.NoError(t, err)
	return NewService(repo, &fakeCatalog{}, &fakeTxManager{}, policy, logger.NewNop())
}

// Неделя, содержащая 2025-06-04, - с 2 по 8 июня
func seeded() *fakeAppointments {
	mk := func(id int64, date time.Time, status domain.AppointmentStatus) *domain.Appointment {
		return &domain.Appointment{
			ID: id, ClientName: "Client", ClientPhone: "11987654321", ServiceID: 1,
			Date: date, Time: types.TimeString("09:00"), Status: status,
			ServiceName: "Haircut", ServiceDuration: 30,
		}
	}
	return &fakeAppointments{items: []*domain.Appointment{
		mk(1, day(2025, 6, 1), domain.StatusPending),   // воскресенье прошлой недели
		mk(2, day(2025, 6, 2), domain.StatusPending),   // понедельник
		mk(3, day(2025, 6, 4), domain.StatusConfirmed), // среда
		mk(4, day(2025, 6, 8), domain.StatusCancelled), // воскресенье
		mk(5, day(2025, 6, 9), domain.StatusPending),   // следующий понедельник
	}}
}

func ids(resp *models.AppointmentListResponse) []int64 {
	out := make([]int64, 0, len(resp.Appointments))
	for _, a := range resp.Appointments {
		out = append(out, a.ID)
	}
	return out
}

func TestListForStaff_RequiresCaller(t *testing.T) {
	svc := newTestService(t, day(2025, 6, 4), seeded())

	_, err := svc.ListForStaff(context.Background(), nil, &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListForStaff_Periods(t *testing.T) {
	sunday := time.Date(2025, 6, 8, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		req     models.ListAppointmentsRequest
		wantIDs []int64
	}{
		{name: "all by default", now: sunday, req: models.ListAppointmentsRequest{}, wantIDs: []int64{1, 2, 3, 4, 5}},
		{name: "week on sunday", now: sunday, req: models.ListAppointmentsRequest{Period: "week"}, wantIDs: []int64{2, 3, 4}},
		{name: "semana alias", now: day(2025, 6, 2), req: models.ListAppointmentsRequest{Period: "Semana"}, wantIDs: []int64{2, 3, 4}},
		{name: "today", now: day(2025, 6, 4), req: models.ListAppointmentsRequest{Period: "hoje"}, wantIDs: []int64{3}},
		{name: "week and status", now: sunday, req: models.ListAppointmentsRequest{Period: "week", Status: "pending"}, wantIDs: []int64{2}},
		{name: "status all", now: sunday, req: models.ListAppointmentsRequest{Period: "todos", Status: "all"}, wantIDs: []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.now, seeded())
			resp, err := svc.ListForStaff(context.Background(), staff, &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(resp))
		})
	}
}

func TestListForStaff_InvalidFilters(t *testing.T) {
	svc := newTestService(t, day(2025, 6, 4), seeded())

	_, err := svc.ListForStaff(context.Background(), staff, &models.ListAppointmentsRequest{Period: "month"})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.ListForStaff(context.Background(), staff, &models.ListAppointmentsRequest{Status: "Done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListForStaff_StorageError(t *testing.T) {
	repo := seeded()
	repo.listErr = fmt.Errorf("%w: down", domain.ErrStorageUnavailable)
	svc := newTestService(t, day(2025, 6, 4), repo)

	_, err := svc.ListForStaff(context.Background(), staff, &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestListForStaff_FormatsPhoneAndEndTime(t *testing.T) {
	svc := newTestService(t, day(2025, 6, 4), seeded())

	resp, err := svc.ListForStaff(context.Background(), staff, &models.ListAppointmentsRequest{Period: "today"})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)

	a := resp.Appointments[0]
	assert.Equal(t, "(11) 98765-4321", a.ClientPhoneFormatted)
	assert.Equal(t, "09:30", a.EndTime)
	assert.Equal(t, "2025-06-04", a.Date)
}

func TestSetStatus(t *testing.T) {
	t.Run("every transition is allowed", func(t *testing.T) {
		repo := seeded()
		svc := newTestService(t, day(2025, 6, 4), repo)

		for _, status := range []string{"Cancelled", "confirmed", "PENDING", "Cancelled", "Confirmed"} {
			resp, err := svc.SetStatus(context.Background(), staff, 2, &models.UpdateStatusRequest{Status: status})
			require.NoError(t, err)
			parsed, _ := domain.ParseStatus(status)
			assert.Equal(t, string(parsed), resp.Status)
		}
	})

	t.Run("update and read share one transaction", func(t *testing.T) {
		repo := seeded()
		tx := &fakeTxManager{}
		policy, err := schedule.NewPolicy(schedule.Settings{OpenDays: domain.DefaultOpenDays, Slots: domain.DefaultSlots}, &fixedClock{now: day(2025, 6, 4)})
		require.NoError(t, err)
		svc := NewService(repo, &fakeCatalog{}, tx, policy, logger.NewNop())

		resp, err := svc.SetStatus(context.Background(), staff, 2, &models.UpdateStatusRequest{Status: "Confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "Confirmed", resp.Status)
		assert.Equal(t, 1, tx.calls)
		assert.Empty(t, repo.outsideTx)
	})

	t.Run("transaction failure", func(t *testing.T) {
		repo := seeded()
		policy, err := schedule.NewPolicy(schedule.Settings{OpenDays: domain.DefaultOpenDays, Slots: domain.DefaultSlots}, &fixedClock{now: day(2025, 6, 4)})
		require.NoError(t, err)
		svc := NewService(repo, &fakeCatalog{}, &fakeTxManager{err: fmt.Errorf("%w: begin", domain.ErrStorageUnavailable)}, policy, logger.NewNop())

		_, err = svc.SetStatus(context.Background(), staff, 2, &models.UpdateStatusRequest{Status: "Confirmed"})
		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		assert.Equal(t, domain.StatusPending, repo.items[1].Status)
	})

	t.Run("requires caller", func(t *testing.T) {
		svc := newTestService(t, day(2025, 6, 4), seeded())
		_, err := svc.SetStatus(context.Background(), nil, 2, &models.UpdateStatusRequest{Status: "Confirmed"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := seeded()
		svc := newTestService(t, day(2025, 6, 4), repo)

		_, err := svc.SetStatus(context.Background(), staff, 2, &models.UpdateStatusRequest{Status: "Done"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Equal(t, domain.StatusPending, repo.items[1].Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newTestService(t, day(2025, 6, 4), seeded())
		_, err := svc.SetStatus(context.Background(), staff, 99999, &models.UpdateStatusRequest{Status: "Cancelled"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("reactivation into taken slot", func(t *testing.T) {
		repo := seeded()
		repo.updateErr = appointmentRepo.ErrSlotTaken
		svc := newTestService(t, day(2025, 6, 4), repo)

		_, err := svc.SetStatus(context.Background(), staff, 4, &models.UpdateStatusRequest{Status: "Pending"})
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestSearchByClient(t *testing.T) {
	svc := newTestService(t, day(2025, 6, 4), seeded())

	_, err := svc.SearchByClient(context.Background(), staff, "   ")
	assert.ErrorIs(t, err, ErrEmptySearch)

	_, err = svc.SearchByClient(context.Background(), nil, "ana")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	resp, err := svc.SearchByClient(context.Background(), staff, "client")
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
}

func TestCreateService(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		svc := newTestService(t, day(2025, 6, 4), seeded())

		for _, req := range []models.CreateServiceRequest{
			{Name: " ", Price: 10, DurationMinutes: 10},
			{Name: "Shave", Price: -1, DurationMinutes: 10},
			{Name: "Shave", Price: 10, DurationMinutes: 0},
		} {
			_, err := svc.CreateService(context.Background(), staff, &req)
			assert.ErrorIs(t, err, ErrInvalidService)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
	})

	t.Run("success", func(t *testing.T) {
		svc := newTestService(t, day(2025, 6, 4), seeded())
		desc := "  Hot towel  "

		resp, err := svc.CreateService(context.Background(), staff, &models.CreateServiceRequest{
			Name: "Shave", Price: 20.005, DurationMinutes: 25, Description: &desc,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Hot towel", *resp.Description)

		list, err := svc.ListServices(context.Background())
		require.NoError(t, err)
		assert.Len(t, list.Services, 1)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := &fakeCatalog{createErr: catalogRepo.ErrDuplicateName}
		policy, err := schedule.NewPolicy(schedule.Settings{OpenDays: domain.DefaultOpenDays, Slots: domain.DefaultSlots}, &schedule.RealTimeProvider{})
		require.NoError(t, err)
		svc := NewService(seeded(), repo, &fakeTxManager{}, policy, logger.NewNop())

		_, err = svc.CreateService(context.Background(), staff, &models.CreateServiceRequest{Name: "Haircut", Price: 35, DurationMinutes: 30})
		assert.ErrorIs(t, err, ErrServiceNameTaken)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("requires caller", func(t *testing.T) {
		svc := newTestService(t, day(2025, 6, 4), seeded())
		_, err := svc.CreateService(context.Background(), nil, &models.CreateServiceRequest{Name: "Shave", Price: 1, DurationMinutes: 1})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
