package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/barber-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barber-booking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/barber-booking/internal/infra/storage/catalog"
	"github.com/m04kA/barber-booking/internal/service/bookings/models"
)

// Service сервис записей для сотрудников и публичного каталога
// Не хранит состояние между запросами: каждый вызов перечитывает хранилище
type Service struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	calendar        Calendar
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	calendar Calendar,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		calendar:        calendar,
		logger:          logger,
	}
}

// ListForStaff возвращает записи за период с фильтром по статусу
//
// Период:
// - today (hoje) - только сегодняшние записи
// - week (semana) - неделя понедельник - воскресенье, содержащая сегодняшний день, включительно
// - all (todos) или пустая строка - без ограничения по дате
//
// Статус: Pending, Confirmed, Cancelled (без учёта регистра), all или пустая строка - любой
func (s *Service) ListForStaff(ctx context.Context, caller *domain.StaffIdentity, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	s.logger.Info("ListForStaff: staff id=%d, period=%q, status=%q", caller.ID, req.Period, req.Status)

	filter, err := s.buildFilter(req)
	if err != nil {
		s.logger.Warn("ListForStaff: invalid filter: %v", err)
		return nil, err
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListForStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForStaff - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListForStaff: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

func (s *Service) buildFilter(req *models.ListAppointmentsRequest) (domain.AppointmentFilter, error) {
	var filter domain.AppointmentFilter

	period, ok := models.ParsePeriod(req.Period)
	if !ok {
		return filter, ErrInvalidPeriod
	}

	status, ok := models.ParseStatusFilter(req.Status)
	if !ok {
		return filter, ErrInvalidStatus
	}
	filter.Status = status

	switch period {
	case models.PeriodToday:
		today := s.calendar.Today()
		filter.From = &today
		filter.To = &today
	case models.PeriodWeek:
		monday, sunday := s.calendar.CurrentWeek()
		filter.From = &monday
		filter.To = &sunday
	}

	return filter, nil
}

// SetStatus меняет статус записи и возвращает её актуальное состояние
// Допустим переход из любого статуса в любой. Возврат отменённой записи
// в активный статус невозможен, если её слот уже занят (Conflict)
func (s *Service) SetStatus(ctx context.Context, caller *domain.StaffIdentity, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	s.logger.Info("SetStatus: staff id=%d, appointment id=%d, status=%q", caller.ID, id, req.Status)

	if id <= 0 {
		return nil, ErrInvalidID
	}

	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		s.logger.Warn("SetStatus: invalid status=%q for appointment id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	// Обновление и чтение в одной транзакции: ответ отражает именно записанный статус
	var appointment *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
			return err
		}

		var err error
		appointment, err = s.appointmentRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.mapAppointmentError("SetStatus", id, err)
	}

	s.logger.Info("SetStatus: appointment id=%d is now %s", id, status)
	return models.FromDomainAppointment(appointment), nil
}

func (s *Service) mapAppointmentError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		s.logger.Warn("%s: appointment id=%d not found", op, id)
		return ErrAppointmentNotFound
	case errors.Is(err, appointmentRepo.ErrSlotTaken):
		s.logger.Warn("%s: slot of appointment id=%d is taken", op, id)
		return ErrSlotTaken
	default:
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

// SearchByClient ищет записи по подстроке имени клиента без учёта регистра
func (s *Service) SearchByClient(ctx context.Context, caller *domain.StaffIdentity, name string) (*models.AppointmentListResponse, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySearch
	}

	s.logger.Info("SearchByClient: staff id=%d, query=%q", caller.ID, name)

	appointments, err := s.appointmentRepo.FindByClientName(ctx, name)
	if err != nil {
		s.logger.Error("SearchByClient: repository error: %v", err)
		return nil, fmt.Errorf("%w: SearchByClient - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// ListServices возвращает каталог услуг
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// CreateService добавляет услугу в каталог. Доступно только сотрудникам
func (s *Service) CreateService(ctx context.Context, caller *domain.StaffIdentity, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	s.logger.Info("CreateService: staff id=%d, name=%q", caller.ID, req.Name)

	service, err := validateService(req)
	if err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.Create(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateName) {
			s.logger.Warn("CreateService: name %q already exists", service.Name)
			return nil, ErrServiceNameTaken
		}
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

func validateService(req *models.CreateServiceRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidService)
	}
	if req.Price < 0 || math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidService)
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidService)
	}

	var description *string
	if req.Description != nil {
		if d := strings.TrimSpace(*req.Description); d != "" {
			description = &d
		}
	}

	return &domain.Service{
		Name:            name,
		Price:           math.Round(req.Price*100) / 100,
		DurationMinutes: req.DurationMinutes,
		Description:     description,
	}, nil
}
