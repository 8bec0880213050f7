package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/barber-booking/internal/domain"
	staffRepo "github.com/m04kA/barber-booking/internal/infra/storage/staff"
	"github.com/m04kA/barber-booking/internal/service/staff/models"
)

// bcrypt игнорирует всё после 72 байт пароля
const maxPasswordBytes = 72

// Service проверяет учётные данные сотрудников и управляет их регистрацией
type Service struct {
	repo      StaffRepository
	cost      int
	dummyHash []byte
	logger    Logger
}

// NewService создает новый экземпляр сервиса сотрудников
// cost - стоимость bcrypt, при недопустимом значении используется bcrypt.DefaultCost
func NewService(repo StaffRepository, cost int, logger Logger) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	// Хеш для сравнения при неизвестном email, чтобы время ответа не выдавало наличие учётной записи
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("barber-booking-dummy-password"), cost)

	return &Service{
		repo:      repo,
		cost:      cost,
		dummyHash: dummyHash,
		logger:    logger,
	}
}

// Authenticate проверяет email и пароль и возвращает идентичность сотрудника
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.StaffIdentity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			s.logger.Warn("Authenticate: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %w", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Authenticate: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	return &domain.StaffIdentity{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	}, nil
}

// Register создаёт учётную запись сотрудника. Доступно только сотрудникам
func (s *Service) Register(ctx context.Context, caller *domain.StaffIdentity, req *models.RegisterRequest) (*models.StaffResponse, error) {
	if caller == nil {
		return nil, ErrNotAuthenticated
	}

	s.logger.Info("Register: staff id=%d registers email=%s", caller.ID, req.Email)

	identity, err := s.create(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, ErrEmailTaken) {
			s.logger.Warn("Register: rejected email=%s: %v", req.Email, err)
		}
		return nil, err
	}

	s.logger.Info("Register: created staff id=%d", identity.ID)
	return models.FromDomainIdentity(identity), nil
}

// EnsureAdmin создаёт администратора по умолчанию, если учётной записи с таким email ещё нет
// Повторные вызовы ничего не меняют. Возвращает true, если запись была создана
func (s *Service) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, staffRepo.ErrStaffNotFound) {
		return false, fmt.Errorf("%w: EnsureAdmin - repository error: %w", ErrInternal, err)
	}

	identity, err := s.create(ctx, email, password, name)
	if errors.Is(err, ErrEmailTaken) {
		// создан параллельно другим экземпляром
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.logger.Info("EnsureAdmin: created default admin id=%d email=%s", identity.ID, identity.Email)
	return true, nil
}

func (s *Service) create(ctx context.Context, email, password, name string) (*domain.StaffIdentity, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(password) < domain.MinStaffPasswordLength {
		return nil, ErrWeakPassword
	}
	if len(password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	if len([]rune(name)) < domain.MinStaffNameLength {
		return nil, ErrInvalidName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: create - hash password: %v", ErrInternal, err)
	}

	account, err := s.repo.Create(ctx, &domain.StaffAccount{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	})
	if err != nil {
		if errors.Is(err, staffRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("create: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: create - repository error: %w", ErrInternal, err)
	}

	return &domain.StaffIdentity{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	}, nil
}
