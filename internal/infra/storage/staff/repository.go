package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/infra/storage/pgerr"
	"github.com/m04kA/barber-booking/pkg/dbmetrics"
	"github.com/m04kA/barber-booking/pkg/psqlbuilder"
)

var staffColumns = []string{"id", "email", "password_hash", "name"}

// Repository репозиторий учётных записей сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет учётную запись. Email хранится в нижнем регистре
func (r *Repository) Create(ctx context.Context, account *domain.StaffAccount) (*domain.StaffAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	account.Email = normalizeEmail(account.Email)

	query, args, err := psqlbuilder.Insert("staff").
		Columns("email", "password_hash", "name").
		Values(account.Email, account.PasswordHash, account.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&account.ID)
	if pgerr.IsUniqueViolation(err, "") {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return account, nil
}

// GetByEmail ищет учётную запись по email без учёта регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": normalizeEmail(email)})
}

// GetByID получает учётную запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffAccount, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.StaffAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var account domain.StaffAccount
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan staff: %v", ErrScanRow, op, err)
	}

	return &account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
