package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/infra/storage/pgerr"
	"github.com/m04kA/barber-booking/pkg/dbmetrics"
	"github.com/m04kA/barber-booking/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"price",
	"duration_minutes",
	"description",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все услуги в порядке id
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes, &s.Description); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes, &s.Description)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Create добавляет услугу в каталог
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "price", "duration_minutes", "description").
		Values(service.Name, service.Price, service.DurationMinutes, service.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.ID)
	if pgerr.IsUniqueViolation(err, "") {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return service, nil
}

// Seed добавляет услуги, которых ещё нет в каталоге (сравнение по имени)
// Повторный вызов не создаёт дубликатов. Возвращает количество добавленных услуг
func (r *Repository) Seed(ctx context.Context, services []domain.Service) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inserted := 0
	for _, s := range services {
		query, args, err := psqlbuilder.Insert("services").
			Columns("name", "price", "duration_minutes", "description").
			Values(s.Name, s.Price, s.DurationMinutes, s.Description).
			Suffix("ON CONFLICT (name) DO NOTHING").
			ToSql()
		if err != nil {
			return inserted, fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("%w: Seed - insert %q: %v", ErrExecQuery, s.Name, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("%w: Seed - get rows affected: %v", ErrExecQuery, err)
		}
		inserted += int(affected)
	}

	return inserted, nil
}
