package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/infra/storage/pgerr"
	"github.com/m04kA/barber-booking/internal/infra/storage/schema"
	"github.com/m04kA/barber-booking/pkg/dbmetrics"
	"github.com/m04kA/barber-booking/pkg/psqlbuilder"
	"github.com/m04kA/barber-booking/pkg/txmanager"
	"github.com/m04kA/barber-booking/pkg/types"
)

// Колонки выборки записи вместе с данными услуги
var appointmentColumns = []string{
	"a.id",
	"a.client_name",
	"a.client_phone",
	"a.service_id",
	"a.appointment_date",
	"a.start_time",
	"a.status",
	"s.name",
	"s.duration_minutes",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Book атомарно создаёт запись в статусе Pending
//
// В одной транзакции:
//  1. блокирует услугу (FOR KEY SHARE), чтобы её нельзя было удалить до коммита
//  2. берёт advisory lock на пару (дата, время), сериализуя конкурирующие попытки
//  3. проверяет отсутствие активной записи на этот слот
//  4. вставляет запись
//
// Частичный уникальный индекс appointments_active_slot_uq страхует от записи в обход этого метода.
// При нарушении индекса возвращается ErrSlotTaken, а не ошибка хранилища.
func (r *Repository) Book(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	date := domain.DateOnly(a.Date)

	lockKey, err := slotLockKey(date, a.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: Book - slot lock key: %v", ErrBuildQuery, err)
	}

	var booked domain.Appointment
	err = r.txManager.Do(ctx, func(ctx context.Context) error {
		executor := dbmetrics.GetExecutor(ctx, r.db)

		serviceName, serviceDuration, err := r.lockService(ctx, executor, a.ServiceID)
		if err != nil {
			return err
		}

		if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
			return fmt.Errorf("%w: Book - acquire slot lock: %v", ErrExecQuery, err)
		}

		taken, err := r.slotTaken(ctx, executor, date, a.Time)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		query, args, err := psqlbuilder.Insert("appointments").
			Columns("client_name", "client_phone", "service_id", "appointment_date", "start_time", "status").
			Values(a.ClientName, a.ClientPhone, a.ServiceID, date.Format(domain.DateFormat), a.Time, domain.StatusPending).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Book - build insert query: %v", ErrBuildQuery, err)
		}

		booked = domain.Appointment{
			ClientName:      a.ClientName,
			ClientPhone:     a.ClientPhone,
			ServiceID:       a.ServiceID,
			Date:            date,
			Time:            a.Time,
			Status:          domain.StatusPending,
			ServiceName:     serviceName,
			ServiceDuration: serviceDuration,
		}

		err = executor.QueryRowContext(ctx, query, args...).Scan(&booked.ID, &booked.CreatedAt, &booked.UpdatedAt)
		if pgerr.IsUniqueViolation(err, schema.ActiveSlotConstraint) {
			return ErrSlotTaken
		}
		if pgerr.IsForeignKeyViolation(err) {
			return ErrServiceNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Book - execute insert: %v", ErrExecQuery, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
			return nil, fmt.Errorf("%w: Book - %v", ErrTransaction, err)
		}
		return nil, err
	}

	return &booked, nil
}

func (r *Repository) lockService(ctx context.Context, executor DBExecutor, serviceID int64) (string, int, error) {
	query, args, err := psqlbuilder.Select("name", "duration_minutes").
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		Suffix("FOR KEY SHARE").
		ToSql()
	if err != nil {
		return "", 0, fmt.Errorf("%w: Book - build service query: %v", ErrBuildQuery, err)
	}

	var (
		name     string
		duration int
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&name, &duration)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, ErrServiceNotFound
	}
	if err != nil {
		return "", 0, fmt.Errorf("%w: Book - scan service: %v", ErrScanRow, err)
	}

	return name, duration, nil
}

func (r *Repository) slotTaken(ctx context.Context, executor DBExecutor, date time.Time, t types.TimeString) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("appointments").
		Where(squirrel.Eq{
			"appointment_date": date.Format(domain.DateFormat),
			"start_time":       t,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Book - build slot query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Book - scan slot: %v", ErrScanRow, err)
	}

	return exists, nil
}

// UpdateStatus меняет статус записи
// Возвращает ErrAppointmentNotFound, если записи с таким ID нет.
// Возврат отменённой записи в активный статус на уже занятый слот даёт ErrSlotTaken.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsUniqueViolation(err, schema.ActiveSlotConstraint) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// List возвращает записи по фильтру в порядке (дата, время, id)
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	builder := selectAppointments()

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"a.appointment_date": filter.From.Format(domain.DateFormat)})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"a.appointment_date": filter.To.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"a.status": *filter.Status})
	}

	return r.query(ctx, "List", builder)
}

// FindByClientName ищет записи по подстроке имени клиента без учёта регистра
// Символы % и _ в запросе трактуются буквально
func (r *Repository) FindByClientName(ctx context.Context, fragment string) ([]*domain.Appointment, error) {
	builder := selectAppointments().
		Where(squirrel.ILike{"a.client_name": "%" + escapeLike(fragment) + "%"})

	return r.query(ctx, "FindByClientName", builder)
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.
		OrderBy("a.appointment_date ASC", "a.start_time ASC", "a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a      domain.Appointment
		date   time.Time
		status string
	)

	err := row.Scan(
		&a.ID,
		&a.ClientName,
		&a.ClientPhone,
		&a.ServiceID,
		&date,
		&a.Time,
		&status,
		&a.ServiceName,
		&a.ServiceDuration,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsed, ok := domain.ParseStatus(status)
	if !ok {
		return nil, fmt.Errorf("unknown status %q", status)
	}

	a.Date = domain.DateOnly(date)
	a.Status = parsed

	return &a, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы шаблона LIKE (экранирующий символ по умолчанию - обратный слеш)
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// slotLockKey ключ advisory lock для пары (дата, время): YYYYMMDDHHMM
func slotLockKey(date time.Time, t types.TimeString) (int64, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return 0, err
	}

	y, m, d := date.Date()
	day := int64(y)*10000 + int64(m)*100 + int64(d)

	return day*10000 + int64(minutes/60)*100 + int64(minutes%60), nil
}
