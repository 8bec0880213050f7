package appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment.repository: appointment not found", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга записи отсутствует в каталоге
	ErrServiceNotFound = fmt.Errorf("%w: appointment.repository: service not found", domain.ErrNotFound)

	// ErrSlotTaken возвращается, когда на дату и время уже есть активная запись
	ErrSlotTaken = fmt.Errorf("%w: appointment.repository: slot already taken", domain.ErrConflict)

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = fmt.Errorf("%w: appointment.repository: transaction error", domain.ErrStorageUnavailable)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: appointment.repository: failed to execute query", domain.ErrStorageUnavailable)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: appointment.repository: failed to scan row", domain.ErrStorageUnavailable)
)
