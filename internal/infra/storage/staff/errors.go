package staff

import (
	"errors"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("%w: staff.repository: staff account not found", domain.ErrNotFound)

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = fmt.Errorf("%w: staff.repository: email already registered", domain.ErrConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: staff.repository: failed to execute query", domain.ErrStorageUnavailable)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: staff.repository: failed to scan row", domain.ErrStorageUnavailable)
)
