package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("%w: catalog.repository: service not found", domain.ErrNotFound)

	// ErrDuplicateName возвращается при попытке создать услугу с существующим именем
	ErrDuplicateName = fmt.Errorf("%w: catalog.repository: service name already exists", domain.ErrConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: catalog.repository: failed to execute query", domain.ErrStorageUnavailable)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: catalog.repository: failed to scan row", domain.ErrStorageUnavailable)
)
