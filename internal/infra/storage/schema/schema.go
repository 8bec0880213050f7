package schema

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/m04kA/barber-booking/pkg/dbmetrics"
)

// ActiveSlotConstraint имя частичного уникального индекса по (дата, время) активных записей
const ActiveSlotConstraint = "appointments_active_slot_uq"

// ErrApply возвращается, если не удалось применить схему
var ErrApply = errors.New("schema: failed to apply migration")

//go:embed *.sql
var migrations embed.FS

// Apply выполняет все миграции по порядку имён файлов
// Миграции идемпотентны (IF NOT EXISTS), поэтому безопасны при каждом старте
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	names, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("%w: list migrations: %v", ErrApply, err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ErrApply, name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrApply, name, err)
		}
	}

	return nil
}
