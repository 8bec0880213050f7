package get_available_slots

import (
	"time"

	"github.com/m04kA/barber-booking/pkg/types"
)

// Request модель запроса слотов на дату
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со слотами на дату
type Response struct {
	Date  time.Time // Запрошенная дата
	Open  bool      // false - выходной день, Slots пустой
	Slots []Slot    // Все слоты сетки в порядке возрастания
}

// Slot модель временного слота
type Slot struct {
	Time      types.TimeString // Время начала слота (например, "10:00")
	Available bool             // false - слот занят активной записью
}
