package get_available_slots

import (
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

// buildSlots помечает слоты сетки, занятые активными записями
// Отменённые записи слот не занимают
func buildSlots(grid []types.TimeString, appointments []*domain.Appointment) []Slot {
	taken := make(map[types.TimeString]bool, len(appointments))
	for _, a := range appointments {
		if a.IsActive() {
			taken[a.Time] = true
		}
	}

	slots := make([]Slot, 0, len(grid))
	for _, t := range grid {
		slots = append(slots, Slot{
			Time:      t,
			Available: !taken[t],
		})
	}

	return slots
}
