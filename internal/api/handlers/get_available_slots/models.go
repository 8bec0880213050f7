package get_available_slots

import (
	"github.com/m04kA/barber-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barber-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP ответ со слотами на дату
type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Open  bool           `json:"open"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse слот с признаком доступности
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
		})
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Open:  resp.Open,
		Slots: slots,
	}
}
