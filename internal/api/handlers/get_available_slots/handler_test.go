package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/barber-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barber-booking/pkg/logger"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Open: true,
		Slots: []getAvailableSlots.Slot{
			{Time: "09:00", Available: false},
			{Time: "09:30", Available: true},
		},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2025-06-05", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2025-06-05", resp.Date)
	assert.Equal(t, []SlotResponse{{Time: "09:00"}, {Time: "09:30", Available: true}}, resp.Slots)
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrDateInPast}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2020-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "date must not be in the past")
}
