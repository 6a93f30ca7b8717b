package list_slots

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidAvailable = "параметр available должен быть true или false"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), available (опционально, только свободные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	onlyAvailable := false
	if availableStr := r.URL.Query().Get("available"); availableStr != "" {
		onlyAvailable, err = strconv.ParseBool(availableStr)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid available flag: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAvailable)
			return
		}
	}

	result, err := h.service.ListByDate(r.Context(), date, onlyAvailable)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots retrieved: date=%s, count=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
