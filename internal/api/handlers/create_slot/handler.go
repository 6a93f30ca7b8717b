package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "создавать слоты может только коуч или администратор"
	msgOutOfHours         = "слот должен начинаться с 09:00 до 18:00"
	msgDuplicateSlot      = "слот на это время уже существует"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	slot, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, slots.ErrPermissionDenied):
			h.logger.Warn("POST /slots - Permission denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, slots.ErrOutOfHours):
			h.logger.Warn("POST /slots - Out of hours: start_time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, slots.ErrDuplicateSlot):
			h.logger.Warn("POST /slots - Duplicate slot: date=%s, start_time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgDuplicateSlot)

		default:
			h.logger.Error("POST /slots - Failed to create slot: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%d, date=%s, start_time=%s", slot.ID, slot.Date, slot.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
