package book_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	bookSession "github.com/m04kA/SMC-CoachingService/internal/usecase/book_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDatetime    = "некорректный формат даты и времени, ожидается YYYY-MM-DDTHH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "тема сессии обязательна и не длиннее 255 символов"
	msgOutOfHours         = "сессии проводятся только с 09:00 до 18:00"
	msgNoSuchSlot         = "на выбранное время нет слота"
	msgSlotUnavailable    = "выбранный слот уже занят"
	msgTooClose           = "между сессиями должно быть не меньше 10 минут"
)

type Handler struct {
	useCase BookSessionUseCase
	logger  Logger
}

func NewHandler(useCase BookSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /sessions - Invalid datetime %q: %v", req.Datetime, err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookSession.ErrOutOfHours):
			h.logger.Warn("POST /sessions - Out of hours: user_id=%d, datetime=%s", userID, req.Datetime)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, bookSession.ErrNoSuchSlot):
			h.logger.Warn("POST /sessions - No such slot: user_id=%d, datetime=%s", userID, req.Datetime)
			handlers.RespondNotFound(w, msgNoSuchSlot)

		case errors.Is(err, bookSession.ErrSlotUnavailable):
			h.logger.Warn("POST /sessions - Slot unavailable: user_id=%d, datetime=%s", userID, req.Datetime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, bookSession.ErrTooClose):
			h.logger.Warn("POST /sessions - Too close to another session: user_id=%d, datetime=%s", userID, req.Datetime)
			handlers.RespondConflict(w, msgTooClose)

		default:
			h.logger.Error("POST /sessions - Failed to book session: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session booked: session_id=%d, slot_id=%d, user_id=%d",
		result.ID, result.SlotID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
