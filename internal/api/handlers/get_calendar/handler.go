package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidNarrow  = "некорректное значение narrow"
	msgInvalidParams  = "некорректные параметры календаря"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	staffID, err := handlers.QueryInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	narrow, err := handlers.QueryBool(r, "narrow")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid narrow flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNarrow)
		return
	}

	req := &getCalendar.Request{
		View:     query.Get("view"),
		Date:     date,
		Action:   query.Get("action"),
		StaffID:  staffID,
		Narrow:   narrow,
		Category: query.Get("category"),
		Status:   query.Get("status"),
		Query:    query.Get("q"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: view=%s, error=%v", req.View, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built: view=%s, range=%s..%s, total=%d",
		result.View, formatDate(result.Range.Start), formatDate(result.Range.End), result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
