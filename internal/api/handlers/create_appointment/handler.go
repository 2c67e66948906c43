package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgCustomerNotFound    = "клиент не найден"
	msgStaffNotFound       = "сотрудник не найден"
	msgStaffUnavailable    = "сотрудник сейчас не принимает записи"
	msgServiceNotFound     = "услуга не найдена или неактивна"
	msgSlotNotWorking      = "выбранное время нерабочее"
	msgSlotOccupied        = "выбранное время уже занято"
	msgOutsideWorkingHours = "запись заканчивается после конца рабочего дня"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			return
		}

		switch {
		case errors.Is(err, createAppointment.ErrSlotOccupied):
			h.logger.Warn("POST /appointments - Slot occupied: staff_id=%d, date=%s, time=%s", req.StaffID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, createAppointment.ErrSlotNotWorking):
			h.logger.Warn("POST /appointments - Slot not working: staff_id=%d, date=%s, time=%s", req.StaffID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotWorking)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: staff_id=%d, date=%s, time=%s", req.StaffID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrStaffUnavailable):
			h.logger.Warn("POST /appointments - Staff unavailable: staff_id=%d", req.StaffID)
			handlers.RespondConflict(w, msgStaffUnavailable)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_ids=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, staff_id=%d, error=%v",
				req.CustomerID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, customer_id=%d, staff_id=%d",
		result.ID, result.CustomerID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromAppointment(result))
}
