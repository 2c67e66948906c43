package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	msgInternalError        = "внутренняя ошибка сервера"
	msgValidationFailed     = "ошибка валидации"
	msgConfirmationRequired = "требуется подтверждение действия (confirm=true)"
)

// ErrorResponse тело ответа с ошибкой
// Fields заполняется только для ошибок валидации
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondConfirmationRequired 412, действие не выполнено без confirm=true
func RespondConfirmationRequired(w http.ResponseWriter) {
	RespondError(w, http.StatusPreconditionFailed, msgConfirmationRequired)
}

// RespondValidationError 422 с ошибками по полям
func RespondValidationError(w http.ResponseWriter, fields domain.ValidationErrors) {
	RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: msgValidationFailed,
		Fields:  fields,
	})
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondDomainError отвечает на ошибки валидации и неподтвержденные действия
// Возвращает false, если ошибка другого типа и ответ не отправлен
func RespondDomainError(w http.ResponseWriter, err error) bool {
	var verr domain.ValidationErrors
	switch {
	case errors.As(err, &verr):
		RespondValidationError(w, verr)
		return true
	case errors.Is(err, domain.ErrConfirmationRequired):
		RespondConfirmationRequired(w)
		return true
	default:
		return false
	}
}

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
