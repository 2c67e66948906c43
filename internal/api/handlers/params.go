package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ErrInvalidParam возвращается при некорректном параметре пути или запроса
var ErrInvalidParam = errors.New("handlers: invalid parameter")

// PathID извлекает положительный ID из пути
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return id, nil
}

// QueryInt64 опциональный целочисленный параметр запроса
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" || raw == "all" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return &v, nil
}

// QueryDate опциональная дата YYYY-MM-DD
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return &d, nil
}

// QueryBool опциональный флаг, пустое значение - false
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return v, nil
}

// IsConfirmed проверяет confirm=true для деструктивных действий
func IsConfirmed(r *http.Request) bool {
	confirmed, err := QueryBool(r, "confirm")
	return err == nil && confirmed
}
