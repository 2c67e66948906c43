package list_appointments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах фильтра
	ErrInvalidInput = errors.New("list_appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_appointments: internal error")
)
