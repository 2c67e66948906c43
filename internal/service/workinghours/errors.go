package workinghours

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("workinghours.service: staff not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("workinghours.service: internal error")
)
