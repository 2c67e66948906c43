package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff.service: staff not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("staff.service: internal error")
)
