package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customers.service: customer not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customers.service: internal error")
)
