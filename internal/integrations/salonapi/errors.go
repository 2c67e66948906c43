package salonapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salonapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от удаленного API
	ErrInvalidResponse = errors.New("salonapi client: invalid response")

	// ErrUnavailable возвращается, когда удаленный API не отвечает на проверку доступности
	ErrUnavailable = errors.New("salonapi client: service unavailable")

	// errNotFound ответ 404, репозитории подменяют его своей ошибкой
	errNotFound = errors.New("salonapi client: not found")
)
