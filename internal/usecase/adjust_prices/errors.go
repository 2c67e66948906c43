package adjust_prices

import "errors"

var (
	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена
	ErrServiceNotFound = errors.New("adjust_prices: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("adjust_prices: internal error")
)
