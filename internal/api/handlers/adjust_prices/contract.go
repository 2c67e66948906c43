package adjust_prices

import (
	"context"

	adjustPrices "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_prices"
)

type AdjustPricesUseCase interface {
	Execute(ctx context.Context, req *adjustPrices.Request) (*adjustPrices.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
