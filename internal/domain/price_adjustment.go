package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAdjustment возвращается при некорректных параметрах изменения цен
var ErrInvalidAdjustment = errors.New("domain: invalid price adjustment")

// AdjustmentType способ изменения цены
type AdjustmentType string

const (
	AdjustmentFixed   AdjustmentType = "fixed"
	AdjustmentPercent AdjustmentType = "percent"
)

// AdjustmentDirection направление изменения цены
type AdjustmentDirection string

const (
	DirectionIncrease AdjustmentDirection = "increase"
	DirectionDecrease AdjustmentDirection = "decrease"
)

// PriceAdjustment массовое изменение цен услуг
type PriceAdjustment struct {
	Type      AdjustmentType
	Value     float64
	Direction AdjustmentDirection
}

// Validate проверяет параметры изменения
func (a PriceAdjustment) Validate() error {
	if a.Type != AdjustmentFixed && a.Type != AdjustmentPercent {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidAdjustment, a.Type)
	}
	if a.Direction != DirectionIncrease && a.Direction != DirectionDecrease {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidAdjustment, a.Direction)
	}
	if math.IsNaN(a.Value) || math.IsInf(a.Value, 0) || a.Value <= 0 {
		return fmt.Errorf("%w: value must be a positive number", ErrInvalidAdjustment)
	}
	if a.Type == AdjustmentPercent && a.Value > MaxPercentAdjustment {
		return fmt.Errorf("%w: percent must not exceed %d", ErrInvalidAdjustment, MaxPercentAdjustment)
	}
	if a.Type == AdjustmentFixed && a.Value > MaxFixedAdjustment {
		return fmt.Errorf("%w: fixed amount must not exceed %d", ErrInvalidAdjustment, MaxFixedAdjustment)
	}
	return nil
}

// Apply возвращает новую цену с округлением до целого, не ниже нуля
//
// fixed +1000 к 30000 -> 31000
// percent -10 к 30000 -> 27000
func (a PriceAdjustment) Apply(price int64) int64 {
	sign := 1.0
	if a.Direction == DirectionDecrease {
		sign = -1.0
	}

	var result float64
	switch a.Type {
	case AdjustmentFixed:
		result = float64(price) + sign*a.Value
	case AdjustmentPercent:
		result = float64(price) * (1 + sign*a.Value/100)
	default:
		return price
	}

	// float64(math.MaxInt64) равен 2^63, большее значение не помещается в int64
	rounded := math.Round(result)
	switch {
	case math.IsNaN(rounded) || rounded < 0:
		return 0
	case rounded >= float64(math.MaxInt64):
		return math.MaxInt64
	}
	return int64(rounded)
}
