package domain

import "regexp"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Параметры сетки календаря по умолчанию
const (
	DefaultSlotStart       = "09:00"
	DefaultSlotEnd         = "18:00"
	DefaultSlotStepMinutes = 30
	DefaultPreviewLimit    = 2
	NarrowPreviewLimit     = 1
)

// Business validation constants
const (
	MaxNameLength        = 100
	MaxMemoLength        = 500
	MaxServiceDuration   = 480 // 8 hours
	MaxServicesPerVisit  = 10
	MaxPercentAdjustment = 100
	MaxFixedAdjustment   = 10_000_000 // вон
	MaxColorLength       = 32
	MaxCategorySortOrder = 1000
)

// PhonePattern корейский номер телефона: 010-1234-5678, 02-123-4567, 01012345678
var PhonePattern = regexp.MustCompile(`^0\d{1,2}-?\d{3,4}-?\d{4}$`)
