package calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Settings параметры сетки календаря, общие для всех представлений
type Settings struct {
	Slots              SlotGrid
	MatchMode          MatchMode
	PreviewLimit       int
	NarrowPreviewLimit int
	Location           *time.Location
}

// DefaultSettings сетка 09:00-18:00 с шагом 30 минут, сопоставление exact
func DefaultSettings() Settings {
	return Settings{
		Slots:              DefaultSlots(),
		MatchMode:          MatchExact,
		PreviewLimit:       domain.DefaultPreviewLimit,
		NarrowPreviewLimit: domain.NarrowPreviewLimit,
		Location:           time.UTC,
	}
}

// Today текущая дата в часовом поясе салона
func (s Settings) Today(now time.Time) time.Time {
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return DateOnly(now)
}

// Preview лимит превью записей в ячейке месяца
func (s Settings) Preview(narrow bool) int {
	if narrow {
		return s.NarrowPreviewLimit
	}
	return s.PreviewLimit
}

// NewSettings собирает параметры сетки из значений конфигурации
func NewSettings(slotStart, slotEnd string, step int, matchMode string, preview, narrowPreview int, loc *time.Location) (Settings, error) {
	slots, err := GenerateSlots(types.TimeString(slotStart), types.TimeString(slotEnd), step)
	if err != nil {
		return Settings{}, err
	}
	mode, err := ParseMatchMode(matchMode)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Slots:              slots,
		MatchMode:          mode,
		PreviewLimit:       preview,
		NarrowPreviewLimit: narrowPreview,
		Location:           loc,
	}, nil
}
