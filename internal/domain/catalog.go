package domain

import "time"

// PriceOption дополнительная опция услуги с надбавкой к цене
type PriceOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Service услуга салона
type Service struct {
	ID              int64
	Name            string
	CategoryID      *int64
	Category        string
	BasePrice       int64
	DurationMinutes int
	Active          bool
	PriceOptions    []PriceOption
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Category группа услуг (только для отображения)
type Category struct {
	ID        int64
	Name      string
	Color     string
	SortOrder int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Customer клиент салона
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Email     *string
	Memo      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
