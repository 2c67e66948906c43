package adjust_prices

// Request массовое изменение цен
// All = true применяет изменение ко всем активным услугам, ServiceIDs игнорируется
type Request struct {
	ServiceIDs []int64
	All        bool
	Type       string  // fixed | percent
	Value      float64 // Вон для fixed, проценты для percent
	Direction  string  // increase | decrease
}

// Change цена услуги до и после изменения
type Change struct {
	ServiceID int64
	Name      string
	Before    int64
	After     int64
}

// Response результат изменения цен
type Response struct {
	Changes []Change
	Updated int // Сколько цен реально изменилось
}
