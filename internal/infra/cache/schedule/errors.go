package schedule

import "errors"

var (
	// ErrCacheMiss возвращается, когда графика нет в кэше
	ErrCacheMiss = errors.New("schedule.cache: cache miss")

	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("schedule.cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи в Redis
	ErrCacheWrite = errors.New("schedule.cache: failed to write")

	// ErrDecode возвращается, если закэшированное значение не разбирается
	ErrDecode = errors.New("schedule.cache: failed to decode template")
)
