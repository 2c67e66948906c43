package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс логгера для access log
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос
// 5xx уходят в Error, 4xx в Warn
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			status := rec.statusCode()
			format := "%s %s - status=%d, bytes=%d, duration_ms=%d, request_id=%s"
			args := []interface{}{
				r.Method, r.URL.Path, status, rec.bytes,
				time.Since(start).Milliseconds(), GetRequestID(r.Context()),
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error(format, args...)
			case status >= http.StatusBadRequest:
				logger.Warn(format, args...)
			default:
				logger.Info(format, args...)
			}
		})
	}
}
