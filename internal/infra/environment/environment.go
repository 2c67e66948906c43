package environment

import (
	"context"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/config"
)

// Kind окружение, в котором работают репозитории клиентов и записей
type Kind string

const (
	// KindLocal PostgreSQL этого сервиса
	KindLocal Kind = "local"
	// KindRemote удаленный API салона
	KindRemote Kind = "remote"
)

// Prober проверка доступности удаленного API
type Prober interface {
	Health(ctx context.Context) error
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Detect выбирает окружение один раз при старте
// KindRemote только если URL задан и проверка здоровья прошла за ProbeTimeout
func Detect(ctx context.Context, cfg config.SalonAPIConfig, prober Prober, log Logger) Kind {
	if strings.TrimSpace(cfg.URL) == "" || prober == nil {
		log.Info("Environment detected: kind=%s (salon_api.url is empty)", KindLocal)
		return KindLocal
	}

	probeCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ProbeTimeout)*time.Second)
	defer cancel()

	if err := prober.Health(probeCtx); err != nil {
		log.Warn("Environment detected: kind=%s (salon API %s unavailable: %v)", KindLocal, cfg.URL, err)
		return KindLocal
	}

	log.Info("Environment detected: kind=%s (salon API %s)", KindRemote, cfg.URL)
	return KindRemote
}
