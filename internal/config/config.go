package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Режимы сопоставления записи со слотом календаря
const (
	MatchModeExact       = "exact"
	MatchModeContainment = "containment"
)

// Config корневая конфигурация сервиса
type Config struct {
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Server   ServerConfig   `toml:"server"`
	Redis    RedisConfig    `toml:"redis"`
	SalonAPI SalonAPIConfig `toml:"salon_api"`
	Calendar CalendarConfig `toml:"calendar"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения в формате URL (для golang-migrate)
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// ServerConfig настройки HTTP сервера (все таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// RedisConfig настройки кэша шаблонов рабочего времени
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL время жизни записи кэша
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// SalonAPIConfig удаленный API салона для веб-окружения
// Пустой URL означает, что удаленного API нет и используется PostgreSQL
type SalonAPIConfig struct {
	URL           string `toml:"url"`
	Timeout       int    `toml:"timeout"`         // секунды
	ProbeTimeout  int    `toml:"probe_timeout"`   // секунды
	ServiceUserID int64  `toml:"service_user_id"` // Значение X-User-ID для исходящих запросов
}

// CalendarConfig параметры сетки календаря
type CalendarConfig struct {
	SlotStart          string `toml:"slot_start"`
	SlotEnd            string `toml:"slot_end"`
	SlotStepMinutes    int    `toml:"slot_step_minutes"`
	MatchMode          string `toml:"match_mode"`
	PreviewLimit       int    `toml:"preview_limit"`
	NarrowPreviewLimit int    `toml:"narrow_preview_limit"`
	Timezone           string `toml:"timezone"`
}

// Location часовой пояс салона
func (c CalendarConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Load читает конфигурацию из TOML файла
// Порядок: файл -> .env (если есть) -> переменные окружения -> значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env опционален, отсутствие файла не ошибка
	_ = godotenv.Load()

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SALON_API_URL"); v != "" {
		cfg.SalonAPI.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "smc_salonservice"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.TTLSeconds == 0 {
		cfg.Redis.TTLSeconds = 600
	}

	if cfg.SalonAPI.Timeout == 0 {
		cfg.SalonAPI.Timeout = 5
	}
	if cfg.SalonAPI.ProbeTimeout == 0 {
		cfg.SalonAPI.ProbeTimeout = 2
	}
	if cfg.SalonAPI.ServiceUserID == 0 {
		cfg.SalonAPI.ServiceUserID = 1
	}

	if cfg.Calendar.SlotStart == "" {
		cfg.Calendar.SlotStart = "09:00"
	}
	if cfg.Calendar.SlotEnd == "" {
		cfg.Calendar.SlotEnd = "18:00"
	}
	if cfg.Calendar.SlotStepMinutes == 0 {
		cfg.Calendar.SlotStepMinutes = 30
	}
	if cfg.Calendar.MatchMode == "" {
		cfg.Calendar.MatchMode = MatchModeExact
	}
	if cfg.Calendar.PreviewLimit == 0 {
		cfg.Calendar.PreviewLimit = 2
	}
	if cfg.Calendar.NarrowPreviewLimit == 0 {
		cfg.Calendar.NarrowPreviewLimit = 1
	}
	if cfg.Calendar.Timezone == "" {
		cfg.Calendar.Timezone = "Asia/Seoul"
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	start, err := time.Parse("15:04", c.Calendar.SlotStart)
	if err != nil {
		return fmt.Errorf("%w: calendar.slot_start: %v", ErrInvalidConfig, err)
	}
	end, err := time.Parse("15:04", c.Calendar.SlotEnd)
	if err != nil {
		return fmt.Errorf("%w: calendar.slot_end: %v", ErrInvalidConfig, err)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: calendar.slot_start must be before slot_end", ErrInvalidConfig)
	}
	if c.Calendar.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: calendar.slot_step_minutes must be positive", ErrInvalidConfig)
	}

	switch c.Calendar.MatchMode {
	case MatchModeExact, MatchModeContainment:
	default:
		return fmt.Errorf("%w: calendar.match_mode must be %q or %q", ErrInvalidConfig, MatchModeExact, MatchModeContainment)
	}

	if c.Calendar.PreviewLimit < 0 || c.Calendar.NarrowPreviewLimit < 0 {
		return fmt.Errorf("%w: calendar preview limits must not be negative", ErrInvalidConfig)
	}

	return nil
}
