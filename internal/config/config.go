package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/barbercloud/barbercloud/internal/domain"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
)

// Переменные окружения, переопределяющие файл
const (
	EnvAPIURL    = "BARBERCLOUD_API_URL"
	EnvToken     = "BARBERCLOUD_TOKEN"
	EnvJWTSecret = "BARBERCLOUD_JWT_SECRET"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Booking   BookingConfig   `toml:"booking"`
	Remote    RemoteConfig    `toml:"remote"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres | sqlite
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // файл SQLite
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `toml:"requests_per_minute"`
	Burst             int `toml:"burst"`
	// TrustProxy брать IP клиента из X-Forwarded-For, только за своим прокси
	TrustProxy bool `toml:"trust_proxy"`
}

type BookingConfig struct {
	SlotDurationMinutes     int    `toml:"slot_duration_minutes"`
	Chairs                  int    `toml:"chairs"`
	MinBookingNoticeMinutes int    `toml:"min_booking_notice_minutes"`
	AdvanceBookingDays      int    `toml:"advance_booking_days"`
	Timezone                string `toml:"timezone"`
}

// RemoteConfig настройки CLI для обращения к API
type RemoteConfig struct {
	APIURL  string `toml:"api_url"`
	Timeout int    `toml:"timeout"` // секунды
	Token   string `toml:"token"`
}

// Load читает конфигурацию из TOML файла
// Отсутствующие значения заполняются значениями по умолчанию, переменные окружения имеют приоритет
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional как Load, но отсутствующий файл не считается ошибкой
func LoadOptional(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	return Load(path)
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	// 0 допустимое значение, поэтому задается только здесь, до чтения файла
	cfg.Booking.MinBookingNoticeMinutes = domain.DefaultMinBookingNoticeMinutes
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.Remote.APIURL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.Remote.Token = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		c.Auth.JWTSecret = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	if c.Database.Driver == "" {
		c.Database.Driver = psqlbuilder.DriverPostgres
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	setDefault(&c.Database.Port, 5432)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.Path == "" {
		c.Database.Path = "barbercloud.db"
	}
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "barbercloud"
	}

	setDefault(&c.RateLimit.RequestsPerMinute, 60)
	setDefault(&c.RateLimit.Burst, 10)

	setDefault(&c.Booking.SlotDurationMinutes, domain.DefaultSlotDurationMinutes)
	setDefault(&c.Booking.Chairs, domain.DefaultChairs)
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "America/Argentina/Buenos_Aires"
	}

	if c.Remote.APIURL == "" {
		c.Remote.APIURL = "http://localhost:8080"
	}
	setDefault(&c.Remote.Timeout, 10)
}

// Validate проверяет значения после применения умолчаний
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case psqlbuilder.DriverPostgres, psqlbuilder.DriverSQLite:
	default:
		return fmt.Errorf("%w: database.driver must be %q or %q, got %q",
			ErrInvalidConfig, psqlbuilder.DriverPostgres, psqlbuilder.DriverSQLite, c.Database.Driver)
	}

	b := c.Booking
	if b.SlotDurationMinutes < domain.MinSlotDurationMinutes || b.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: booking.slot_duration_minutes must be in %d..%d",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if b.Chairs < domain.MinChairs || b.Chairs > domain.MaxChairs {
		return fmt.Errorf("%w: booking.chairs must be in %d..%d", ErrInvalidConfig, domain.MinChairs, domain.MaxChairs)
	}
	if b.MinBookingNoticeMinutes < 0 || b.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: booking.min_booking_notice_minutes must be in 0..%d",
			ErrInvalidConfig, domain.MaxBookingNoticeMinutes)
	}
	if b.AdvanceBookingDays < 0 || b.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: booking.advance_booking_days must be in 0..%d",
			ErrInvalidConfig, domain.MaxAdvanceBookingDays)
	}
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: rate_limit values must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DSN строка подключения для драйвера из конфигурации
func (d DatabaseConfig) DSN() string {
	if d.Driver == psqlbuilder.DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Policy правила бронирования
func (b BookingConfig) Policy() domain.BookingPolicy {
	return domain.BookingPolicy{
		SlotDurationMinutes:     b.SlotDurationMinutes,
		Chairs:                  b.Chairs,
		AdvanceBookingDays:      b.AdvanceBookingDays,
		MinBookingNoticeMinutes: b.MinBookingNoticeMinutes,
	}
}

// Location часовой пояс барбершопа, при ошибке UTC
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RemoteTimeout таймаут HTTP клиента CLI
func (r RemoteConfig) RemoteTimeout() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}

// TrimmedToken токен без префикса "Bearer "
func (r RemoteConfig) TrimmedToken() string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(r.Token), "Bearer "))
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
