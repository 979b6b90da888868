package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Firebase      FirebaseConfig      `toml:"firebase"`
	Admin         AdminConfig         `toml:"admin"`
	Calendar      CalendarConfig      `toml:"calendar"`
	Pricing       PricingConfig       `toml:"pricing"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// FirebaseConfig настройки проверки ID-токенов администраторов
type FirebaseConfig struct {
	ProjectID       string `toml:"project_id"`
	CredentialsFile string `toml:"credentials_file"`
}

// Enabled возвращает true, если настроена проверка токенов через Firebase
func (f FirebaseConfig) Enabled() bool {
	return f.CredentialsFile != ""
}

// AdminConfig список email администраторов
// DevMode разрешает вход по заголовку X-Admin-Email без проверки токена, только для локальной разработки
type AdminConfig struct {
	Emails  []string `toml:"emails"`
	DevMode bool     `toml:"dev_mode"`
}

// IsAdmin проверяет email по списку без учета регистра
func (a AdminConfig) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range a.Emails {
		if strings.ToLower(strings.TrimSpace(e)) == email && email != "" {
			return true
		}
	}
	return false
}

// AdminAuthMode способ аутентификации администраторов
type AdminAuthMode string

const (
	AdminAuthFirebase AdminAuthMode = "firebase"
	AdminAuthHeader   AdminAuthMode = "header"
)

// ErrAdminAuthNotConfigured не задан ни Firebase, ни admin.dev_mode
var ErrAdminAuthNotConfigured = errors.New("admin auth is not configured: set firebase.credentials_file or admin.dev_mode = true")

// AdminAuthMode выбирает аутентификацию администраторов
// Firebase имеет приоритет, вход по заголовку возможен только при явном admin.dev_mode
func (c *Config) AdminAuthMode() (AdminAuthMode, error) {
	switch {
	case c.Firebase.Enabled():
		return AdminAuthFirebase, nil
	case c.Admin.DevMode:
		return AdminAuthHeader, nil
	default:
		return "", ErrAdminAuthNotConfigured
	}
}

// CalendarConfig календарь площадки
type CalendarConfig struct {
	Timezone string   `toml:"timezone"`
	Weekdays []string `toml:"weekdays"`
	Booked   []string `toml:"booked"`
	Hold     []string `toml:"hold"`
}

// PricingConfig настройки расчета смет
type PricingConfig struct {
	DepositRate float64 `toml:"deposit_rate"`
	CatalogFile string  `toml:"catalog_file"`
}

// NotificationsConfig настройки отправки писем
// Пустой webhook_url означает, что письма только логируются
type NotificationsConfig struct {
	WebhookURL  string `toml:"webhook_url"`
	Timeout     int    `toml:"timeout"`
	FromAddress string `toml:"from_address"`
}

// Load читает конфигурацию из TOML файла, подгружает .env и применяет переменные окружения
func Load(path string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_FILE"); v != "" {
		c.Firebase.CredentialsFile = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/app.log"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "wedding_service"
	}

	if c.Calendar.Timezone == "" {
		c.Calendar.Timezone = "America/New_York"
	}
	if len(c.Calendar.Weekdays) == 0 {
		for _, d := range domain.DefaultEventWeekdays {
			c.Calendar.Weekdays = append(c.Calendar.Weekdays, d.String())
		}
	}

	if c.Pricing.DepositRate == 0 {
		c.Pricing.DepositRate = domain.DefaultDepositRate
	}

	if c.Notifications.Timeout == 0 {
		c.Notifications.Timeout = 5
	}
}

// Validate проверяет обязательные поля и формат значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in range 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Pricing.DepositRate <= 0 || c.Pricing.DepositRate > 1 {
		return fmt.Errorf("pricing.deposit_rate must be in range (0, 1], got %v", c.Pricing.DepositRate)
	}
	if _, err := c.Calendar.ToDomain(); err != nil {
		return err
	}
	return nil
}

// ToDomain собирает календарь площадки
func (c CalendarConfig) ToDomain() (domain.Calendar, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return domain.Calendar{}, fmt.Errorf("calendar.timezone %q: %w", c.Timezone, err)
	}

	weekdays := make([]time.Weekday, 0, len(c.Weekdays))
	for _, name := range c.Weekdays {
		day, err := parseWeekday(name)
		if err != nil {
			return domain.Calendar{}, err
		}
		weekdays = append(weekdays, day)
	}

	for _, iso := range append(append([]string{}, c.Booked...), c.Hold...) {
		if _, err := time.Parse(domain.DateFormat, iso); err != nil {
			return domain.Calendar{}, fmt.Errorf("calendar: invalid date %q, expected YYYY-MM-DD", iso)
		}
	}

	return domain.NewCalendar(loc, weekdays, c.Booked, c.Hold), nil
}

func parseWeekday(name string) (time.Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if normalized == full || normalized == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("calendar: unknown weekday %q", name)
}
