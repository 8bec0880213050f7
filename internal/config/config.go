package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/barber-booking/internal/domain"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvDBHost        = "DB_HOST"
	EnvDBPassword    = "DB_PASSWORD"
	EnvHTTPPort      = "HTTP_PORT"
	EnvAdminPassword = "ADMIN_PASSWORD"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrLoadEnv       = errors.New("config: failed to load .env file")
	ErrInvalidEnv    = errors.New("config: invalid environment value")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig таймауты указываются в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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

type LogsConfig struct {
	File  string `toml:"file"` // пусто - stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig рабочие дни, сетка слотов и горизонт записи
type ScheduleConfig struct {
	OpenDays    []string `toml:"open_days"` // monday ... sunday
	Slots       []string `toml:"slots"`     // HH:MM
	HorizonDays int      `toml:"horizon_days"`
	Timezone    string   `toml:"timezone"`
}

// AdminConfig учётная запись администратора, создаваемая при старте
// Пустой email отключает создание
type AdminConfig struct {
	Email      string `toml:"email"`
	Password   string `toml:"password"`
	Name       string `toml:"name"`
	BcryptCost int    `toml:"bcrypt_cost"`
}

// Load читает TOML файл, затем опциональный .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	days := make([]string, 0, len(domain.DefaultOpenDays))
	for _, d := range domain.DefaultOpenDays {
		days = append(days, strings.ToLower(d.String()))
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barber_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barber-booking",
		},
		Schedule: ScheduleConfig{
			OpenDays:    days,
			Slots:       append([]string(nil), domain.DefaultSlots...),
			HorizonDays: domain.DefaultHorizonDays,
			Timezone:    "UTC",
		},
		Admin: AdminConfig{
			Name: "Administrator",
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDBHost); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvAdminPassword); v != "" {
		c.Admin.Password = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	if _, err := c.Schedule.Weekdays(); err != nil {
		return err
	}
	if len(c.Schedule.Slots) == 0 {
		return fmt.Errorf("%w: schedule.slots is empty", ErrInvalidConfig)
	}
	if c.Schedule.HorizonDays <= 0 || c.Schedule.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: schedule.horizon_days must be in 1..%d", ErrInvalidConfig, domain.MaxHorizonDays)
	}
	if _, err := c.Schedule.Location(); err != nil {
		return err
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		return fmt.Errorf("%w: admin.password (or %s) is required when admin.email is set", ErrInvalidConfig, EnvAdminPassword)
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Weekdays переводит названия дней в time.Weekday
func (s ScheduleConfig) Weekdays() ([]time.Weekday, error) {
	if len(s.OpenDays) == 0 {
		return nil, fmt.Errorf("%w: schedule.open_days is empty", ErrInvalidConfig)
	}
	result := make([]time.Weekday, 0, len(s.OpenDays))
	for _, name := range s.OpenDays {
		day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidConfig, name)
		}
		result = append(result, day)
	}
	return result, nil
}

func (s ScheduleConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule.timezone %q: %v", ErrInvalidConfig, s.Timezone, err)
	}
	return loc, nil
}
