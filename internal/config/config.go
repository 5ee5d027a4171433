package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при невалидных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server            ServerConfig      `toml:"server"`
	Database          DatabaseConfig    `toml:"database"`
	Logs              LogsConfig        `toml:"logs"`
	Metrics           MetricsConfig     `toml:"metrics"`
	Redis             RedisConfig       `toml:"redis"`
	OnboardingService ServiceConfig     `toml:"onboarding_service"`
	HolidayService    HolidayConfig     `toml:"holiday_service"`
	Assignment        AssignmentConfig  `toml:"assignment"`
	SLA               map[string]Window `toml:"sla"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
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
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig параметры кеша праздников. Пустой Addr отключает кеш.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServiceConfig адрес внешнего сервиса (таймаут в секундах)
type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// HolidayConfig клиент календаря праздников
type HolidayConfig struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"`
	Region   string `toml:"region"`
	CacheTTL int    `toml:"cache_ttl"` // в секундах
}

// CacheTTLDuration TTL кеша праздников
func (c HolidayConfig) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// AssignmentConfig параметры автоназначения тренера
type AssignmentConfig struct {
	DefaultStrategy string `toml:"default_strategy"`
}

// Window окно SLA в рабочих днях
type Window struct {
	MinDays int `toml:"min_days"`
	MaxDays int `toml:"max_days"`
}

// DefaultSLA окна по умолчанию для категорий, не указанных в файле
var DefaultSLA = domain.SLATable{
	domain.MilestoneHardwareDelivery:     {MinDays: 3, MaxDays: 7},
	domain.MilestoneHardwareInstallation: {MinDays: 2, MaxDays: 5},
	domain.MilestoneRemoteTraining:       {MinDays: 1, MaxDays: 3},
	domain.MilestoneOnsiteTraining:       {MinDays: 2, MaxDays: 5},
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
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

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "training-service"
	}

	if c.OnboardingService.Timeout == 0 {
		c.OnboardingService.Timeout = 5
	}
	if c.HolidayService.Timeout == 0 {
		c.HolidayService.Timeout = 5
	}
	if c.HolidayService.Region == "" {
		c.HolidayService.Region = "MY"
	}
	if c.HolidayService.CacheTTL == 0 {
		c.HolidayService.CacheTTL = 24 * 60 * 60
	}

	if c.Assignment.DefaultStrategy == "" {
		c.Assignment.DefaultStrategy = string(domain.StrategyLeastRecent)
	}

	if c.SLA == nil {
		c.SLA = make(map[string]Window, len(DefaultSLA))
	}
	for milestone, w := range DefaultSLA {
		if _, ok := c.SLA[string(milestone)]; !ok {
			c.SLA[string(milestone)] = Window{MinDays: w.MinDays, MaxDays: w.MaxDays}
		}
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.OnboardingService.URL == "" {
		return fmt.Errorf("%w: onboarding_service.url is required", ErrInvalidConfig)
	}
	if c.HolidayService.URL == "" {
		return fmt.Errorf("%w: holiday_service.url is required", ErrInvalidConfig)
	}
	if _, err := domain.ParseSelectionStrategy(c.Assignment.DefaultStrategy); err != nil {
		return fmt.Errorf("%w: assignment.default_strategy: %v", ErrInvalidConfig, err)
	}
	if _, err := c.SLATable(); err != nil {
		return err
	}
	return nil
}

// SLATable конвертирует секцию sla в таблицу домена
func (c *Config) SLATable() (domain.SLATable, error) {
	table := make(domain.SLATable, len(c.SLA))
	for name, w := range c.SLA {
		milestone, err := domain.ParseMilestone(name)
		if err != nil {
			return nil, fmt.Errorf("%w: sla: %v", ErrInvalidConfig, err)
		}
		window := domain.SLAWindow{MinDays: w.MinDays, MaxDays: w.MaxDays}
		if err := window.Validate(); err != nil {
			return nil, fmt.Errorf("%w: sla.%s: %v", ErrInvalidConfig, name, err)
		}
		table[milestone] = window
	}
	return table, nil
}

// DefaultStrategy стратегия автоназначения по умолчанию
func (c *Config) DefaultStrategy() domain.SelectionStrategy {
	return domain.SelectionStrategy(c.Assignment.DefaultStrategy)
}
