package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roadtripai/tripsync/internal/models"
)

// Значения по умолчанию
const (
	DefaultServerURL      = "http://localhost:8080"
	DefaultSyncInterval   = 5 * time.Minute
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxRetries     = 3
	DefaultListenAddr     = ":8080"
	DefaultTokenTTL       = 24 * time.Hour
	DefaultRateLimit      = 60
	DefaultRateWindow     = time.Minute
)

// ClientConfig содержит настройки клиента синхронизации
type ClientConfig struct {
	ServerURL          string        `yaml:"server_url"`          // базовый URL сервера
	DBPath             string        `yaml:"db_path"`             // путь к локальной BoltDB базе
	ConflictResolution string        `yaml:"conflict_resolution"` // server-wins | client-wins | manual
	SyncInterval       time.Duration `yaml:"sync_interval"`       // период drain-тика
	RequestTimeout     time.Duration `yaml:"request_timeout"`     // таймаут одного HTTP запроса
	MaxRetries         int           `yaml:"max_retries"`         // попыток HTTP клиента (backoff)
}

// ServerConfig содержит настройки reference-сервера
type ServerConfig struct {
	ListenAddr string        `yaml:"listen_addr"` // адрес HTTP listener
	DBPath     string        `yaml:"db_path"`     // путь к SQLite базе
	JWTSecret  string        `yaml:"jwt_secret"`  // секрет подписи JWT
	TokenTTL   time.Duration `yaml:"token_ttl"`   // время жизни access token
	RateLimit  int           `yaml:"rate_limit"`  // запросов на окно rate limiter
	RateWindow time.Duration `yaml:"rate_window"` // окно rate limiter
}

// Config корневая конфигурация
type Config struct {
	Client ClientConfig `yaml:"client"`
	Server ServerConfig `yaml:"server"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Client: ClientConfig{
			ServerURL:          DefaultServerURL,
			DBPath:             "tripsync-client.db",
			ConflictResolution: string(models.PolicyServerWins),
			SyncInterval:       DefaultSyncInterval,
			RequestTimeout:     DefaultRequestTimeout,
			MaxRetries:         DefaultMaxRetries,
		},
		Server: ServerConfig{
			ListenAddr: DefaultListenAddr,
			DBPath:     "tripsync-server.db",
			TokenTTL:   DefaultTokenTTL,
			RateLimit:  DefaultRateLimit,
			RateWindow: DefaultRateWindow,
		},
	}
}

// Load загружает конфигурацию из YAML файла поверх значений по умолчанию.
// Если path пустой или файл не существует - возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность значений конфигурации
func (c *Config) Validate() error {
	if _, err := models.ParseConflictPolicy(c.Client.ConflictResolution); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}

	if c.Client.SyncInterval <= 0 {
		return fmt.Errorf("invalid client config: sync_interval must be positive")
	}

	if c.Client.RequestTimeout <= 0 {
		return fmt.Errorf("invalid client config: request_timeout must be positive")
	}

	if c.Client.MaxRetries < 1 {
		return fmt.Errorf("invalid client config: max_retries must be at least 1")
	}

	if c.Server.RateLimit < 1 {
		return fmt.Errorf("invalid server config: rate_limit must be at least 1")
	}

	return nil
}

// ConflictPolicy возвращает распарсенную политику разрешения конфликтов.
// Валидность значения гарантируется Validate().
func (c *ClientConfig) ConflictPolicy() models.ConflictPolicy {
	policy, err := models.ParseConflictPolicy(c.ConflictResolution)
	if err != nil {
		return models.PolicyServerWins
	}
	return policy
}
