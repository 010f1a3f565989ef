// config предоставляет структуру конфигурации сайта и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сайта.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Site     SiteConfig    `yaml:"site"`
	Auth     AuthConfig    `yaml:"auth"`
	DB       DBConfig      `yaml:"db"`
	Redis    RedisConfig   `yaml:"redis"`
	S3       S3Config      `yaml:"s3"`
	SMTP     SMTPConfig    `yaml:"smtp"`
	Upload   UploadConfig  `yaml:"upload"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сайта.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
	Mail    time.Duration `yaml:"mail" env:"MAIL_TIMEOUT" env-default:"10s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// SiteConfig — внешние атрибуты сайта.
type SiteConfig struct {
	// BaseURL — внешний origin сайта; из него собираются ссылки
	// верификации в письмах (например, https://harmonie.example).
	BaseURL string `yaml:"base_url" env:"SITE_BASE_URL" env-required:"true"`
}

// AuthConfig содержит параметры magic-link аутентификации и сессий.
type AuthConfig struct {
	// MagicLinkTTL — срок жизни одноразового токена.
	MagicLinkTTL time.Duration `yaml:"magic_link_ttl" env:"MAGIC_LINK_TTL" env-default:"15m"`
	// SessionTTL — срок жизни сессии.
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"168h"`
	// SecureCookies — выставлять ли Secure на сессионных cookie;
	// выключается только в локальной разработке без TLS.
	SecureCookies bool `yaml:"secure_cookies" env:"SECURE_COOKIES" env-default:"true"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — настройки кэша страниц.
// Пустой RedisURL отключает кэширование (сайт рендерит каждый запрос).
type RedisConfig struct {
	RedisURL string `yaml:"redis_url" env:"REDIS_URL" env-default:""`
	// PageTTL — окно свежести кэшированной страницы.
	PageTTL time.Duration `yaml:"page_ttl" env:"PAGE_CACHE_TTL" env-default:"10m"`
}

// S3Config — настройки объектного хранилища фотографий (MinIO/R2).
type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT" env-required:"true"`
	RootUser      string        `yaml:"root_user" env:"S3_ROOT_USER" env-required:"true"`
	RootPassword  string        `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET" env-default:"gallery"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL" env-default:""`
}

// SMTPConfig — настройки отправки писем.
// Пустой Host отключает отправку (логин остаётся доступным через debug-ссылку вне prod).
type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:""`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME" env-default:""`
	Password string `yaml:"password" env:"SMTP_PASSWORD" env-default:""`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:""`
}

// UploadConfig — ограничения на загрузку фотографий галереи.
type UploadConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"UPLOAD_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"UPLOAD_ALLOWED_CONTENT_TYPES" env-default:"image/jpeg,image/png,image/webp"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
