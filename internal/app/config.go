package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config описывает настройки запуска магазина.
type Config struct {
	// CatalogPath — путь к файлу каталога.
	CatalogPath string `yaml:"catalog_path"`
	// CustomerName — имя пользователя сессии.
	CustomerName string `yaml:"customer_name"`
	// LogLevel — уровень logrus (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// MetricsFile — куда сохранить метрики сессии при выходе; пусто — не сохранять.
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig возвращает настройки по умолчанию.
func DefaultConfig() Config {
	return Config{
		CatalogPath:  "products.txt",
		CustomerName: "John Doe",
		LogLevel:     "warn",
	}
}

// Validate проверяет обязательные поля и уровень логирования.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.CatalogPath) == "" {
		errs = append(errs, errors.New("catalog_path is required"))
	}
	if strings.TrimSpace(c.CustomerName) == "" {
		errs = append(errs, errors.New("customer_name is required"))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfigFile накладывает значения из YAML-файла на base.
// Отсутствующие в файле ключи сохраняют значения base; неизвестные ключи — ошибка.
func LoadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
