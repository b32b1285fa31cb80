package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/app"
	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/version"
)

const (
	envConfigFile   = "SHOPCART_CONFIG"
	envCatalogPath  = "SHOPCART_CATALOG"
	envCustomerName = "SHOPCART_CUSTOMER"
	envLogLevel     = "SHOPCART_LOG_LEVEL"
	envMetricsFile  = "SHOPCART_METRICS_FILE"
)

// setupLogger настраивает формат логирования. Логи пишутся в stderr, чтобы не смешиваться с меню.
func setupLogger() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.WarnLevel)
}

// readConfigFromEnv формирует конфигурацию: значения по умолчанию, затем YAML-файл, затем переменные окружения.
// Некорректные переопределения игнорируются и возвращаются как предупреждения.
func readConfigFromEnv(lookup func(string) (string, bool)) (app.Config, []string, error) {
	cfg := app.DefaultConfig()
	var warnings []string

	if path, ok := lookupTrimmed(lookup, envConfigFile); ok {
		loaded, err := app.LoadConfigFile(path, cfg)
		if err != nil {
			return cfg, nil, err
		}
		cfg = loaded
	}

	if v, ok := lookupTrimmed(lookup, envCatalogPath); ok {
		cfg.CatalogPath = v
	}
	if v, ok := lookupTrimmed(lookup, envCustomerName); ok {
		cfg.CustomerName = v
	}
	if v, ok := lookupTrimmed(lookup, envLogLevel); ok {
		if _, err := log.ParseLevel(v); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q ignored: %v", envLogLevel, v, err))
		} else {
			cfg.LogLevel = strings.ToLower(v)
		}
	}
	if v, ok := lookupTrimmed(lookup, envMetricsFile); ok {
		cfg.MetricsFile = v
	}

	return cfg, warnings, nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// userMessage возвращает текст фатальной ошибки для консоли.
func userMessage(err error) string {
	if errors.Is(err, domain.ErrCatalogUnavailable) {
		return "Failed to open the products file."
	}
	return err.Error()
}

// loadDotEnv подхватывает .env из рабочего каталога, если он есть.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("failed to load .env file")
	}
}

func main() {
	setupLogger()
	loadDotEnv()

	cfg, warnings, err := readConfigFromEnv(os.LookupEnv)
	if err != nil {
		log.WithError(err).Fatal("некорректная конфигурация")
	}
	for _, w := range warnings {
		log.Warn(w)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"catalog": cfg.CatalogPath,
		"version": version.String(),
	}).Info("запускаем shopcart")

	if err := app.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("сессия прервана сигналом")
		} else {
			log.WithError(err).Error("сессия завершилась с ошибкой")
			fmt.Printf("Error: %s\n", userMessage(err))
		}
	}

	log.Info("shopcart остановлен")
}
