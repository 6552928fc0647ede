package config

import (
	"time"

	"grape_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// CatalogConfig - каталог моделей автоматов и таблица стратегий.
// Статичные данные: новая модель или стратегия - это строка в
// config.yaml, не изменение кода.
type CatalogConfig interface {
	Machines() []model.MachinePreset
	Strategies() []model.CaptureStrategy
}

type OCRConfig interface {
	Languages() []string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
