package env

import (
	"os"
	"strings"

	"grape_backend/internal/config"
)

const (
	ocrLangsEnvName = "OCR_LANGS"

	// Счетчики данных подписаны по-японски, цифры латиницей
	defaultOCRLangs = "jpn+eng"
)

type ocrConfig struct {
	langs string
}

func NewOCRConfig() (config.OCRConfig, error) {
	langs := os.Getenv(ocrLangsEnvName)
	if len(langs) == 0 {
		langs = defaultOCRLangs
	}

	return &ocrConfig{
		langs: langs,
	}, nil
}

func (cfg *ocrConfig) Languages() []string {
	return strings.Split(cfg.langs, "+")
}
