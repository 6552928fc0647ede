// Package ocr оборачивает Tesseract для распознавания скриншотов
// счетчиков данных. Для остального кода это просто "байты -> текст".
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

type Engine struct {
	client *gosseract.Client
}

// NewEngine создает OCR движок с заданными языками (обычно jpn+eng).
// Словарная коррекция выключена: цифры счетчика - не слова,
// и "исправление" их Tesseract-ом только портит результат.
func NewEngine(languages []string) (*Engine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage(languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR languages: %w", err)
	}

	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")

	return &Engine{client: client}, nil
}

// Recognize распознает текст на изображении
func (e *Engine) Recognize(image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("empty image")
	}

	if err := e.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return text, nil
}

// Close освобождает ресурсы Tesseract
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
