package extract

import (
	"fmt"
	"strconv"
	"strings"

	"grape_backend/internal/model"
	"grape_backend/internal/repository/usage_repo"
	"grape_backend/internal/service"
)

// Recognizer - внешний OCR движок: байты изображения на входе,
// распознанный текст на выходе. Для пайплайна это чёрный ящик.
type Recognizer interface {
	Recognize(image []byte) (string, error)
}

type serv struct {
	machines   []model.MachinePreset
	recognizer Recognizer
	usageRepo  *usage_repo.UsageRepo
}

// NewExtractService Создать сервис извлечения полей из текста OCR
func NewExtractService(machines []model.MachinePreset, recognizer Recognizer, usageRepo *usage_repo.UsageRepo) service.ExtractService {
	return &serv{
		machines:   machines,
		recognizer: recognizer,
		usageRepo:  usageRepo,
	}
}

// Extract разбирает сырой текст распознавания на поля сессии.
// Возвращает nil, если не найдено ни одного числового поля: вызывающему
// стоит попросить более чёткий снимок, это не ошибка. Имя модели само
// по себе результатом не считается.
func (s *serv) Extract(rawText string) *model.ExtractedFields {
	text := Normalize(rawText)
	fields := &model.ExtractedFields{}

	// Имя модели: вычищаем пробелы с обеих сторон и проверяем вхождение.
	// Побеждает первая модель в порядке каталога - порядок таблицы
	// здесь намеренное правило разрешения, имена моделей на практике
	// не пересекаются как подстроки.
	compact := strings.ReplaceAll(text, " ", "")
	for _, m := range s.machines {
		name := strings.ToLower(strings.ReplaceAll(m.Name, " ", ""))
		if name != "" && strings.Contains(compact, name) {
			found := m.Name
			fields.ModelName = &found
			break
		}
	}

	// Поля независимы: каждое ищется своим списком шаблонов
	if v, ok := firstMatch(text, gamePatterns); ok {
		fields.Games = intPtr(v)
	}
	if v, ok := firstMatch(text, bigPatterns); ok {
		fields.BigCount = intPtr(v)
	}
	if v, ok := firstMatch(text, regPatterns); ok {
		fields.RegCount = intPtr(v)
	}
	if v, ok := firstMatch(text, diffPatterns); ok {
		fields.Diff = intPtr(v)
	}

	recognized := fields.Games != nil || fields.BigCount != nil ||
		fields.RegCount != nil || fields.Diff != nil

	if s.usageRepo != nil {
		s.usageRepo.RecordExtract(recognized)
	}

	if !recognized {
		return nil
	}
	return fields
}

// ExtractImage прогоняет изображение через OCR и разбирает текст.
// Ошибка OCR отдаётся наверх как есть - прежние данные сессии
// вызывающий не трогает.
func (s *serv) ExtractImage(image []byte) (*model.ExtractedFields, string, error) {
	rawText, err := s.recognizer.Recognize(image)
	if err != nil {
		return nil, "", fmt.Errorf("ocr recognition failed: %w", err)
	}

	return s.Extract(rawText), rawText, nil
}

func intPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
