package model

import "time"

// SessionStats - наблюдаемая статистика игровой сессии.
// Заполняется пользователем или пайплайном распознавания.
type SessionStats struct {
	Games    int // Общее число игр G
	BigCount int // Количество BIG бонусов
	RegCount int // Количество REG бонусов
	Diff     int // Разница монет за сессию (может быть отрицательной)
}

// StrategyResult - результат сведения баланса для одной стратегии.
// Probability равна +Inf, если попаданий не выведено.
type StrategyResult struct {
	Strategy    string
	Grapes      float64 // Выведенное число попаданий винограда (>= 0)
	GrapesRaw   float64 // До отсечения нуля; < 0 значит баланс не сошёлся
	Probability float64 // G / Grapes, "1 к N"
}

// AnalyzeInput - вход расчёта. Числовые поля приходят строками как их
// набрал пользователь; нечисловые значения приводятся к нулю.
type AnalyzeInput struct {
	ModelName string
	Games     string
	BigCount  string
	RegCount  string
	Diff      string
}

// AnalysisResult - итог одного расчёта по всем стратегиям
type AnalysisResult struct {
	ModelName  string
	Stats      SessionStats
	Strategies []StrategyResult
}

// ExtractedFields - поля, уверенно найденные в тексте распознавания.
// nil означает "не найдено": такие поля не должны затирать текущее состояние.
type ExtractedFields struct {
	ModelName *string
	Games     *int
	BigCount  *int
	RegCount  *int
	Diff      *int
}

// StoredSession - последние введённые значения сессии.
// Хранятся строками, чтобы сохранить форматирование пользователя.
type StoredSession struct {
	ModelName string
	Games     string
	BigCount  string
	RegCount  string
	Diff      string
}

// StrategySummary - краткая строка истории по одной стратегии
type StrategySummary struct {
	Strategy    string `json:"strategy"`
	Probability string `json:"probability"`
}

// HistoryEntry - запись истории расчётов (не больше 10 на пользователя)
type HistoryEntry struct {
	ModelName string
	Summary   []StrategySummary
	CreatedAt time.Time
}
