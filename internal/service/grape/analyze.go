package grape

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"grape_backend/internal/middleware"
	"grape_backend/internal/model"
)

// Analyze выполняет расчёт по всем стратегиям и сохраняет результат.
// Последняя введённая сессия и запись истории пишутся в одной транзакции,
// чтобы восстановление после рестарта всегда было согласованным.
func (s *serv) Analyze(ctx context.Context, in model.AnalyzeInput) (*model.AnalysisResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Ищем модель автомата в каталоге
	preset, ok := s.findMachine(in.ModelName)
	if !ok {
		return nil, fmt.Errorf("unknown machine model: %q", in.ModelName)
	}

	// Приводим введённые строки к числам. Мусор становится нулём,
	// расчёт всегда выдаёт ответ.
	stats := model.SessionStats{
		Games:    toNumber(in.Games),
		BigCount: toNumber(in.BigCount),
		RegCount: toNumber(in.RegCount),
		Diff:     toNumber(in.Diff),
	}

	results := ReconcileAll(stats, preset, s.strategies)

	// Сводка для истории: имя стратегии + форматированная вероятность
	summary := make([]model.StrategySummary, len(results))
	for i, r := range results {
		summary[i] = model.StrategySummary{
			Strategy:    r.Strategy,
			Probability: FormatProbability(r),
		}
	}

	// Начало транзакции: сохраняем состояние сессии и двигаем историю
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		err := s.sessionRepo.Upsert(txCtx, userID, &model.StoredSession{
			ModelName: preset.Name,
			Games:     in.Games,
			BigCount:  in.BigCount,
			RegCount:  in.RegCount,
			Diff:      in.Diff,
		})
		if err != nil {
			return errors.New("failed to store session state")
		}

		err = s.historyRepo.Push(txCtx, userID, &model.HistoryEntry{
			ModelName: preset.Name,
			Summary:   summary,
		})
		if err != nil {
			return errors.New("failed to push history entry")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем счётчики использования
	s.usageRepo.RecordAnalysis(preset.Name)

	return &model.AnalysisResult{
		ModelName:  preset.Name,
		Stats:      stats,
		Strategies: results,
	}, nil
}

// findMachine ищет пресет по точному имени модели
func (s *serv) findMachine(name string) (model.MachinePreset, bool) {
	for _, m := range s.machines {
		if m.Name == name {
			return m, true
		}
	}
	return model.MachinePreset{}, false
}

// toNumber приводит пользовательскую строку к числу.
// Всё, что не парсится как конечное число, становится нулём -
// расчёт деградирует, но не падает.
func toNumber(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// FormatProbability форматирует вероятность как "1/N".
// Возвращает "-", если попаданий не выведено.
func FormatProbability(r model.StrategyResult) string {
	if r.Grapes <= 0 {
		return "-"
	}
	return fmt.Sprintf("1/%.2f", r.Probability)
}
