package grape

import (
	"math"

	"grape_backend/internal/model"
)

const (
	// Ставка за одну игру (3 монеты)
	betPerGame = 3
	// Выплата за один виноград (фиксированная, 8 монет)
	grapePayout = 8
)

// Reconcile решает уравнение баланса монет для одной стратегии.
// Чистая функция: не ошибается и не меняет никакого состояния,
// вырожденные входы сводятся к нулю/Inf, а не к панике.
//
// Баланс: вложено (за вычетом риплеев) - известные выплаты = диффу,
// остаток закрывается виноградом по 8 монет за попадание.
func Reconcile(stats model.SessionStats, preset model.MachinePreset, strat model.CaptureStrategy) model.StrategyResult {
	// Без игр выводить нечего: любой дифф при G=0 не объясняется
	// виноградом, уравнение баланса не решаем
	if stats.Games <= 0 {
		return model.StrategyResult{
			Strategy:    strat.Name,
			Grapes:      0,
			GrapesRaw:   0,
			Probability: math.Inf(1),
		}
	}

	g := float64(stats.Games)

	// Вложенные монеты без учёта возвратов риплея
	coinIn := betPerGame*g - betPerGame*(g/preset.ReplayRate)

	// Выплаты за бонусы
	outJackpots := float64(stats.BigCount)*preset.BigPayout + float64(stats.RegCount)*preset.RegPayout

	// Выплаты за малые роли с учётом доли сбора по стратегии
	outOthers := (g/preset.CherryRate)*preset.CherryPayout*strat.Cherry +
		(g/preset.BellRate)*preset.BellPayout*strat.Bell +
		(g/preset.PieroRate)*preset.PieroPayout*strat.Piero

	raw := (float64(stats.Diff) + coinIn - outJackpots - outOthers) / grapePayout
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		raw = 0
	}

	// Отрицательный результат означает, что стратегия/модель не объясняет
	// наблюдаемый баланс. Отсекаем до нуля, но сырое значение сохраняем.
	grapes := math.Max(0, raw)

	probability := math.Inf(1)
	if grapes > 0 {
		probability = g / grapes
	}

	return model.StrategyResult{
		Strategy:    strat.Name,
		Grapes:      grapes,
		GrapesRaw:   raw,
		Probability: probability,
	}
}

// ReconcileAll выполняет расчёт по каждой стратегии из таблицы.
// Результаты независимы, порядок совпадает с порядком таблицы.
func ReconcileAll(stats model.SessionStats, preset model.MachinePreset, strategies []model.CaptureStrategy) []model.StrategyResult {
	results := make([]model.StrategyResult, len(strategies))
	for i, strat := range strategies {
		results[i] = Reconcile(stats, preset, strat)
	}
	return results
}
