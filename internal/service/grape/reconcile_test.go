package grape

import (
	"math"
	"testing"

	"grape_backend/internal/model"
)

// Пресет из расчётной таблицы アイムジャグラーEX
func testPreset() model.MachinePreset {
	return model.MachinePreset{
		Name:         "アイムジャグラーEX",
		ReplayRate:   7.298,
		CherryRate:   36,
		BellRate:     1024,
		PieroRate:    1024,
		BigPayout:    239.25,
		RegPayout:    95.25,
		CherryPayout: 2,
		BellPayout:   14,
		PieroPayout:  10,
	}
}

func TestReconcileBalance(t *testing.T) {
	// Контрольный сценарий: G=3000, BIG=10, REG=10, дифф 0,
	// чистая погоня за черри без белла и пьеро
	stats := model.SessionStats{Games: 3000, BigCount: 10, RegCount: 10, Diff: 0}
	strat := model.CaptureStrategy{Name: "チェリー狙い", Cherry: 1.0, Bell: 0, Piero: 0}

	res := Reconcile(stats, testPreset(), strat)

	if math.Abs(res.Grapes-531.89) > 0.05 {
		t.Errorf("Grapes = %v, want ~531.89", res.Grapes)
	}
	if math.Abs(res.Probability-5.64) > 0.01 {
		t.Errorf("Probability = %v, want ~5.64", res.Probability)
	}
	if res.GrapesRaw < 0 {
		t.Errorf("GrapesRaw = %v, want positive", res.GrapesRaw)
	}
}

func TestReconcileZeroGames(t *testing.T) {
	// При G=0 результат всегда нулевой, какими бы ни были дифф
	// и счётчики бонусов
	tests := []struct {
		name  string
		stats model.SessionStats
	}{
		{"all zero", model.SessionStats{}},
		{"positive diff", model.SessionStats{Diff: 800}},
		{"negative diff", model.SessionStats{Diff: -2400}},
		{"bonuses without spins", model.SessionStats{BigCount: 3, RegCount: 2}},
		{"bonuses and diff", model.SessionStats{BigCount: 1, RegCount: 1, Diff: 500}},
	}

	strategies := []model.CaptureStrategy{
		{Name: "フル攻略", Cherry: 1, Bell: 1, Piero: 1},
		{Name: "フリー打ち", Cherry: 0.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, strat := range strategies {
				res := Reconcile(tt.stats, testPreset(), strat)
				if res.Grapes != 0 {
					t.Errorf("%s: Grapes = %v, want 0", strat.Name, res.Grapes)
				}
				if res.GrapesRaw != 0 {
					t.Errorf("%s: GrapesRaw = %v, want 0", strat.Name, res.GrapesRaw)
				}
				if !math.IsInf(res.Probability, 1) {
					t.Errorf("%s: Probability = %v, want +Inf", strat.Name, res.Probability)
				}
			}
		})
	}
}

func TestReconcileClampsNegative(t *testing.T) {
	// Бонусов выплачено больше, чем вообще вложено:
	// баланс не сходится, но это не ошибка
	stats := model.SessionStats{Games: 100, BigCount: 50, RegCount: 0, Diff: 0}
	strat := model.CaptureStrategy{Name: "フル攻略", Cherry: 1, Bell: 1, Piero: 1}

	res := Reconcile(stats, testPreset(), strat)

	if res.Grapes != 0 {
		t.Errorf("Grapes = %v, want 0", res.Grapes)
	}
	if res.GrapesRaw >= 0 {
		t.Errorf("GrapesRaw = %v, want negative", res.GrapesRaw)
	}
	if !math.IsInf(res.Probability, 1) {
		t.Errorf("Probability = %v, want +Inf", res.Probability)
	}
}

func TestReconcileMonotonicInDiff(t *testing.T) {
	// Рост диффа при прочих равных никогда не уменьшает число попаданий
	strat := model.CaptureStrategy{Name: "チェリー狙い", Cherry: 1}
	prev := -1.0

	for diff := -3000; diff <= 3000; diff += 250 {
		stats := model.SessionStats{Games: 3000, BigCount: 10, RegCount: 10, Diff: diff}
		res := Reconcile(stats, testPreset(), strat)
		if res.Grapes < prev {
			t.Fatalf("diff=%d: Grapes = %v, less than previous %v", diff, res.Grapes, prev)
		}
		prev = res.Grapes
	}
}

func TestReconcileDeterministic(t *testing.T) {
	stats := model.SessionStats{Games: 2500, BigCount: 8, RegCount: 5, Diff: -300}
	strat := model.CaptureStrategy{Name: "フル攻略", Cherry: 1, Bell: 1, Piero: 1}

	first := Reconcile(stats, testPreset(), strat)
	second := Reconcile(stats, testPreset(), strat)

	if first != second {
		t.Errorf("repeated call differs: %+v vs %+v", first, second)
	}
}

func TestReconcileAll(t *testing.T) {
	stats := model.SessionStats{Games: 3000, BigCount: 10, RegCount: 10, Diff: 0}
	strategies := []model.CaptureStrategy{
		{Name: "フル攻略", Cherry: 1, Bell: 1, Piero: 1},
		{Name: "チェリー狙い", Cherry: 1},
		{Name: "フリー打ち", Cherry: 0.33},
	}

	results := ReconcileAll(stats, testPreset(), strategies)

	if len(results) != len(strategies) {
		t.Fatalf("got %d results, want %d", len(results), len(strategies))
	}
	for i, r := range results {
		if r.Strategy != strategies[i].Name {
			t.Errorf("result %d: strategy %q, want %q", i, r.Strategy, strategies[i].Name)
		}
	}

	// Чем больше собрано известных ролей, тем меньше остаётся винограду
	if results[0].Grapes > results[1].Grapes {
		t.Errorf("full capture inferred more grapes (%v) than cherry-only (%v)",
			results[0].Grapes, results[1].Grapes)
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3200", 3200},
		{" 3200 ", 3200},
		{"-1200", -1200},
		{"+500", 500},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		if got := toNumber(tt.in); got != tt.want {
			t.Errorf("toNumber(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatProbability(t *testing.T) {
	noHits := model.StrategyResult{Grapes: 0, Probability: math.Inf(1)}
	if got := FormatProbability(noHits); got != "-" {
		t.Errorf("FormatProbability(no hits) = %q, want \"-\"", got)
	}

	hits := model.StrategyResult{Grapes: 531.89, Probability: 5.6403}
	if got := FormatProbability(hits); got != "1/5.64" {
		t.Errorf("FormatProbability = %q, want \"1/5.64\"", got)
	}
}
