package env

import (
	"fmt"
	"os"

	"grape_backend/internal/config"
	"grape_backend/internal/model"

	"gopkg.in/yaml.v3"
)

// YAML структура каталога (config.yaml)
type catalogYAML struct {
	Machines []struct {
		Name         string  `yaml:"name"`
		Replay       float64 `yaml:"replay"`
		Cherry       float64 `yaml:"cherry"`
		Bell         float64 `yaml:"bell"`
		Piero        float64 `yaml:"piero"`
		BigPayout    float64 `yaml:"big_payout"`
		RegPayout    float64 `yaml:"reg_payout"`
		CherryPayout float64 `yaml:"cherry_payout"`
		BellPayout   float64 `yaml:"bell_payout"`
		PieroPayout  float64 `yaml:"piero_payout"`
	} `yaml:"machines"`
	Strategies []struct {
		Name   string  `yaml:"name"`
		Cherry float64 `yaml:"cherry"`
		Bell   float64 `yaml:"bell"`
		Piero  float64 `yaml:"piero"`
	} `yaml:"strategies"`
}

type catalogConfig struct {
	machines   []model.MachinePreset
	strategies []model.CaptureStrategy
}

// NewCatalogConfigFromYAML загружает каталог моделей и таблицу стратегий.
// Порядок записей сохраняется: он же - порядок разрешения совпадений
// имени модели в тексте распознавания.
func NewCatalogConfigFromYAML(path string) (config.CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var raw catalogYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if len(raw.Machines) == 0 {
		return nil, fmt.Errorf("catalog has no machines")
	}
	if len(raw.Strategies) == 0 {
		return nil, fmt.Errorf("catalog has no strategies")
	}

	cfg := &catalogConfig{}

	for _, m := range raw.Machines {
		// Знаменатели обязаны быть положительными: на этом стоит
		// безопасность делений в расчёте
		for _, denom := range []float64{m.Replay, m.Cherry, m.Bell, m.Piero} {
			if denom < 1 {
				return nil, fmt.Errorf("machine %q: denominator %v out of range", m.Name, denom)
			}
		}
		if m.BigPayout <= 0 || m.RegPayout <= 0 {
			return nil, fmt.Errorf("machine %q: bonus payouts must be positive", m.Name)
		}

		cfg.machines = append(cfg.machines, model.MachinePreset{
			Name:         m.Name,
			ReplayRate:   m.Replay,
			CherryRate:   m.Cherry,
			BellRate:     m.Bell,
			PieroRate:    m.Piero,
			BigPayout:    m.BigPayout,
			RegPayout:    m.RegPayout,
			CherryPayout: m.CherryPayout,
			BellPayout:   m.BellPayout,
			PieroPayout:  m.PieroPayout,
		})
	}

	for _, s := range raw.Strategies {
		// Доли сбора всегда в [0,1]
		for _, capture := range []float64{s.Cherry, s.Bell, s.Piero} {
			if capture < 0 || capture > 1 {
				return nil, fmt.Errorf("strategy %q: capture %v out of [0,1]", s.Name, capture)
			}
		}

		cfg.strategies = append(cfg.strategies, model.CaptureStrategy{
			Name:   s.Name,
			Cherry: s.Cherry,
			Bell:   s.Bell,
			Piero:  s.Piero,
		})
	}

	return cfg, nil
}

func (cfg *catalogConfig) Machines() []model.MachinePreset {
	return cfg.machines
}

func (cfg *catalogConfig) Strategies() []model.CaptureStrategy {
	return cfg.strategies
}
