package grape

import (
	"grape_backend/internal/model"
	"grape_backend/internal/repository"
	"grape_backend/internal/repository/usage_repo"
	"grape_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	machines   []model.MachinePreset
	strategies []model.CaptureStrategy

	sessionRepo repository.SessionStateRepository
	historyRepo repository.HistoryRepository
	usageRepo   *usage_repo.UsageRepo
	txManager   trm.Manager
}

// NewGrapeService Создать сервис расчёта винограда
func NewGrapeService(
	machines []model.MachinePreset,
	strategies []model.CaptureStrategy,
	sessionRepo repository.SessionStateRepository,
	historyRepo repository.HistoryRepository,
	usageRepo *usage_repo.UsageRepo,
	txManager trm.Manager,
) service.GrapeService {
	return &serv{
		machines:    machines,
		strategies:  strategies,
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
		usageRepo:   usageRepo,
		txManager:   txManager,
	}
}

// Machines - каталог моделей автоматов в порядке config.yaml
func (s *serv) Machines() []model.MachinePreset {
	return s.machines
}

// Strategies - таблица стратегий сбора в порядке config.yaml
func (s *serv) Strategies() []model.CaptureStrategy {
	return s.strategies
}
