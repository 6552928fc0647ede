package usage_repo

import (
	"sync"
)

// Снимок счётчиков использования сервиса
type UsageSnapshot struct {
	Analyses       int            // Сколько расчётов выполнено
	AnalysesByName map[string]int // Расчёты по моделям автоматов
	Extracts       int            // Сколько раз звали извлечение
	Recognized     int            // Из них с хотя бы одним найденным полем
	Empty          int            // Из них с пустым результатом
}

// Счётчики живут в памяти процесса и обнуляются на рестарте.
// Потокобезопасны: chi обслуживает запросы конкурентно.
type UsageRepo struct {
	mtx  sync.RWMutex
	data UsageSnapshot
}

// NewUsageRepo Создать репозиторий счётчиков с нулевым состоянием
func NewUsageRepo() *UsageRepo {
	return &UsageRepo{
		data: UsageSnapshot{
			AnalysesByName: make(map[string]int),
		},
	}
}

// RecordAnalysis учитывает один выполненный расчёт
func (r *UsageRepo) RecordAnalysis(modelName string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.data.Analyses++
	r.data.AnalysesByName[modelName]++
}

// RecordExtract учитывает один вызов извлечения
func (r *UsageRepo) RecordExtract(recognized bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.data.Extracts++
	if recognized {
		r.data.Recognized++
	} else {
		r.data.Empty++
	}
}

// Snapshot возвращает копию счётчиков
func (r *UsageRepo) Snapshot() UsageSnapshot {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	snap := r.data
	snap.AnalysesByName = make(map[string]int, len(r.data.AnalysesByName))
	for name, count := range r.data.AnalysesByName {
		snap.AnalysesByName[name] = count
	}
	return snap
}
