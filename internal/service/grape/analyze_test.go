package grape

import (
	"context"
	"testing"

	"grape_backend/internal/middleware"
	"grape_backend/internal/model"
	"grape_backend/internal/repository/usage_repo"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// fakeTxManager прогоняет колбэк без транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSessionRepo struct {
	userID int
	stored *model.StoredSession
}

func (f *fakeSessionRepo) Get(_ context.Context, userID int) (*model.StoredSession, error) {
	if f.stored == nil || userID != f.userID {
		return nil, nil
	}
	return f.stored, nil
}

func (f *fakeSessionRepo) Upsert(_ context.Context, userID int, state *model.StoredSession) error {
	f.userID = userID
	f.stored = state
	return nil
}

type fakeHistoryRepo struct {
	entries []model.HistoryEntry
}

func (f *fakeHistoryRepo) Push(_ context.Context, _ int, entry *model.HistoryEntry) error {
	f.entries = append([]model.HistoryEntry{*entry}, f.entries...)
	return nil
}

func (f *fakeHistoryRepo) List(_ context.Context, _ int, limit int) ([]model.HistoryEntry, error) {
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func newTestService(sessionRepo *fakeSessionRepo, historyRepo *fakeHistoryRepo) *serv {
	strategies := []model.CaptureStrategy{
		{Name: "フル攻略", Cherry: 1, Bell: 1, Piero: 1},
		{Name: "チェリー狙い", Cherry: 1},
	}
	return &serv{
		machines:    []model.MachinePreset{testPreset()},
		strategies:  strategies,
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
		usageRepo:   usage_repo.NewUsageRepo(),
		txManager:   fakeTxManager{},
	}
}

func TestAnalyze(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	historyRepo := &fakeHistoryRepo{}
	s := newTestService(sessionRepo, historyRepo)

	ctx := middleware.WithUserID(context.Background(), 42)
	res, err := s.Analyze(ctx, model.AnalyzeInput{
		ModelName: "アイムジャグラーEX",
		Games:     "3000",
		BigCount:  "10",
		RegCount:  "10",
		Diff:      "0",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if res.ModelName != "アイムジャグラーEX" {
		t.Errorf("ModelName = %q", res.ModelName)
	}
	if len(res.Strategies) != 2 {
		t.Fatalf("got %d strategy results, want 2", len(res.Strategies))
	}
	if res.Stats.Games != 3000 || res.Stats.BigCount != 10 {
		t.Errorf("Stats = %+v", res.Stats)
	}

	// Состояние сессии сохраняется исходными строками, как ввёл пользователь
	if sessionRepo.stored == nil {
		t.Fatal("session state was not stored")
	}
	if sessionRepo.userID != 42 {
		t.Errorf("stored for user %d, want 42", sessionRepo.userID)
	}
	if sessionRepo.stored.Games != "3000" || sessionRepo.stored.Diff != "0" {
		t.Errorf("stored session = %+v", sessionRepo.stored)
	}

	// История пополняется сводкой по каждой стратегии
	if len(historyRepo.entries) != 1 {
		t.Fatalf("got %d history entries, want 1", len(historyRepo.entries))
	}
	entry := historyRepo.entries[0]
	if entry.ModelName != "アイムジャグラーEX" {
		t.Errorf("history ModelName = %q", entry.ModelName)
	}
	if len(entry.Summary) != 2 {
		t.Fatalf("got %d summary rows, want 2", len(entry.Summary))
	}
	if entry.Summary[1].Strategy != "チェリー狙い" {
		t.Errorf("summary[1].Strategy = %q", entry.Summary[1].Strategy)
	}
	if entry.Summary[1].Probability != "1/5.64" {
		t.Errorf("summary[1].Probability = %q", entry.Summary[1].Probability)
	}

	snap := s.usageRepo.Snapshot()
	if snap.Analyses != 1 || snap.AnalysesByName["アイムジャグラーEX"] != 1 {
		t.Errorf("usage snapshot = %+v", snap)
	}
}

func TestAnalyzeGarbageInput(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	s := newTestService(sessionRepo, &fakeHistoryRepo{})

	ctx := middleware.WithUserID(context.Background(), 7)
	res, err := s.Analyze(ctx, model.AnalyzeInput{
		ModelName: "アイムジャグラーEX",
		Games:     "не число",
		BigCount:  "",
		RegCount:  "abc",
		Diff:      "-",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Мусор в полях деградирует до нулей, расчёт всё равно выполняется
	if res.Stats != (model.SessionStats{}) {
		t.Errorf("Stats = %+v, want zeroes", res.Stats)
	}

	// А сохраняется при этом исходный ввод
	if sessionRepo.stored == nil || sessionRepo.stored.Games != "не число" {
		t.Errorf("stored session = %+v", sessionRepo.stored)
	}
}

func TestAnalyzeUnknownModel(t *testing.T) {
	s := newTestService(&fakeSessionRepo{}, &fakeHistoryRepo{})

	ctx := middleware.WithUserID(context.Background(), 7)
	_, err := s.Analyze(ctx, model.AnalyzeInput{ModelName: "ハナハナ"})
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestAnalyzeNoUserInContext(t *testing.T) {
	s := newTestService(&fakeSessionRepo{}, &fakeHistoryRepo{})

	_, err := s.Analyze(context.Background(), model.AnalyzeInput{ModelName: "アイムジャグラーEX"})
	if err == nil {
		t.Fatal("expected error without user in context")
	}
}

func TestSessionAndHistory(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	historyRepo := &fakeHistoryRepo{}
	s := newTestService(sessionRepo, historyRepo)

	ctx := middleware.WithUserID(context.Background(), 42)

	// До первого расчёта сессии нет, истории нет
	stored, err := s.Session(ctx)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if stored != nil {
		t.Errorf("Session = %+v, want nil before first analyze", stored)
	}

	_, err = s.Analyze(ctx, model.AnalyzeInput{
		ModelName: "アイムジャグラーEX",
		Games:     "3000",
		BigCount:  "10",
		RegCount:  "10",
		Diff:      "0",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	stored, err = s.Session(ctx)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if stored == nil || stored.Games != "3000" {
		t.Errorf("Session = %+v", stored)
	}

	entries, err := s.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d history entries, want 1", len(entries))
	}
}
