package service

import (
	"context"

	"grape_backend/internal/model"
)

type GrapeService interface {
	Analyze(ctx context.Context, in model.AnalyzeInput) (*model.AnalysisResult, error)
	Session(ctx context.Context) (*model.StoredSession, error)
	History(ctx context.Context) ([]model.HistoryEntry, error)
	Machines() []model.MachinePreset
	Strategies() []model.CaptureStrategy
}

type ExtractService interface {
	Extract(rawText string) *model.ExtractedFields
	ExtractImage(image []byte) (fields *model.ExtractedFields, rawText string, err error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
