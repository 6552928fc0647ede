package repository

import (
	"context"

	"grape_backend/internal/model"
)

type SessionStateRepository interface {
	// Get возвращает nil без ошибки, если записи нет
	Get(ctx context.Context, userID int) (*model.StoredSession, error)
	Upsert(ctx context.Context, userID int, state *model.StoredSession) error
}

type HistoryRepository interface {
	// Push добавляет запись и удерживает не больше 10 на пользователя
	Push(ctx context.Context, userID int, entry *model.HistoryEntry) error
	// List возвращает записи, новые первыми
	List(ctx context.Context, userID int, limit int) ([]model.HistoryEntry, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}
