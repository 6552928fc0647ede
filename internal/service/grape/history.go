package grape

import (
	"context"
	"errors"

	"grape_backend/internal/middleware"
	"grape_backend/internal/model"
)

// Максимум записей истории на пользователя
const historyLimit = 10

// Session возвращает последние введённые значения пользователя.
// nil без ошибки, если пользователь ещё ничего не считал.
func (s *serv) Session(ctx context.Context) (*model.StoredSession, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.sessionRepo.Get(ctx, userID)
}

// History возвращает до 10 последних расчётов, новые первыми
func (s *serv) History(ctx context.Context) ([]model.HistoryEntry, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.historyRepo.List(ctx, userID, historyLimit)
}
