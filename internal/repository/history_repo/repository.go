package history_repo

import (
	"context"
	"encoding/json"
	"time"

	"grape_backend/internal/model"
	"grape_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "grape_history"
	colID        = "id"
	colUserID    = "user_id"
	colModelName = "model_name"
	colSummary   = "summary"
	colCreatedAt = "created_at"

	// Сколько записей истории держим на пользователя
	keepLimit = 10
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHistoryRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Push - добавляет запись истории и подрезает хвост до 10 записей.
// Сводка по стратегиям хранится как JSON в одной колонке
func (r *repo) Push(ctx context.Context, userID int, entry *model.HistoryEntry) error {
	summaryJSON, err := json.Marshal(entry.Summary)
	if err != nil {
		return err
	}

	// Формируем запрос на вставку
	query := sq.Insert(table).
		Columns(colUserID, colModelName, colSummary, colCreatedAt).
		Values(userID, entry.ModelName, summaryJSON, time.Now()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	// Удаляем всё, что вышло за лимит (новые записи остаются)
	trimQuery := sq.Delete(table).
		Where(sq.Expr(
			colID+" IN (SELECT "+colID+" FROM "+table+
				" WHERE "+colUserID+" = ? ORDER BY "+colCreatedAt+" DESC, "+colID+" DESC OFFSET ?)",
			userID, keepLimit,
		)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = trimQuery.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// List - возвращает записи истории пользователя, новые первыми
func (r *repo) List(ctx context.Context, userID int, limit int) ([]model.HistoryEntry, error) {
	// Формируем запрос
	query := sq.Select(colModelName, colSummary, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var summaryJSON []byte
		if err := rows.Scan(&entry.ModelName, &summaryJSON, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(summaryJSON, &entry.Summary); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
