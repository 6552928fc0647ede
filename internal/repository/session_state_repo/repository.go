package session_state_repo

import (
	"context"
	"errors"

	"grape_backend/internal/model"
	"grape_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "session_state"
	colUserID    = "user_id"
	colModelName = "model_name"
	colGames     = "games"
	colBigCount  = "big_count"
	colRegCount  = "reg_count"
	colCoinDiff  = "coin_diff"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionStateRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SessionStateRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Get - возвращает последние введённые значения сессии пользователя.
// Значения хранятся строками как их набрал пользователь.
// Возвращает nil, если записи нет
func (r *repo) Get(ctx context.Context, userID int) (*model.StoredSession, error) {
	// Формируем запрос
	query := sq.Select(colModelName, colGames, colBigCount, colRegCount, colCoinDiff).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var state model.StoredSession
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&state.ModelName, &state.Games, &state.BigCount, &state.RegCount, &state.Diff)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &state, nil
}

// Upsert - сохраняет последние введённые значения сессии пользователя.
// Если записи нет, создается новая
func (r *repo) Upsert(ctx context.Context, userID int, state *model.StoredSession) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colModelName, state.ModelName).
		Set(colGames, state.Games).
		Set(colBigCount, state.BigCount).
		Set(colRegCount, state.RegCount).
		Set(colCoinDiff, state.Diff).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	rowsAffected := res.RowsAffected()

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if rowsAffected == 0 {
		insertQuery := sq.Insert(table).
			Columns(colUserID, colModelName, colGames, colBigCount, colRegCount, colCoinDiff).
			Values(userID, state.ModelName, state.Games, state.BigCount, state.RegCount, state.Diff).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}
	return nil
}
