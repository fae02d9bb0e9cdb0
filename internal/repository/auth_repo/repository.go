package auth_repo

import (
	"context"
	"errors"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "sessions"
	colSessionID   = "session_id"
	colPlayerID    = "player_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

var ErrSessionExpired = errors.New("auth session not found or expired")

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewAuthRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateSession - создает сессию авторизации (ID, PlayerID, хэш refresh токена, ExpiresAt)
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := r.psql.Insert(table).
		Columns(colSessionID, colPlayerID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.PlayerID, session.RefreshToken, session.ExpiresAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetRefreshTokenBySessionID - хэш refresh токена живой сессии
func (r *repo) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	query := r.psql.Select(colRefreshHash).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		Where(sq.Gt{colExpiredTime: time.Now()})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var refreshHash string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&refreshHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrSessionExpired
		}
		return "", err
	}

	return refreshHash, nil
}

// DeleteSession - удаляет сессию авторизации
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	query := r.psql.Delete(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetPlayerBySessionID - игрок, которому принадлежит сессия
func (r *repo) GetPlayerBySessionID(ctx context.Context, sessionID string) (*model.Player, error) {
	query := r.psql.Select("p.id", "p.name", "p.login", "p.password_hash").
		From(table + " s").
		Join("players p ON s." + colPlayerID + " = p.id").
		Where(sq.Eq{"s." + colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Player
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &p.Name, &p.Login, &p.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	return &p, nil
}
