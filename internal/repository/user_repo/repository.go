package user_repo

import (
	"context"
	"errors"
	"fmt"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "players"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"
)

var ErrPlayerNotFound = errors.New("player not found")

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreatePlayer - создает игрока в БД, внутри транзакции из ctx, если она есть.
// Возвращает ID созданного игрока
func (r *repo) CreatePlayer(ctx context.Context, player *model.Player) (int, error) {
	query := r.psql.Insert(table).
		Columns(colName, colLogin, colPasswordHash).
		Values(player.Name, player.Login, player.Password).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create player %q: %w", player.Login, err)
	}

	return id, nil
}

// GetPlayerByLogin - возвращает игрока (ID, Name, Login, хэш пароля) по логину
func (r *repo) GetPlayerByLogin(ctx context.Context, login string) (*model.Player, error) {
	query := r.psql.Select(colID, colName, colLogin, colPasswordHash).
		From(table).
		Where(sq.Eq{colLogin: login})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Player
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &p.Name, &p.Login, &p.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return &p, nil
}
