package sponsor_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsor_backend/internal/model"
	"sponsor_backend/internal/repository"
)

const (
	table          = "sponsors"
	colID          = "id"
	colGoogleID    = "google_id"
	colName        = "name"
	colEmail       = "email"
	colAvatarURL   = "avatar_url"
	colDescription = "description"
	colIsAdmin     = "is_admin"
)

// Постгресовые плейсхолдеры $1, $2, ...
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSponsorRepository(dbc *pgxpool.Pool) repository.SponsorRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSponsor - создает нового спонсора в БД без привязки к Google аккаунту.
// Возвращает ID созданного спонсора
func (r *repo) CreateSponsor(ctx context.Context, sponsor *model.Sponsor) (int, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colName, colEmail, colDescription).
		Values(sponsor.Name, sponsor.Email, sponsor.Description).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpsertByGoogleID - вставляет спонсора по google ID.
// При конфликте по google ID обновляет имя, аватар и флаг администратора
func (r *repo) UpsertByGoogleID(ctx context.Context, sponsor *model.Sponsor) error {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colGoogleID, colName, colEmail, colAvatarURL, colIsAdmin).
		Values(sponsor.GoogleID, sponsor.Name, sponsor.Email, sponsor.AvatarURL, sponsor.IsAdmin).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s",
			colGoogleID,
			colName, colName,
			colAvatarURL, colAvatarURL,
			colIsAdmin, colIsAdmin,
		))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetIDByGoogleID - возвращает внутренний ID спонсора по его google ID
func (r *repo) GetIDByGoogleID(ctx context.Context, googleID string) (int, error) {
	// Формируем запрос
	query := psql.Select(colID).
		From(table).
		Where(sq.Eq{colGoogleID: googleID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("sponsor with google id %q not found", googleID)
		}
		return 0, err
	}

	return id, nil
}
