package family_repo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsor_backend/internal/model"
	"sponsor_backend/internal/repository"
)

const (
	table          = "family_members"
	colID          = "id"
	colSponsorID   = "sponsor_id"
	colName        = "name"
	colEmail       = "email"
	colDateOfBirth = "date_of_birth"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc *pgxpool.Pool
}

func NewFamilyMemberRepository(dbc *pgxpool.Pool) repository.FamilyMemberRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateFamilyMember - создает члена семьи, привязанного к спонсору.
// Возвращает ID созданной записи
func (r *repo) CreateFamilyMember(ctx context.Context, member *model.FamilyMember) (int, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colSponsorID, colName, colEmail, colDateOfBirth).
		Values(member.SponsorID, member.Name, member.Email, member.DateOfBirth).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
