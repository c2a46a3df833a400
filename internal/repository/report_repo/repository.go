package report_repo

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsor_backend/internal/model"
	"sponsor_backend/internal/repository"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Squirrel не умеет UNION, поэтому кросс-табличный поиск собран руками
const searchSQL = `SELECT 'sponsor' AS type, id, name, COALESCE(email, '') AS email
FROM sponsors
WHERE name ILIKE $1 OR email ILIKE $1
UNION ALL
SELECT 'family_member' AS type, id, name, COALESCE(email, '') AS email
FROM family_members
WHERE name ILIKE $1 OR email ILIKE $1
LIMIT $2`

type repo struct {
	dbc *pgxpool.Pool
}

func NewReportRepository(dbc *pgxpool.Pool) repository.ReportRepository {
	return &repo{
		dbc: dbc,
	}
}

// SponsorReports - возвращает спонсоров с количеством и именами членов семьи.
// Порядок имен внутри STRING_AGG не фиксирован
func (r *repo) SponsorReports(ctx context.Context) ([]model.SponsorReport, error) {
	// Формируем запрос
	query := psql.Select(
		"s.id",
		"s.name",
		"COALESCE(s.email, '')",
		"COUNT(f.id)",
		"COALESCE(STRING_AGG(f.name, ', '), '')",
	).
		From("sponsors s").
		LeftJoin("family_members f ON f.sponsor_id = s.id").
		GroupBy("s.id", "s.name", "s.email").
		OrderBy("s.id")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.SponsorReport
	for rows.Next() {
		var report model.SponsorReport
		err = rows.Scan(&report.ID, &report.Name, &report.Email, &report.FamilyCount, &report.FamilyNames)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// FamilyMemberReports - возвращает членов семьи с данными спонсора и возрастом.
// Возраст считается как разница в днях, деленная на 365
func (r *repo) FamilyMemberReports(ctx context.Context) ([]model.FamilyMemberReport, error) {
	// Формируем запрос
	query := psql.Select(
		"f.id",
		"f.name",
		"COALESCE(f.email, '')",
		"f.date_of_birth",
		"s.name",
		"COALESCE(s.email, '')",
		"(CURRENT_DATE - f.date_of_birth) / 365",
	).
		From("family_members f").
		Join("sponsors s ON s.id = f.sponsor_id").
		OrderBy("f.id")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.FamilyMemberReport
	for rows.Next() {
		var (
			report model.FamilyMemberReport
			dob    *time.Time
			age    *int
		)
		err = rows.Scan(&report.ID, &report.Name, &report.Email, &dob, &report.SponsorName, &report.SponsorEmail, &age)
		if err != nil {
			return nil, err
		}
		if dob != nil {
			report.DateOfBirth = *dob
		}
		if age != nil {
			report.Age = *age
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// Search - регистронезависимый поиск подстроки по имени и email
// в обеих таблицах, результат помечен типом записи
func (r *repo) Search(ctx context.Context, query string, limit uint64) ([]model.SearchResult, error) {
	pattern := "%" + query + "%"

	rows, err := r.dbc.Query(ctx, searchSQL, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.SearchResult
	for rows.Next() {
		var result model.SearchResult
		err = rows.Scan(&result.Type, &result.ID, &result.Name, &result.Email)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}
