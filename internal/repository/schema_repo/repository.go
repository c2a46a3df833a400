package schema_repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"sponsor_backend/internal/repository"
)

const createSponsorsTableSQL = `CREATE TABLE IF NOT EXISTS sponsors (
	id serial PRIMARY KEY,
	google_id text UNIQUE,
	name text NOT NULL,
	email text UNIQUE,
	avatar_url text,
	description text,
	is_admin boolean NOT NULL DEFAULT false,
	created_at timestamptz NOT NULL DEFAULT now()
)`

const createFamilyMembersTableSQL = `CREATE TABLE IF NOT EXISTS family_members (
	id serial PRIMARY KEY,
	sponsor_id integer NOT NULL REFERENCES sponsors (id) ON DELETE CASCADE,
	name text NOT NULL,
	email text,
	date_of_birth date,
	created_at timestamptz NOT NULL DEFAULT now()
)`

type repo struct {
	dbc *pgxpool.Pool
}

func NewSchemaRepository(dbc *pgxpool.Pool) repository.SchemaRepository {
	return &repo{
		dbc: dbc,
	}
}

// EnsureDatabase - проверяет доступность настроенной базы.
// Сама база в постгресе создается вне приложения, пул уже подключен к ней
func (r *repo) EnsureDatabase(ctx context.Context) error {
	var name string
	return r.dbc.QueryRow(ctx, "SELECT current_database()").Scan(&name)
}

// CreateSponsorsTable - идемпотентно создает таблицу спонсоров
func (r *repo) CreateSponsorsTable(ctx context.Context) error {
	_, err := r.dbc.Exec(ctx, createSponsorsTableSQL)
	return err
}

// CreateFamilyMembersTable - идемпотентно создает таблицу членов семьи
// с каскадным удалением при удалении спонсора
func (r *repo) CreateFamilyMembersTable(ctx context.Context) error {
	_, err := r.dbc.Exec(ctx, createFamilyMembersTableSQL)
	return err
}
