package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// EnsureSchema 在启动时建表，唯一性约束必须由数据库保证，
// 并发请求下应用层的先查后插无法避免竞争
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id bigserial PRIMARY KEY,
			username text NOT NULL,
			password_hash text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			version integer NOT NULL DEFAULT 1,
			CONSTRAINT users_username_key UNIQUE (username)
		);

		CREATE TABLE IF NOT EXISTS employees (
			id bigserial PRIMARY KEY,
			employee_id text NOT NULL,
			name text NOT NULL,
			department text NOT NULL,
			salary double precision NOT NULL,
			joining_date date NOT NULL,
			skills jsonb NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			version integer NOT NULL DEFAULT 1,
			CONSTRAINT employees_employee_id_key UNIQUE (employee_id)
		);

		CREATE TABLE IF NOT EXISTS employee_audit_logs (
			id bigserial PRIMARY KEY,
			action text NOT NULL,
			employee_id text NOT NULL,
			actor text NOT NULL,
			occurred_at timestamptz NOT NULL
		);
	`

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, schema); err != nil {
		return err
	}

	return nil
}
