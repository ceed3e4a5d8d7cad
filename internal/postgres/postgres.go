package postgres

import (
	"fmt"

	"github.com/Juangrcode/sk-cleanup-orders/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// The UNIQUE constraint on order_number is what makes sequential numbering
// safe under concurrent creates: the losing transaction fails with 23505
// and is retried.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id            UUID PRIMARY KEY,
	order_number  BIGINT      NOT NULL UNIQUE,
	user_id       TEXT        NOT NULL,
	name          TEXT        NOT NULL,
	phone_number  TEXT        NOT NULL,
	description   TEXT        NOT NULL,
	delivery_date TIMESTAMPTZ NOT NULL,
	status        TEXT        NOT NULL DEFAULT 'received',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

func New(cfg config.Postgres) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return db, nil
}
