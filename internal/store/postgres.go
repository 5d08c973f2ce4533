package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the record store gateway backed by Supabase's Postgres interface.
type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse SUPABASE_DB_URL: %w", err)
	}

	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to Supabase: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping Supabase: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.Println("✅ Connected to Supabase PostgreSQL")
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	tableSQL := `
		CREATE TABLE IF NOT EXISTS captive_portal_users (
			id BIGSERIAL PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now()
		)
	`
	_, err := s.pool.Exec(ctx, tableSQL)
	return err
}

// StoreUser inserts one signup record. Single attempt, no upsert, no retry.
func (s *Store) StoreUser(ctx context.Context, fullName, email string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO captive_portal_users (full_name, email) VALUES ($1, $2)`,
		fullName, email,
	)
	if err != nil {
		return fmt.Errorf("insert captive portal user: %w", err)
	}
	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}
