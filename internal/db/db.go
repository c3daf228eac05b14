package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"careerquest/internal/config"
)

// NewPool abre el pool de Postgres a partir de DATABASE_URL. Lo comparten la
// API y las herramientas de linea de comandos (kiosk, seed_admin).
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Tuning conservador: una instalacion de escuela atiende a un kiosco y a
	// unos pocos counselors, no hace falta mas.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping confirma que la base responde; lo usa el chequeo de salud.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}
