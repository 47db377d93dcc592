package repo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool создаёт пул соединений к базе истории прогонов.
//
// DSN берётся из CONVEYOR_DB_URL. История — опциональная возможность,
// поэтому дефолтного адреса нет: без переменной окружения запись
// истории считается незапрошенной, и это ошибка конфигурации
// для --record.
func NewPool(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := os.Getenv("CONVEYOR_DB_URL")
	if dsn == "" {
		return nil, fmt.Errorf("CONVEYOR_DB_URL is not set")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 4
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}
