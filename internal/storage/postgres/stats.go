package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"flare/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountReports(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountReports"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(*)
		FROM fire_reports
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

func (p *StatsRepo) CountUniqueDevices(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountUniqueDevices"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(DISTINCT device_id)
		FROM fire_reports
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

func (p *StatsRepo) CountPerStation(ctx context.Context, minutes int) (map[string]int64, error) {
	const op = "postgres.Stats.CountPerStation"

	if minutes <= 0 || minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT station_name, COUNT(*)
		FROM fire_reports
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
		GROUP BY station_name
	`

	rows, err := p.pool.Query(ctx, query, minutes)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var name string
		var cnt int64
		if err := rows.Scan(&name, &cnt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		counts[name] = cnt
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}
