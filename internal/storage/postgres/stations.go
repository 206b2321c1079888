package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"flare/internal/domain"
	"flare/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStationRepo(pool *pgxpool.Pool, logger *slog.Logger) *StationRepo {
	return &StationRepo{pool: pool, logger: logger}
}

func (p *StationRepo) Create(ctx context.Context, station *domain.Station) error {
	const op = "postgres.Station.Create"

	const query = `
		INSERT INTO stations (key, station_name, latitude, longitude, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if station.Key == "" {
		station.Key = uuid.New().String()
	}
	if station.Status == "" {
		station.Status = domain.StationActive
	}

	_, err := p.pool.Exec(ctx, query,
		station.Key,
		station.Name,
		station.Latitude,
		station.Longitude,
		station.Status,
		time.Now().UTC(),
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// Snapshot returns every station, active or not, for one submission attempt.
func (p *StationRepo) Snapshot(ctx context.Context) ([]domain.Station, error) {
	const op = "postgres.Station.Snapshot"

	const query = `
		SELECT key, station_name, latitude, longitude, status
		FROM stations
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var stations []domain.Station
	for rows.Next() {
		var st domain.Station
		if err := rows.Scan(&st.Key, &st.Name, &st.Latitude, &st.Longitude, &st.Status); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return stations, nil
}

func (p *StationRepo) List(ctx context.Context) ([]domain.Station, error) {
	return p.Snapshot(ctx)
}

func (p *StationRepo) Get(ctx context.Context, key string) (*domain.Station, error) {
	const op = "postgres.Station.Get"

	const query = `
		SELECT key, station_name, latitude, longitude, status
		FROM stations
		WHERE key = $1
	`

	var st domain.Station
	err := p.pool.QueryRow(ctx, query, key).Scan(&st.Key, &st.Name, &st.Latitude, &st.Longitude, &st.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("key", key))
		return nil, e.WrapError(ctx, op, err)
	}

	return &st, nil
}

func (p *StationRepo) Update(ctx context.Context, station *domain.Station) error {
	const op = "postgres.Station.Update"

	const query = `
		UPDATE stations
		SET station_name = $2,
			latitude     = $3,
			longitude    = $4,
			status       = $5
		WHERE key = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		station.Key,
		station.Name,
		station.Latitude,
		station.Longitude,
		station.Status,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("key", station.Key))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *StationRepo) Delete(ctx context.Context, key string) error {
	const op = "postgres.Station.Delete"

	// Soft delete: deactivated stations stay selectable as a last resort.
	const query = `
		UPDATE stations
		SET status = 'Inactive'
		WHERE key = $1 AND status = 'Active'
	`

	cmd, err := p.pool.Exec(ctx, query, key)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("key", key))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
