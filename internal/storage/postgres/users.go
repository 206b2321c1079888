package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"flare/internal/domain"
	"flare/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

func (p *UserRepo) GetByDevice(ctx context.Context, deviceID string) (*domain.User, error) {
	const op = "postgres.User.GetByDevice"

	const query = `
		SELECT device_id, name, contact
		FROM users
		WHERE device_id = $1
	`

	var u domain.User
	err := p.pool.QueryRow(ctx, query, deviceID).Scan(&u.DeviceID, &u.Name, &u.Contact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("device_id", deviceID))
		return nil, e.WrapError(ctx, op, err)
	}

	return &u, nil
}

func (p *UserRepo) Upsert(ctx context.Context, user *domain.User) error {
	const op = "postgres.User.Upsert"

	if user == nil || user.DeviceID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO users (device_id, name, contact)
		VALUES ($1, $2, $3)
		ON CONFLICT (device_id) DO UPDATE
		SET name = EXCLUDED.name, contact = EXCLUDED.contact
	`

	_, err := p.pool.Exec(ctx, query, user.DeviceID, user.Name, user.Contact)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
