package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flare/internal/domain"
	"flare/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

// Push appends the report under its station with a generated key: the one
// final write of a submission attempt. Partial records are never stored.
func (p *ReportRepo) Push(ctx context.Context, report *domain.FireReport) (string, error) {
	const op = "postgres.Report.Push"

	if report == nil || report.StationKey == "" {
		return "", fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO fire_reports (
			id, station_key, device_id, name, contact, type,
			date, report_time, latitude, longitude,
			exact_location, location, photo_payload,
			timestamp_ms, status, station_name, admin_notified, read, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	createdAt := time.UnixMilli(report.Timestamp).UTC()

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.StationKey,
		report.DeviceID,
		report.Name,
		report.Contact,
		report.Type,
		report.Date,
		report.ReportTime,
		report.Latitude,
		report.Longitude,
		report.ExactLocation,
		report.Location,
		report.PhotoPayload,
		report.Timestamp,
		report.Status,
		report.StationName,
		report.AdminNotified,
		report.Read,
		createdAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("station_key", report.StationKey),
		)
		return "", e.WrapError(ctx, op, err)
	}

	return report.ID.String(), nil
}

func (p *ReportRepo) ListByStation(ctx context.Context, stationKey string, page, limit int) ([]*domain.FireReport, int64, error) {
	const op = "postgres.Report.ListByStation"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM fire_reports WHERE station_key = $1`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, stationKey).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT id, station_key, device_id, name, contact, type,
			   date, report_time, latitude, longitude,
			   exact_location, location, photo_payload,
			   timestamp_ms, status, station_name, admin_notified, read
		FROM fire_reports
		WHERE station_key = $1
		ORDER BY timestamp_ms DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.pool.Query(ctx, listQuery, stationKey, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []*domain.FireReport
	for rows.Next() {
		var r domain.FireReport
		if err := rows.Scan(
			&r.ID,
			&r.StationKey,
			&r.DeviceID,
			&r.Name,
			&r.Contact,
			&r.Type,
			&r.Date,
			&r.ReportTime,
			&r.Latitude,
			&r.Longitude,
			&r.ExactLocation,
			&r.Location,
			&r.PhotoPayload,
			&r.Timestamp,
			&r.Status,
			&r.StationName,
			&r.AdminNotified,
			&r.Read,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		reports = append(reports, &r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return reports, total, nil
}

func (p *ReportRepo) MarkRead(ctx context.Context, reportID string) error {
	const op = "postgres.Report.MarkRead"

	id, err := uuid.Parse(reportID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		UPDATE fire_reports
		SET read = TRUE
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", reportID))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
