//go:build integration

package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"flare/internal/domain"
	"flare/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS stations (
			key text PRIMARY KEY,
			station_name text NOT NULL,
			latitude text NOT NULL,
			longitude text NOT NULL,
			status text NOT NULL,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS users (
			device_id text PRIMARY KEY,
			name text NOT NULL DEFAULT '',
			contact text NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS fire_reports (
			id uuid PRIMARY KEY,
			station_key text NOT NULL,
			device_id text NOT NULL,
			name text NOT NULL DEFAULT '',
			contact text NOT NULL DEFAULT '',
			type text NOT NULL,
			date text NOT NULL,
			report_time text NOT NULL,
			latitude double precision NOT NULL,
			longitude double precision NOT NULL,
			exact_location text NOT NULL DEFAULT '',
			location text NOT NULL DEFAULT '',
			photo_payload text NOT NULL DEFAULT '',
			timestamp_ms bigint NOT NULL,
			status text NOT NULL,
			station_name text NOT NULL DEFAULT '',
			admin_notified boolean NOT NULL DEFAULT FALSE,
			read boolean NOT NULL DEFAULT FALSE,
			created_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE stations, users, fire_reports`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func TestStationRepo_Create_SetsDefaults(t *testing.T) {
	truncateAll(t)

	repo := NewStationRepo(testPool, testLogger())

	st := &domain.Station{
		Name:      "Tagum Central",
		Latitude:  "7.447725",
		Longitude: "125.804150",
	}

	if err := repo.Create(context.Background(), st); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if st.Key == "" {
		t.Fatalf("expected generated key")
	}
	if st.Status != domain.StationActive {
		t.Fatalf("expected status=%s got=%s", domain.StationActive, st.Status)
	}

	got, err := repo.Get(context.Background(), st.Key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != st.Name || got.Latitude != st.Latitude || got.Longitude != st.Longitude {
		t.Fatalf("round-trip mismatch: got=%+v want=%+v", got, st)
	}
}

func TestStationRepo_Get_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewStationRepo(testPool, testLogger())

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestStationRepo_Update_And_SoftDelete(t *testing.T) {
	truncateAll(t)

	repo := NewStationRepo(testPool, testLogger())

	st := &domain.Station{Name: "North", Latitude: "7.5", Longitude: "125.8"}
	if err := repo.Create(context.Background(), st); err != nil {
		t.Fatalf("Create: %v", err)
	}

	st.Name = "North Renamed"
	st.Status = domain.StationInactive
	if err := repo.Update(context.Background(), st); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(context.Background(), st.Key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "North Renamed" || got.Status != domain.StationInactive {
		t.Fatalf("unexpected updated row: %+v", got)
	}

	// Delete only flips Active rows; this one is already Inactive.
	err = repo.Delete(context.Background(), st.Key)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive station, got: %v", err)
	}

	st2 := &domain.Station{Name: "South", Latitude: "7.4", Longitude: "125.8"}
	if err := repo.Create(context.Background(), st2); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(context.Background(), st2.Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Soft delete keeps the station selectable as a last-resort candidate.
	snapshot, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("soft-deleted stations must remain in the snapshot, got %d", len(snapshot))
	}
	deleted, err := repo.Get(context.Background(), st2.Key)
	if err != nil {
		t.Fatalf("Get deleted: %v", err)
	}
	if deleted.Status != domain.StationInactive {
		t.Fatalf("expected Inactive after delete, got %s", deleted.Status)
	}
}

func TestUserRepo_UpsertAndGet(t *testing.T) {
	truncateAll(t)

	repo := NewUserRepo(testPool, testLogger())

	u := &domain.User{DeviceID: "device-1", Name: "Juan", Contact: "09170000001"}
	if err := repo.Upsert(context.Background(), u); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	u.Name = "Juan Dela Cruz"
	if err := repo.Upsert(context.Background(), u); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, err := repo.GetByDevice(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("GetByDevice: %v", err)
	}
	if got.Name != "Juan Dela Cruz" || got.Contact != "09170000001" {
		t.Fatalf("unexpected user: %+v", got)
	}

	_, err = repo.GetByDevice(context.Background(), "unknown")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestReportRepo_Push_List_MarkRead(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger())

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	makeReport := func(i int) *domain.FireReport {
		r := &domain.FireReport{
			DeviceID:      fmt.Sprintf("device-%d", i),
			Name:          "Juan",
			Contact:       "09170000001",
			Type:          "House on Fire",
			Latitude:      7.447725,
			Longitude:     125.804150,
			ExactLocation: "Tagum City",
			Location:      "https://maps.example/?q=7.447725,125.80415",
			Status:        domain.ReportPending,
			StationKey:    "station-a",
			StationName:   "Tagum Central",
		}
		r.StampTimes(now.Add(time.Duration(i) * time.Minute))
		return r
	}

	var keys []string
	for i := 0; i < 3; i++ {
		key, err := repo.Push(context.Background(), makeReport(i))
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		keys = append(keys, key)
	}

	reports, total, err := repo.ListByStation(context.Background(), "station-a", 1, 2)
	if err != nil {
		t.Fatalf("ListByStation: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total=3 got=%d", total)
	}
	if len(reports) != 2 {
		t.Fatalf("expected len=2 got=%d", len(reports))
	}
	if reports[0].Timestamp < reports[1].Timestamp {
		t.Fatalf("expected newest-first ordering")
	}
	if reports[0].Read {
		t.Fatalf("fresh reports must be unread")
	}

	if err := repo.MarkRead(context.Background(), keys[0]); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	reports, _, err = repo.ListByStation(context.Background(), "station-a", 1, 10)
	if err != nil {
		t.Fatalf("ListByStation after read: %v", err)
	}
	readCount := 0
	for _, r := range reports {
		if r.Read {
			readCount++
		}
	}
	if readCount != 1 {
		t.Fatalf("expected exactly one read report, got %d", readCount)
	}
}

func TestReportRepo_Push_RequiresStation(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger())

	_, err := repo.Push(context.Background(), &domain.FireReport{})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestReportRepo_MarkRead_BadID(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger())

	if err := repo.MarkRead(context.Background(), "not-a-uuid"); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
	if err := repo.MarkRead(context.Background(), uuid.New().String()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestStatsRepo_Counts(t *testing.T) {
	truncateAll(t)

	reports := NewReportRepo(testPool, testLogger())
	stats := NewStatsRepo(testPool, testLogger())

	now := time.Now().UTC()

	push := func(device, station string, at time.Time) {
		r := &domain.FireReport{
			DeviceID:    device,
			Type:        "Grass Fire",
			Status:      domain.ReportPending,
			StationKey:  station,
			StationName: station,
		}
		r.StampTimes(at)
		if _, err := reports.Push(context.Background(), r); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	push("device-1", "station-a", now)
	push("device-1", "station-a", now.Add(-time.Minute))
	push("device-2", "station-b", now.Add(-2*time.Minute))
	push("device-3", "station-a", now.Add(-3*time.Hour)) // outside the hour window

	total, err := stats.CountReports(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountReports: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 reports in the hour, got %d", total)
	}

	unique, err := stats.CountUniqueDevices(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountUniqueDevices: %v", err)
	}
	if unique != 2 {
		t.Fatalf("expected 2 unique devices, got %d", unique)
	}

	perStation, err := stats.CountPerStation(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountPerStation: %v", err)
	}
	if perStation["station-a"] != 2 || perStation["station-b"] != 1 {
		t.Fatalf("unexpected per-station counts: %v", perStation)
	}
}
