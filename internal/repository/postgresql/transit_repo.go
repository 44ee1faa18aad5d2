package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
)

const transitColumns = `id, reference, lot_id, vehicle_id, entry_gate_id, entry_time,
	exit_gate_id, exit_time, tariff_id, amount, created_at, updated_at`

type pgTransitRepository struct {
	db *sql.DB
}

func NewPgTransitRepository(db *sql.DB) repository.TransitRepository {
	return &pgTransitRepository{db: db}
}

// OpenWithinCapacity admits and inserts in a single transaction. The lot row
// is locked first, so two concurrent opens against a lot with one space left
// cannot both pass the count check.
func (r *pgTransitRepository) OpenWithinCapacity(ctx context.Context, transit *domain.Transit) (*domain.Transit, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("TransitRepository.OpenWithinCapacity begin: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	err = tx.QueryRowContext(ctx, `SELECT capacity FROM lots WHERE id = $1 FOR UPDATE`, transit.LotID).
		Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("TransitRepository.OpenWithinCapacity lock lot: %w", err)
	}

	var openCount int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transits WHERE lot_id = $1 AND exit_time IS NULL`, transit.LotID,
	).Scan(&openCount)
	if err != nil {
		return nil, fmt.Errorf("TransitRepository.OpenWithinCapacity count open: %w", err)
	}
	if openCount >= capacity {
		return nil, repository.ErrCapacityExceeded
	}

	query := `INSERT INTO transits (reference, lot_id, vehicle_id, entry_gate_id, entry_time, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	          RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		transit.Reference, transit.LotID, transit.VehicleID, transit.EntryGateID, transit.EntryTime,
	).Scan(&transit.ID, &transit.CreatedAt, &transit.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("TransitRepository.OpenWithinCapacity insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("TransitRepository.OpenWithinCapacity commit: %w", err)
	}
	return transit, nil
}

func (r *pgTransitRepository) FindByID(ctx context.Context, id int) (*domain.Transit, error) {
	query := `SELECT ` + transitColumns + ` FROM transits WHERE id = $1`

	transit, err := scanTransit(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("TransitRepository.FindByID: %w", err)
	}
	return transit, nil
}

// Close writes the exit fields only while exit_time is still NULL. Zero rows
// affected means another closer got there first (or the id does not exist);
// the caller has already loaded the transit, so that maps to already-closed.
func (r *pgTransitRepository) Close(ctx context.Context, transit *domain.Transit) (*domain.Transit, error) {
	query := `UPDATE transits
	          SET exit_gate_id = $2, exit_time = $3, tariff_id = $4, amount = $5, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1 AND exit_time IS NULL
	          RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		transit.ID, transit.ExitGateID, transit.ExitTime, transit.TariffID, transit.Amount,
	).Scan(&transit.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTransitAlreadyClosed
		}
		return nil, fmt.Errorf("TransitRepository.Close: %w", err)
	}
	return transit, nil
}

func (r *pgTransitRepository) CountOpenByLot(ctx context.Context, lotID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transits WHERE lot_id = $1 AND exit_time IS NULL`, lotID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("TransitRepository.CountOpenByLot: %w", err)
	}
	return count, nil
}

func (r *pgTransitRepository) FindOpenByLot(ctx context.Context, lotID int) ([]domain.Transit, error) {
	query := `SELECT ` + transitColumns + ` FROM transits
	          WHERE lot_id = $1 AND exit_time IS NULL ORDER BY entry_time`

	rows, err := r.db.QueryContext(ctx, query, lotID)
	if err != nil {
		return nil, fmt.Errorf("TransitRepository.FindOpenByLot: %w", err)
	}
	defer rows.Close()
	return collectTransits(rows)
}

func (r *pgTransitRepository) FindInWindow(ctx context.Context, lotID *int, from, to time.Time) ([]domain.Transit, error) {
	query := `SELECT ` + transitColumns + ` FROM transits
	          WHERE entry_time >= $1 AND entry_time <= $2
	            AND (exit_time IS NULL OR exit_time <= $2)
	            AND ($3::int IS NULL OR lot_id = $3)
	          ORDER BY entry_time`

	var lotArg sql.NullInt64
	if lotID != nil {
		lotArg = sql.NullInt64{Int64: int64(*lotID), Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, query, from, to, lotArg)
	if err != nil {
		return nil, fmt.Errorf("TransitRepository.FindInWindow: %w", err)
	}
	defer rows.Close()
	return collectTransits(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransit(row rowScanner) (*domain.Transit, error) {
	t := &domain.Transit{}
	err := row.Scan(
		&t.ID, &t.Reference, &t.LotID, &t.VehicleID, &t.EntryGateID, &t.EntryTime,
		&t.ExitGateID, &t.ExitTime, &t.TariffID, &t.Amount, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.EntryTime = t.EntryTime.In(time.UTC)
	if t.ExitTime.Valid {
		t.ExitTime.Time = t.ExitTime.Time.In(time.UTC)
	}
	t.CreatedAt = t.CreatedAt.In(time.UTC)
	t.UpdatedAt = t.UpdatedAt.In(time.UTC)
	return t, nil
}

func collectTransits(rows *sql.Rows) ([]domain.Transit, error) {
	var transits []domain.Transit
	for rows.Next() {
		t, err := scanTransit(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transit row: %w", err)
		}
		transits = append(transits, *t)
	}
	return transits, rows.Err()
}
