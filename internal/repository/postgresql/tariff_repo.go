package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
)

type pgTariffRepository struct {
	db *sql.DB
}

func NewPgTariffRepository(db *sql.DB) repository.TariffRepository {
	return &pgTariffRepository{db: db}
}

func (r *pgTariffRepository) Create(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error) {
	query := `INSERT INTO tariffs (lot_id, vehicle_type_id, rate, time_band, day_type, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		tariff.LotID, tariff.VehicleTypeID, tariff.Rate, tariff.TimeBand, tariff.DayType,
	).Scan(&tariff.ID, &tariff.CreatedAt, &tariff.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("TariffRepository.Create: %w", err)
	}
	return tariff, nil
}

func (r *pgTariffRepository) FindByID(ctx context.Context, id int) (*domain.Tariff, error) {
	tariff := &domain.Tariff{}
	query := `SELECT id, lot_id, vehicle_type_id, rate, time_band, day_type, created_at, updated_at
	          FROM tariffs WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tariff.ID, &tariff.LotID, &tariff.VehicleTypeID, &tariff.Rate,
		&tariff.TimeBand, &tariff.DayType, &tariff.CreatedAt, &tariff.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("TariffRepository.FindByID: %w", err)
	}
	return tariff, nil
}

func (r *pgTariffRepository) FindByLotID(ctx context.Context, lotID int) ([]domain.Tariff, error) {
	query := `SELECT id, lot_id, vehicle_type_id, rate, time_band, day_type, created_at, updated_at
	          FROM tariffs WHERE lot_id = $1 ORDER BY vehicle_type_id, day_type, time_band`

	rows, err := r.db.QueryContext(ctx, query, lotID)
	if err != nil {
		return nil, fmt.Errorf("TariffRepository.FindByLotID: %w", err)
	}
	defer rows.Close()

	var tariffs []domain.Tariff
	for rows.Next() {
		var t domain.Tariff
		if err := rows.Scan(&t.ID, &t.LotID, &t.VehicleTypeID, &t.Rate, &t.TimeBand, &t.DayType, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("TariffRepository.FindByLotID scan: %w", err)
		}
		tariffs = append(tariffs, t)
	}
	return tariffs, rows.Err()
}

func (r *pgTariffRepository) FindForDimensions(ctx context.Context, lotID, vehicleTypeID int, band domain.TimeBand, day domain.DayType) (*domain.Tariff, error) {
	tariff := &domain.Tariff{}
	query := `SELECT id, lot_id, vehicle_type_id, rate, time_band, day_type, created_at, updated_at
	          FROM tariffs
	          WHERE lot_id = $1 AND vehicle_type_id = $2 AND time_band = $3 AND day_type = $4`

	err := r.db.QueryRowContext(ctx, query, lotID, vehicleTypeID, band, day).Scan(
		&tariff.ID, &tariff.LotID, &tariff.VehicleTypeID, &tariff.Rate,
		&tariff.TimeBand, &tariff.DayType, &tariff.CreatedAt, &tariff.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("TariffRepository.FindForDimensions: %w", err)
	}
	return tariff, nil
}

func (r *pgTariffRepository) Update(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error) {
	query := `UPDATE tariffs SET rate = $2, time_band = $3, day_type = $4, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1 RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, tariff.ID, tariff.Rate, tariff.TimeBand, tariff.DayType).
		Scan(&tariff.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("TariffRepository.Update: %w", err)
	}
	return tariff, nil
}

func (r *pgTariffRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tariffs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("TariffRepository.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
