package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
)

type pgVehicleRepository struct {
	db *sql.DB
}

func NewPgVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &pgVehicleRepository{db: db}
}

func (r *pgVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `INSERT INTO vehicles (plate, vehicle_type_id, owner_user_id, created_at)
	          VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
	          RETURNING id, created_at`

	plate := normalizePlate(vehicle.Plate)
	err := r.db.QueryRowContext(ctx, query, plate, vehicle.VehicleTypeID, vehicle.OwnerUserID).
		Scan(&vehicle.ID, &vehicle.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("VehicleRepository.Create: %w", err)
	}
	vehicle.Plate = plate
	return vehicle, nil
}

func (r *pgVehicleRepository) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{}
	query := `SELECT id, plate, vehicle_type_id, owner_user_id, created_at FROM vehicles WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID, &vehicle.Plate, &vehicle.VehicleTypeID, &vehicle.OwnerUserID, &vehicle.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("VehicleRepository.FindByID: %w", err)
	}
	return vehicle, nil
}

func (r *pgVehicleRepository) FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{}
	query := `SELECT id, plate, vehicle_type_id, owner_user_id, created_at FROM vehicles WHERE plate = $1`

	err := r.db.QueryRowContext(ctx, query, normalizePlate(plate)).Scan(
		&vehicle.ID, &vehicle.Plate, &vehicle.VehicleTypeID, &vehicle.OwnerUserID, &vehicle.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("VehicleRepository.FindByPlate: %w", err)
	}
	return vehicle, nil
}

// Plates are stored uppercase without spaces so "ab 123 cd" and "AB123CD"
// resolve to the same vehicle.
func normalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
}
