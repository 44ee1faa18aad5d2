package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"parking_transit/internal/domain"
	"parking_transit/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type pgVehicleTypeRepository struct {
	db *sql.DB
}

func NewPgVehicleTypeRepository(db *sql.DB) repository.VehicleTypeRepository {
	return &pgVehicleTypeRepository{db: db}
}

func (r *pgVehicleTypeRepository) Create(ctx context.Context, vt *domain.VehicleType) (*domain.VehicleType, error) {
	query := `INSERT INTO vehicle_types (name, created_at) VALUES ($1, CURRENT_TIMESTAMP)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, vt.Name).Scan(&vt.ID, &vt.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("VehicleTypeRepository.Create: %w", err)
	}
	return vt, nil
}

func (r *pgVehicleTypeRepository) FindByID(ctx context.Context, id int) (*domain.VehicleType, error) {
	vt := &domain.VehicleType{}
	query := `SELECT id, name, created_at FROM vehicle_types WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&vt.ID, &vt.Name, &vt.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("VehicleTypeRepository.FindByID: %w", err)
	}
	return vt, nil
}

func (r *pgVehicleTypeRepository) FindAll(ctx context.Context) ([]domain.VehicleType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM vehicle_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("VehicleTypeRepository.FindAll: %w", err)
	}
	defer rows.Close()

	var types []domain.VehicleType
	for rows.Next() {
		var vt domain.VehicleType
		if err := rows.Scan(&vt.ID, &vt.Name, &vt.CreatedAt); err != nil {
			return nil, fmt.Errorf("VehicleTypeRepository.FindAll scan: %w", err)
		}
		types = append(types, vt)
	}
	return types, rows.Err()
}

func (r *pgVehicleTypeRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("VehicleTypeRepository.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// isUniqueViolation matches Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
