package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
)

type pgLotRepository struct {
	db *sql.DB
}

func NewPgLotRepository(db *sql.DB) repository.LotRepository {
	return &pgLotRepository{db: db}
}

func (r *pgLotRepository) Create(ctx context.Context, lot *domain.Lot) (*domain.Lot, error) {
	query := `INSERT INTO lots (name, address, capacity, created_at, updated_at)
	          VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, lot.Name, lot.Address, lot.Capacity).
		Scan(&lot.ID, &lot.CreatedAt, &lot.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("LotRepository.Create: %w", err)
	}
	return lot, nil
}

func (r *pgLotRepository) FindByID(ctx context.Context, id int) (*domain.Lot, error) {
	lot := &domain.Lot{}
	query := `SELECT id, name, address, capacity, created_at, updated_at FROM lots WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lot.ID, &lot.Name, &lot.Address, &lot.Capacity, &lot.CreatedAt, &lot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("LotRepository.FindByID: %w", err)
	}
	return lot, nil
}

func (r *pgLotRepository) FindAll(ctx context.Context) ([]domain.Lot, error) {
	query := `SELECT id, name, address, capacity, created_at, updated_at FROM lots ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("LotRepository.FindAll: %w", err)
	}
	defer rows.Close()

	var lots []domain.Lot
	for rows.Next() {
		var lot domain.Lot
		if err := rows.Scan(&lot.ID, &lot.Name, &lot.Address, &lot.Capacity, &lot.CreatedAt, &lot.UpdatedAt); err != nil {
			return nil, fmt.Errorf("LotRepository.FindAll scan: %w", err)
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

func (r *pgLotRepository) Update(ctx context.Context, lot *domain.Lot) (*domain.Lot, error) {
	query := `UPDATE lots SET name = $2, address = $3, capacity = $4, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1 RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, lot.ID, lot.Name, lot.Address, lot.Capacity).
		Scan(&lot.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("LotRepository.Update: %w", err)
	}
	return lot, nil
}

// Delete removes the lot; gates and tariffs go with it (ON DELETE CASCADE).
func (r *pgLotRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("LotRepository.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
