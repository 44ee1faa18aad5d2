package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
)

type pgGateRepository struct {
	db *sql.DB
}

func NewPgGateRepository(db *sql.DB) repository.GateRepository {
	return &pgGateRepository{db: db}
}

func (r *pgGateRepository) Create(ctx context.Context, gate *domain.Gate) (*domain.Gate, error) {
	query := `INSERT INTO gates (lot_id, name, direction, bidirectional, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, gate.LotID, gate.Name, gate.Direction, gate.Bidirectional).
		Scan(&gate.ID, &gate.CreatedAt, &gate.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("GateRepository.Create: %w", err)
	}
	return gate, nil
}

func (r *pgGateRepository) FindByID(ctx context.Context, id int) (*domain.Gate, error) {
	gate := &domain.Gate{}
	query := `SELECT id, lot_id, name, direction, bidirectional, created_at, updated_at
	          FROM gates WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&gate.ID, &gate.LotID, &gate.Name, &gate.Direction, &gate.Bidirectional,
		&gate.CreatedAt, &gate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("GateRepository.FindByID: %w", err)
	}
	return gate, nil
}

func (r *pgGateRepository) FindByLotID(ctx context.Context, lotID int) ([]domain.Gate, error) {
	query := `SELECT id, lot_id, name, direction, bidirectional, created_at, updated_at
	          FROM gates WHERE lot_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, lotID)
	if err != nil {
		return nil, fmt.Errorf("GateRepository.FindByLotID: %w", err)
	}
	defer rows.Close()

	var gates []domain.Gate
	for rows.Next() {
		var g domain.Gate
		if err := rows.Scan(&g.ID, &g.LotID, &g.Name, &g.Direction, &g.Bidirectional, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("GateRepository.FindByLotID scan: %w", err)
		}
		gates = append(gates, g)
	}
	return gates, rows.Err()
}

func (r *pgGateRepository) Update(ctx context.Context, gate *domain.Gate) (*domain.Gate, error) {
	query := `UPDATE gates SET name = $2, direction = $3, bidirectional = $4, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1 RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, gate.ID, gate.Name, gate.Direction, gate.Bidirectional).
		Scan(&gate.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("GateRepository.Update: %w", err)
	}
	return gate, nil
}

func (r *pgGateRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("GateRepository.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
