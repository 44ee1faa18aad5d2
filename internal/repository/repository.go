package repository

import (
	"context"
	"errors"
	"time"

	"parking_transit/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

var ErrNotFound = errors.New("record not found")
var ErrDuplicateEntry = errors.New("record already exists")
var ErrCapacityExceeded = errors.New("parking lot is at full capacity")
var ErrTransitAlreadyClosed = errors.New("transit is already closed")

type LotRepository interface {
	Create(ctx context.Context, lot *domain.Lot) (*domain.Lot, error)
	FindByID(ctx context.Context, id int) (*domain.Lot, error)
	FindAll(ctx context.Context) ([]domain.Lot, error)
	Update(ctx context.Context, lot *domain.Lot) (*domain.Lot, error)
	Delete(ctx context.Context, id int) error
}

type GateRepository interface {
	Create(ctx context.Context, gate *domain.Gate) (*domain.Gate, error)
	FindByID(ctx context.Context, id int) (*domain.Gate, error)
	FindByLotID(ctx context.Context, lotID int) ([]domain.Gate, error)
	Update(ctx context.Context, gate *domain.Gate) (*domain.Gate, error)
	Delete(ctx context.Context, id int) error
}

type VehicleTypeRepository interface {
	Create(ctx context.Context, vt *domain.VehicleType) (*domain.VehicleType, error)
	FindByID(ctx context.Context, id int) (*domain.VehicleType, error)
	FindAll(ctx context.Context) ([]domain.VehicleType, error)
	Delete(ctx context.Context, id int) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	FindByID(ctx context.Context, id int) (*domain.Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
}

type TariffRepository interface {
	Create(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error)
	FindByID(ctx context.Context, id int) (*domain.Tariff, error)
	FindByLotID(ctx context.Context, lotID int) ([]domain.Tariff, error)
	// FindForDimensions resolves the unique tariff for (lot, vehicle type,
	// time band, day type), or ErrNotFound if no rule covers that combination.
	FindForDimensions(ctx context.Context, lotID, vehicleTypeID int, band domain.TimeBand, day domain.DayType) (*domain.Tariff, error)
	Update(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error)
	Delete(ctx context.Context, id int) error
}

type TransitRepository interface {
	// OpenWithinCapacity inserts an OPEN transit only while the lot holds
	// fewer open transits than its capacity. The check and the insert run in
	// one transaction with the lot row locked, so concurrent opens against the
	// same lot serialize; a full lot yields ErrCapacityExceeded.
	OpenWithinCapacity(ctx context.Context, transit *domain.Transit) (*domain.Transit, error)
	FindByID(ctx context.Context, id int) (*domain.Transit, error)
	// Close persists exit gate, exit time, tariff and amount in one guarded
	// update. Only the first closer wins; a lost race or an already-closed
	// transit yields ErrTransitAlreadyClosed.
	Close(ctx context.Context, transit *domain.Transit) (*domain.Transit, error)
	CountOpenByLot(ctx context.Context, lotID int) (int, error)
	FindOpenByLot(ctx context.Context, lotID int) ([]domain.Transit, error)
	// FindInWindow returns closed transits fully contained in [from, to] plus
	// open transits whose entry falls inside the window, optionally scoped to
	// one lot, ordered by entry time.
	FindInWindow(ctx context.Context, lotID *int, from, to time.Time) ([]domain.Transit, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}
