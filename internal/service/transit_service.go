package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"
)

// TransitService owns the transit state machine: OPEN at the entry gate,
// CLOSED exactly once at the exit gate with tariff and amount resolved.
type TransitService struct {
	lotRepo     repository.LotRepository
	gateRepo    repository.GateRepository
	vehicleRepo repository.VehicleRepository
	vtRepo      repository.VehicleTypeRepository
	transitRepo repository.TransitRepository
	tariffs     *TariffService

	now func() time.Time
}

func NewTransitService(
	lotRepo repository.LotRepository,
	gateRepo repository.GateRepository,
	vehicleRepo repository.VehicleRepository,
	vtRepo repository.VehicleTypeRepository,
	transitRepo repository.TransitRepository,
	tariffs *TariffService,
) *TransitService {
	return &TransitService{
		lotRepo:     lotRepo,
		gateRepo:    gateRepo,
		vehicleRepo: vehicleRepo,
		vtRepo:      vtRepo,
		transitRepo: transitRepo,
		tariffs:     tariffs,
		now:         time.Now,
	}
}

// Open admits a vehicle through an entry gate. The vehicle is created lazily
// if the plate is unseen; the capacity check and the insert run atomically in
// the repository, so a full lot rejects with ErrCapacityExceeded and writes
// nothing.
func (s *TransitService) Open(ctx context.Context, dto domain.OpenTransitDTO) (*domain.Transit, error) {
	gate, err := s.gateRepo.FindByID(ctx, dto.EntryGateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: entry gate %d", repository.ErrNotFound, dto.EntryGateID)
		}
		return nil, fmt.Errorf("loading entry gate: %w", err)
	}
	if !gate.AllowsEntry() {
		return nil, fmt.Errorf("%w: gate %d is exit-only", ErrGateDirection, gate.ID)
	}

	lot, err := s.lotRepo.FindByID(ctx, gate.LotID)
	if err != nil {
		return nil, fmt.Errorf("loading lot %d for gate %d: %w", gate.LotID, gate.ID, err)
	}

	vehicle, err := s.resolveVehicle(ctx, dto)
	if err != nil {
		return nil, err
	}

	transit := &domain.Transit{
		Reference:   uuid.NewString(),
		LotID:       lot.ID,
		VehicleID:   vehicle.ID,
		EntryGateID: gate.ID,
		EntryTime:   s.now().UTC(),
	}

	created, err := s.transitRepo.OpenWithinCapacity(ctx, transit)
	if err != nil {
		if errors.Is(err, repository.ErrCapacityExceeded) {
			log.Printf("Admission rejected: lot %d (%s) is full", lot.ID, lot.Name)
			return nil, fmt.Errorf("%w: lot %d", repository.ErrCapacityExceeded, lot.ID)
		}
		return nil, fmt.Errorf("opening transit: %w", err)
	}

	log.Printf("Transit %d opened: plate %s, lot %d, gate %d", created.ID, vehicle.Plate, lot.ID, gate.ID)
	created.Vehicle = vehicle
	return created, nil
}

// Close finishes a transit: it resolves the tariff against the vehicle's type
// and the exit instant, computes the amount, and persists all exit fields in
// one guarded update. Any failure leaves the transit OPEN; a re-close is an
// error, never a recompute.
func (s *TransitService) Close(ctx context.Context, transitID int, dto domain.CloseTransitDTO) (*domain.Transit, error) {
	transit, err := s.transitRepo.FindByID(ctx, transitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: transit %d", repository.ErrNotFound, transitID)
		}
		return nil, fmt.Errorf("loading transit %d: %w", transitID, err)
	}
	if !transit.IsOpen() {
		return nil, fmt.Errorf("%w: transit %d", repository.ErrTransitAlreadyClosed, transitID)
	}

	gate, err := s.gateRepo.FindByID(ctx, dto.ExitGateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: exit gate %d", repository.ErrNotFound, dto.ExitGateID)
		}
		return nil, fmt.Errorf("loading exit gate: %w", err)
	}
	if !gate.AllowsExit() {
		return nil, fmt.Errorf("%w: gate %d is entry-only", ErrGateDirection, gate.ID)
	}
	if gate.LotID != transit.LotID {
		return nil, fmt.Errorf("%w: gate %d belongs to lot %d, transit is in lot %d",
			ErrGateLotMismatch, gate.ID, gate.LotID, transit.LotID)
	}

	exitTime := dto.ExitTime
	if exitTime.IsZero() {
		exitTime = s.now()
	}
	exitTime = exitTime.UTC()
	if !exitTime.After(transit.EntryTime) {
		return nil, fmt.Errorf("%w: entry %s, exit %s", ErrInvalidInterval,
			transit.EntryTime.Format(time.RFC3339), exitTime.Format(time.RFC3339))
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, transit.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("loading vehicle %d for transit %d: %w", transit.VehicleID, transitID, err)
	}

	// The tariff is selected once, against the exit instant.
	tariff, err := s.tariffs.SelectAt(ctx, transit.LotID, vehicle.VehicleTypeID, exitTime)
	if err != nil {
		return nil, err
	}

	amount, err := ComputeAmount(transit.EntryTime, exitTime, tariff)
	if err != nil {
		return nil, err
	}

	transit.ExitGateID = null.IntFrom(int64(gate.ID))
	transit.ExitTime = null.TimeFrom(exitTime)
	transit.TariffID = null.IntFrom(int64(tariff.ID))
	transit.Amount = null.FloatFrom(amount)

	closed, err := s.transitRepo.Close(ctx, transit)
	if err != nil {
		if errors.Is(err, repository.ErrTransitAlreadyClosed) {
			return nil, fmt.Errorf("%w: transit %d", repository.ErrTransitAlreadyClosed, transitID)
		}
		return nil, fmt.Errorf("closing transit %d: %w", transitID, err)
	}

	log.Printf("Transit %d closed: plate %s, duration %s, amount %.2f",
		closed.ID, vehicle.Plate, exitTime.Sub(closed.EntryTime), amount)
	closed.Vehicle = vehicle
	return closed, nil
}

func (s *TransitService) GetByID(ctx context.Context, id int) (*domain.Transit, error) {
	return s.transitRepo.FindByID(ctx, id)
}

func (s *TransitService) GetOpenByLot(ctx context.Context, lotID int) ([]domain.Transit, error) {
	if _, err := s.lotRepo.FindByID(ctx, lotID); err != nil {
		return nil, err
	}
	return s.transitRepo.FindOpenByLot(ctx, lotID)
}

func (s *TransitService) resolveVehicle(ctx context.Context, dto domain.OpenTransitDTO) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByPlate(ctx, dto.Plate)
	if err == nil {
		return vehicle, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("looking up plate %q: %w", dto.Plate, err)
	}

	if _, err := s.vtRepo.FindByID(ctx, dto.VehicleTypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: vehicle type %d", repository.ErrNotFound, dto.VehicleTypeID)
		}
		return nil, fmt.Errorf("checking vehicle type: %w", err)
	}

	created, err := s.vehicleRepo.Create(ctx, &domain.Vehicle{
		Plate:         dto.Plate,
		VehicleTypeID: dto.VehicleTypeID,
		OwnerUserID:   dto.OwnerUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating vehicle for plate %q: %w", dto.Plate, err)
	}
	log.Printf("Vehicle created on the fly: plate %s, type %d", created.Plate, created.VehicleTypeID)
	return created, nil
}
