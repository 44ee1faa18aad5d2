package service

import (
	"context"
	"errors"
	"fmt"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
)

// CatalogService is plain CRUD over the catalog records the transit core
// reads: lots, gates, vehicle types and tariffs. No pricing or admission
// decisions live here.
type CatalogService struct {
	lotRepo    repository.LotRepository
	gateRepo   repository.GateRepository
	vtRepo     repository.VehicleTypeRepository
	tariffRepo repository.TariffRepository
}

func NewCatalogService(
	lotRepo repository.LotRepository,
	gateRepo repository.GateRepository,
	vtRepo repository.VehicleTypeRepository,
	tariffRepo repository.TariffRepository,
) *CatalogService {
	return &CatalogService{
		lotRepo:    lotRepo,
		gateRepo:   gateRepo,
		vtRepo:     vtRepo,
		tariffRepo: tariffRepo,
	}
}

// --- Lots ---

func (s *CatalogService) CreateLot(ctx context.Context, dto domain.LotDTO) (*domain.Lot, error) {
	return s.lotRepo.Create(ctx, &domain.Lot{
		Name:     dto.Name,
		Address:  dto.Address,
		Capacity: dto.Capacity,
	})
}

func (s *CatalogService) GetLotByID(ctx context.Context, id int) (*domain.Lot, error) {
	return s.lotRepo.FindByID(ctx, id)
}

func (s *CatalogService) GetAllLots(ctx context.Context) ([]domain.Lot, error) {
	return s.lotRepo.FindAll(ctx)
}

func (s *CatalogService) UpdateLot(ctx context.Context, id int, dto domain.LotDTO) (*domain.Lot, error) {
	lot, err := s.lotRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lot.Name = dto.Name
	lot.Address = dto.Address
	lot.Capacity = dto.Capacity
	return s.lotRepo.Update(ctx, lot)
}

// DeleteLot removes the lot together with its gates and tariffs.
func (s *CatalogService) DeleteLot(ctx context.Context, id int) error {
	return s.lotRepo.Delete(ctx, id)
}

// --- Gates ---

func (s *CatalogService) CreateGate(ctx context.Context, dto domain.GateDTO) (*domain.Gate, error) {
	if _, err := s.lotRepo.FindByID(ctx, dto.LotID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: lot %d", repository.ErrNotFound, dto.LotID)
		}
		return nil, fmt.Errorf("checking lot: %w", err)
	}
	return s.gateRepo.Create(ctx, &domain.Gate{
		LotID:         dto.LotID,
		Name:          dto.Name,
		Direction:     domain.GateDirection(dto.Direction),
		Bidirectional: dto.Bidirectional,
	})
}

func (s *CatalogService) GetGateByID(ctx context.Context, id int) (*domain.Gate, error) {
	return s.gateRepo.FindByID(ctx, id)
}

func (s *CatalogService) GetGatesByLot(ctx context.Context, lotID int) ([]domain.Gate, error) {
	return s.gateRepo.FindByLotID(ctx, lotID)
}

func (s *CatalogService) UpdateGate(ctx context.Context, id int, dto domain.GateDTO) (*domain.Gate, error) {
	gate, err := s.gateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	gate.Name = dto.Name
	gate.Direction = domain.GateDirection(dto.Direction)
	gate.Bidirectional = dto.Bidirectional
	return s.gateRepo.Update(ctx, gate)
}

func (s *CatalogService) DeleteGate(ctx context.Context, id int) error {
	return s.gateRepo.Delete(ctx, id)
}

// --- Vehicle types ---

func (s *CatalogService) CreateVehicleType(ctx context.Context, dto domain.VehicleTypeDTO) (*domain.VehicleType, error) {
	return s.vtRepo.Create(ctx, &domain.VehicleType{Name: dto.Name})
}

func (s *CatalogService) GetAllVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	return s.vtRepo.FindAll(ctx)
}

func (s *CatalogService) DeleteVehicleType(ctx context.Context, id int) error {
	return s.vtRepo.Delete(ctx, id)
}

// --- Tariffs ---

func (s *CatalogService) CreateTariff(ctx context.Context, dto domain.TariffDTO) (*domain.Tariff, error) {
	if _, err := s.lotRepo.FindByID(ctx, dto.LotID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: lot %d", repository.ErrNotFound, dto.LotID)
		}
		return nil, fmt.Errorf("checking lot: %w", err)
	}
	if _, err := s.vtRepo.FindByID(ctx, dto.VehicleTypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: vehicle type %d", repository.ErrNotFound, dto.VehicleTypeID)
		}
		return nil, fmt.Errorf("checking vehicle type: %w", err)
	}

	tariff, err := s.tariffRepo.Create(ctx, &domain.Tariff{
		LotID:         dto.LotID,
		VehicleTypeID: dto.VehicleTypeID,
		Rate:          dto.Rate,
		TimeBand:      domain.TimeBand(dto.TimeBand),
		DayType:       domain.DayType(dto.DayType),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, fmt.Errorf("%w: a tariff already covers lot %d, type %d, %s/%s",
				repository.ErrDuplicateEntry, dto.LotID, dto.VehicleTypeID, dto.TimeBand, dto.DayType)
		}
		return nil, err
	}
	return tariff, nil
}

func (s *CatalogService) GetTariffsByLot(ctx context.Context, lotID int) ([]domain.Tariff, error) {
	return s.tariffRepo.FindByLotID(ctx, lotID)
}

func (s *CatalogService) UpdateTariff(ctx context.Context, id int, dto domain.TariffDTO) (*domain.Tariff, error) {
	tariff, err := s.tariffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tariff.Rate = dto.Rate
	tariff.TimeBand = domain.TimeBand(dto.TimeBand)
	tariff.DayType = domain.DayType(dto.DayType)
	return s.tariffRepo.Update(ctx, tariff)
}

func (s *CatalogService) DeleteTariff(ctx context.Context, id int) error {
	return s.tariffRepo.Delete(ctx, id)
}
