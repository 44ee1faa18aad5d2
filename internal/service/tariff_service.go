package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
)

// TariffService resolves the single tariff rule applicable to a vehicle type
// in a lot at a given instant.
type TariffService struct {
	tariffRepo repository.TariffRepository
}

func NewTariffService(tariffRepo repository.TariffRepository) *TariffService {
	return &TariffService{tariffRepo: tariffRepo}
}

// SelectAt derives the time band and day type from the instant and looks up
// the matching rule. A missing rule is ErrTariffUnavailable, never a zero
// rate.
func (s *TariffService) SelectAt(ctx context.Context, lotID, vehicleTypeID int, at time.Time) (*domain.Tariff, error) {
	band := domain.TimeBandOf(at)
	day := domain.DayTypeOf(at)

	tariff, err := s.tariffRepo.FindForDimensions(ctx, lotID, vehicleTypeID, band, day)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: lot %d, vehicle type %d, %s/%s",
				ErrTariffUnavailable, lotID, vehicleTypeID, band, day)
		}
		return nil, fmt.Errorf("resolving tariff: %w", err)
	}
	return tariff, nil
}
