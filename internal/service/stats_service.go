package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
)

// OccupancySliceWidth is the sampling step for the free-space average. The
// aggregation is a discrete approximation: each occupied hour of each transit
// contributes one sample, not a continuous-time integral.
const OccupancySliceWidth = time.Hour

// StatsService aggregates transits overlapping a reporting window into
// revenue, occupancy and tally statistics. Read-only; safe to run concurrently
// with opens and closes.
type StatsService struct {
	lotRepo     repository.LotRepository
	vehicleRepo repository.VehicleRepository
	vtRepo      repository.VehicleTypeRepository
	transitRepo repository.TransitRepository

	now func() time.Time
}

func NewStatsService(
	lotRepo repository.LotRepository,
	vehicleRepo repository.VehicleRepository,
	vtRepo repository.VehicleTypeRepository,
	transitRepo repository.TransitRepository,
) *StatsService {
	return &StatsService{
		lotRepo:     lotRepo,
		vehicleRepo: vehicleRepo,
		vtRepo:      vtRepo,
		transitRepo: transitRepo,
		now:         time.Now,
	}
}

// Aggregate reports over [from, to], optionally scoped to one lot. Closed
// transits count when fully contained in the window; an open transit whose
// entry falls inside the window counts for occupancy and tallies with its
// interval clamped to min(now, to), and contributes zero revenue. An empty
// window reports the full capacity as the free-space average.
func (s *StatsService) Aggregate(ctx context.Context, filter domain.TransitWindowFilter) (*domain.StatsReport, error) {
	if !filter.To.After(filter.From) {
		return nil, fmt.Errorf("%w: from %s, to %s", ErrInvalidInterval,
			filter.From.Format(time.RFC3339), filter.To.Format(time.RFC3339))
	}

	capacityByLot, totalCapacity, err := s.loadCapacities(ctx, filter.LotID)
	if err != nil {
		return nil, err
	}

	transits, err := s.transitRepo.FindInWindow(ctx, filter.LotID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("loading transits in window: %w", err)
	}

	report := &domain.StatsReport{
		LotID:          filter.LotID,
		PerVehicleType: map[string]int{},
		PerTimeBand:    map[domain.TimeBand]int{},
	}

	typeNames := map[int]string{}
	openByLot := map[int]int{}
	var freeSamples, sampleSum int

	for i := range transits {
		t := &transits[i]
		report.TransitCount++

		if t.Amount.Valid {
			report.Revenue += t.Amount.Float64
		}

		// Occupancy sampling: transits arrive ordered by entry, each one
		// raises the running count for its lot and drops one free-space
		// sample per occupied slice.
		end := filter.To
		if t.ExitTime.Valid {
			end = t.ExitTime.Time
		} else if now := s.now().UTC(); now.Before(end) {
			end = now
		}
		openByLot[t.LotID]++
		running := openByLot[t.LotID]
		capacity := capacityByLot[t.LotID]
		for ts := t.EntryTime; ts.Before(end); ts = ts.Add(OccupancySliceWidth) {
			free := capacity - running
			if free < 0 {
				free = 0
			}
			freeSamples++
			sampleSum += free
		}

		typeName, err := s.vehicleTypeName(ctx, t.VehicleID, typeNames)
		if err != nil {
			return nil, err
		}
		report.PerVehicleType[typeName]++
		report.PerTimeBand[domain.TimeBandOf(t.EntryTime)]++
	}

	if freeSamples == 0 {
		report.AvgFreeSpaces = float64(totalCapacity)
	} else {
		report.AvgFreeSpaces = float64(sampleSum) / float64(freeSamples)
	}
	return report, nil
}

// loadCapacities resolves lot capacities for the scope: the single lot when
// scoped (missing lot is a NotFound error), every lot otherwise.
func (s *StatsService) loadCapacities(ctx context.Context, lotID *int) (map[int]int, int, error) {
	capacities := map[int]int{}
	if lotID != nil {
		lot, err := s.lotRepo.FindByID(ctx, *lotID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, 0, fmt.Errorf("%w: lot %d", repository.ErrNotFound, *lotID)
			}
			return nil, 0, fmt.Errorf("loading lot %d: %w", *lotID, err)
		}
		capacities[lot.ID] = lot.Capacity
		return capacities, lot.Capacity, nil
	}

	lots, err := s.lotRepo.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("loading lots: %w", err)
	}
	total := 0
	for _, lot := range lots {
		capacities[lot.ID] = lot.Capacity
		total += lot.Capacity
	}
	return capacities, total, nil
}

// vehicleTypeName tallies by type name. A transit pointing at a missing
// vehicle is a data-integrity fault and aborts the aggregation.
func (s *StatsService) vehicleTypeName(ctx context.Context, vehicleID int, cache map[int]string) (string, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("data integrity: transit references missing vehicle %d: %w", vehicleID, err)
		}
		return "", fmt.Errorf("loading vehicle %d: %w", vehicleID, err)
	}
	if name, ok := cache[vehicle.VehicleTypeID]; ok {
		return name, nil
	}
	vt, err := s.vtRepo.FindByID(ctx, vehicle.VehicleTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("data integrity: vehicle %d references missing type %d: %w",
				vehicleID, vehicle.VehicleTypeID, err)
		}
		return "", fmt.Errorf("loading vehicle type %d: %w", vehicle.VehicleTypeID, err)
	}
	cache[vehicle.VehicleTypeID] = vt.Name
	return vt.Name, nil
}
