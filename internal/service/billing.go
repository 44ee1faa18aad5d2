package service

import (
	"time"

	"parking_transit/internal/domain"
)

// ComputeAmount prices a stay: hourly rate times fractional duration. The
// tariff is the single rule resolved at the exit instant; a stay crossing a
// band boundary is billed entirely at that rule's rate. The result is not
// rounded here; rounding happens at presentation only.
func ComputeAmount(entry, exit time.Time, tariff *domain.Tariff) (float64, error) {
	if !exit.After(entry) {
		return 0, ErrInvalidInterval
	}
	return tariff.Rate * exit.Sub(entry).Hours(), nil
}
