package domain

// StatsReport aggregates closed and in-progress transits over a reporting
// window: total revenue, the discrete average of free spaces sampled hour by
// hour, and tallies by vehicle type and entry time band.
type StatsReport struct {
	LotID          *int             `json:"lot_id,omitempty"`
	Revenue        float64          `json:"revenue"`
	AvgFreeSpaces  float64          `json:"avg_free_spaces"`
	TransitCount   int              `json:"transit_count"`
	PerVehicleType map[string]int   `json:"per_vehicle_type"`
	PerTimeBand    map[TimeBand]int `json:"per_time_band"`
}
