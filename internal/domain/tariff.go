package domain

import "time"

type TimeBand string

const (
	BandDay   TimeBand = "DAY"
	BandNight TimeBand = "NIGHT"
)

type DayType string

const (
	DayWeekday DayType = "WEEKDAY"
	DayWeekend DayType = "WEEKEND"
)

// Day band boundaries: DAY covers [08:00, 20:00) local time.
const (
	dayBandStartHour = 8
	dayBandEndHour   = 20
)

// TimeBandOf derives the time band from the instant's local hour.
func TimeBandOf(t time.Time) TimeBand {
	h := t.Hour()
	if h >= dayBandStartHour && h < dayBandEndHour {
		return BandDay
	}
	return BandNight
}

// DayTypeOf treats Saturday and Sunday as weekend, everything else as weekday.
func DayTypeOf(t time.Time) DayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return DayWeekend
	}
	return DayWeekday
}

// Tariff is a rate rule scoped to (lot, vehicle type, time band, day type).
// The four dimensions are unique per rule, so selection for a given instant is
// unambiguous. Rate is per hour.
type Tariff struct {
	ID            int       `json:"id"`
	LotID         int       `json:"lot_id"`
	VehicleTypeID int       `json:"vehicle_type_id"`
	Rate          float64   `json:"rate"`
	TimeBand      TimeBand  `json:"time_band"`
	DayType       DayType   `json:"day_type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TariffDTO struct {
	LotID         int     `json:"lot_id" binding:"required"`
	VehicleTypeID int     `json:"vehicle_type_id" binding:"required"`
	Rate          float64 `json:"rate" binding:"required,gt=0"`
	TimeBand      string  `json:"time_band" binding:"required,oneof=DAY NIGHT"`
	DayType       string  `json:"day_type" binding:"required,oneof=WEEKDAY WEEKEND"`
}
