package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type TransitStatus string

const (
	TransitOpen   TransitStatus = "OPEN"
	TransitClosed TransitStatus = "CLOSED"
)

// Transit is one vehicle's stay, from entry to exit. Entry fields are set at
// creation and never change; exit gate, exit time, tariff and amount are set
// together when the transit closes, exactly once.
type Transit struct {
	ID          int        `json:"id"`
	Reference   string     `json:"reference"`
	LotID       int        `json:"lot_id"`
	VehicleID   int        `json:"vehicle_id"`
	EntryGateID int        `json:"entry_gate_id"`
	EntryTime   time.Time  `json:"entry_time"`
	ExitGateID  null.Int   `json:"exit_gate_id"`
	ExitTime    null.Time  `json:"exit_time"`
	TariffID    null.Int   `json:"tariff_id"`
	Amount      null.Float `json:"amount"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Vehicle *Vehicle `json:"vehicle,omitempty"`
}

func (t *Transit) IsOpen() bool {
	return !t.ExitTime.Valid
}

func (t *Transit) Status() TransitStatus {
	if t.IsOpen() {
		return TransitOpen
	}
	return TransitClosed
}

type OpenTransitDTO struct {
	EntryGateID   int    `json:"entry_gate_id" binding:"required"`
	Plate         string `json:"plate" binding:"required,min=2,max=16"`
	VehicleTypeID int    `json:"vehicle_type_id" binding:"required"`
	OwnerUserID   int    `json:"owner_user_id" binding:"required"`
}

type CloseTransitDTO struct {
	ExitGateID int       `json:"exit_gate_id" binding:"required"`
	ExitTime   time.Time `json:"exit_time,omitempty"`
}

type TransitWindowFilter struct {
	LotID *int      `form:"lotId"`
	From  time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To    time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
