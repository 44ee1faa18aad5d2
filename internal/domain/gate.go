package domain

import "time"

type GateDirection string

const (
	GateEntry GateDirection = "entry"
	GateExit  GateDirection = "exit"
)

type Gate struct {
	ID            int           `json:"id"`
	LotID         int           `json:"lot_id"`
	Name          string        `json:"name"`
	Direction     GateDirection `json:"direction"`
	Bidirectional bool          `json:"bidirectional"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (g *Gate) AllowsEntry() bool {
	return g.Bidirectional || g.Direction == GateEntry
}

func (g *Gate) AllowsExit() bool {
	return g.Bidirectional || g.Direction == GateExit
}

type GateDTO struct {
	LotID         int    `json:"lot_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Direction     string `json:"direction" binding:"required,oneof=entry exit"`
	Bidirectional bool   `json:"bidirectional"`
}
