package domain

import "time"

type Lot struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFreeSpace is the admission rule: a lot admits a new transit only while
// the number of open transits is below its capacity.
func (l *Lot) HasFreeSpace(openCount int) bool {
	return openCount < l.Capacity
}

type LotDTO struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}
