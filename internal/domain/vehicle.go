package domain

import "time"

type VehicleType struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type VehicleTypeDTO struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

// Vehicle records are created lazily: an unseen plate at the entry gate gets a
// row on the fly, attached to the declared type and owner.
type Vehicle struct {
	ID            int       `json:"id"`
	Plate         string    `json:"plate"`
	VehicleTypeID int       `json:"vehicle_type_id"`
	OwnerUserID   int       `json:"owner_user_id"`
	CreatedAt     time.Time `json:"created_at"`
}
