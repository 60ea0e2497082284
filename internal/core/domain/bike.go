package domain

import (
	"time"

	"github.com/google/uuid"
)

type Bike struct {
	BikeID             uuid.UUID `json:"bike_id"`
	Name               string    `json:"name"`
	BrandID            uuid.UUID `json:"brand_id"`
	ModelID            uuid.UUID `json:"model_id"`
	CategoryID         uuid.UUID `json:"category_id"`
	VehicleTypeID      uuid.UUID `json:"vehicle_type_id"`
	StoreID            uuid.UUID `json:"store_id"`
	RegistrationNumber string    `json:"registration_number"`
	Year               int       `json:"year"`
	Mileage            int       `json:"mileage"`
	ImagePath          string    `json:"image_path,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
