package domain

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	BrandID   uuid.UUID `json:"brand_id"`
	Name      string    `json:"name"`
	Country   string    `json:"country,omitempty"`
	ImagePath string    `json:"image_path,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BikeModel struct {
	ModelID   uuid.UUID `json:"model_id"`
	BrandID   uuid.UUID `json:"brand_id"`
	Name      string    `json:"name"`
	Year      int       `json:"year,omitempty"`
	ImagePath string    `json:"image_path,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VehicleType struct {
	VehicleTypeID uuid.UUID `json:"vehicle_type_id"`
	Name          string    `json:"name"`
	Wheels        int       `json:"wheels,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
