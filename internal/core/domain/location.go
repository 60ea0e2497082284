package domain

import (
	"time"

	"github.com/google/uuid"
)

type City struct {
	CityID    uuid.UUID `json:"city_id"`
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	ImagePath string    `json:"image_path,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	StoreID   uuid.UUID `json:"store_id"`
	CityID    uuid.UUID `json:"city_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	ImagePath string    `json:"image_path,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
