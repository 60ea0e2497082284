package domain

import (
	"time"

	"github.com/google/uuid"
)

type ServiceOrderStatus string

const (
	ServiceOrderOpen       ServiceOrderStatus = "open"
	ServiceOrderInProgress ServiceOrderStatus = "in_progress"
	ServiceOrderDone       ServiceOrderStatus = "done"
	ServiceOrderCancelled  ServiceOrderStatus = "cancelled"
)

type ServiceOrder struct {
	OrderID     uuid.UUID          `json:"order_id"`
	BikeID      uuid.UUID          `json:"bike_id"`
	StoreID     uuid.UUID          `json:"store_id"`
	Description string             `json:"description"`
	Status      ServiceOrderStatus `json:"status"`
	ScheduledAt time.Time          `json:"scheduled_at"`
	ImagePath   string             `json:"image_path,omitempty"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type SparePart struct {
	PartID    uuid.UUID `json:"part_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku,omitempty"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Battery struct {
	BatteryID    uuid.UUID  `json:"battery_id"`
	SerialNumber string     `json:"serial_number"`
	CapacityWh   int        `json:"capacity_wh"`
	BikeID       *uuid.UUID `json:"bike_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
