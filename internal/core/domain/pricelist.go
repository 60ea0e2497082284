package domain

import (
	"time"

	"github.com/google/uuid"
)

// PriceListEntry is either an hourly tariff (Days == 0, HourlyChargeAmount
// set and mirrored by Price) or a fixed-duration tariff (Days > 0, Price
// set, HourlyChargeAmount absent). No two active entries may share the same
// (CategoryID, Days) pair; the server enforces this, the client pre-checks
// the loaded page as an advisory.
type PriceListEntry struct {
	EntryID            uuid.UUID `json:"entry_id"`
	CategoryID         uuid.UUID `json:"category_id"`
	Days               int       `json:"days"`
	Price              float64   `json:"price"`
	HourlyChargeAmount *float64  `json:"hourly_charge_amount,omitempty"`
	Deposit            float64   `json:"deposit"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (p *PriceListEntry) IsHourly() bool {
	return p.Days == 0
}
