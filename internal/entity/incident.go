package entity

import (
	"time"

	"github.com/google/uuid"
)

// Incident represents a recorded SLA breach for data transfer between layers.
type Incident struct {
	ID               uuid.UUID `json:"id"`
	ContractID       uuid.UUID `json:"contract_id"`
	DowntimeDuration int       `json:"downtime_duration"`
	PenaltyAmount    float64   `json:"penalty_amount"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
