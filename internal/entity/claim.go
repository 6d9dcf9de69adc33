package entity

import (
	"time"

	"github.com/google/uuid"
)

// Claim represents a drafted penalty claim for data transfer between layers.
type Claim struct {
	ID           uuid.UUID `json:"id"`
	IncidentID   uuid.UUID `json:"incident_id"`
	ContractID   uuid.UUID `json:"contract_id"`
	RefundAmount float64   `json:"refund_amount"`
	EmailBody    string    `json:"email_body"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
