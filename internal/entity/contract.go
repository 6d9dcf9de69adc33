package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Contract represents an uploaded contract for data transfer between layers.
type Contract struct {
	ID                uuid.UUID       `json:"id"`
	OrgID             uuid.UUID       `json:"org_id"`
	FileURL           string          `json:"file_url"`
	FileName          string          `json:"file_name,omitempty"`
	ExtractedDataJSON json.RawMessage `json:"extracted_data_json,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
