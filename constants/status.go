package constants

// IncidentStatus is the canonical status for rows in incidents.
type IncidentStatus string

// Stable values (store these exact strings in DB).
const (
	IncidentStatusOpen      IncidentStatus = "open"      // created, no claim drafted yet
	IncidentStatusPending   IncidentStatus = "pending"   // claim drafted, awaiting vendor credit
	IncidentStatusDetected  IncidentStatus = "detected"  // flagged by monitoring
	IncidentStatusRecovered IncidentStatus = "recovered" // penalty credited back
)

// IncidentStatuses holds the allowed values for the incidents status column.
var IncidentStatuses = []string{
	string(IncidentStatusOpen),
	string(IncidentStatusPending),
	string(IncidentStatusDetected),
	string(IncidentStatusRecovered),
}

// ClaimStatus is the canonical status for rows in claims.
type ClaimStatus string

const (
	ClaimStatusDraft ClaimStatus = "draft" // generated, not yet approved
	ClaimStatusSent  ClaimStatus = "sent"  // approved by a human reviewer
)

// ClaimStatuses holds the allowed values for the claims status column.
var ClaimStatuses = []string{
	string(ClaimStatusDraft),
	string(ClaimStatusSent),
}
