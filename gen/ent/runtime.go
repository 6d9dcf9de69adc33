// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/alauddinGen-Z/SLA/db/ent/schema"
	"github.com/alauddinGen-Z/SLA/gen/ent/claim"
	"github.com/alauddinGen-Z/SLA/gen/ent/contract"
	"github.com/alauddinGen-Z/SLA/gen/ent/incident"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	claimFields := schema.Claim{}.Fields()
	_ = claimFields
	// claimDescStatus is the schema descriptor for status field.
	claimDescStatus := claimFields[5].Descriptor()
	// claim.DefaultStatus holds the default value on creation for the status field.
	claim.DefaultStatus = claimDescStatus.Default.(string)
	// claim.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	claim.StatusValidator = claimDescStatus.Validators[0].(func(string) error)
	// claimDescCreatedAt is the schema descriptor for created_at field.
	claimDescCreatedAt := claimFields[6].Descriptor()
	// claim.DefaultCreatedAt holds the default value on creation for the created_at field.
	claim.DefaultCreatedAt = claimDescCreatedAt.Default.(func() time.Time)
	// claimDescID is the schema descriptor for id field.
	claimDescID := claimFields[0].Descriptor()
	// claim.DefaultID holds the default value on creation for the id field.
	claim.DefaultID = claimDescID.Default.(func() uuid.UUID)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescFileURL is the schema descriptor for file_url field.
	contractDescFileURL := contractFields[2].Descriptor()
	// contract.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	contract.FileURLValidator = contractDescFileURL.Validators[0].(func(string) error)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[5].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescDowntimeDuration is the schema descriptor for downtime_duration field.
	incidentDescDowntimeDuration := incidentFields[2].Descriptor()
	// incident.DowntimeDurationValidator is a validator for the "downtime_duration" field. It is called by the builders before save.
	incident.DowntimeDurationValidator = incidentDescDowntimeDuration.Validators[0].(func(int) error)
	// incidentDescPenaltyAmount is the schema descriptor for penalty_amount field.
	incidentDescPenaltyAmount := incidentFields[3].Descriptor()
	// incident.DefaultPenaltyAmount holds the default value on creation for the penalty_amount field.
	incident.DefaultPenaltyAmount = incidentDescPenaltyAmount.Default.(float64)
	// incidentDescStatus is the schema descriptor for status field.
	incidentDescStatus := incidentFields[4].Descriptor()
	// incident.DefaultStatus holds the default value on creation for the status field.
	incident.DefaultStatus = incidentDescStatus.Default.(string)
	// incident.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	incident.StatusValidator = incidentDescStatus.Validators[0].(func(string) error)
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[5].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	// incidentDescID is the schema descriptor for id field.
	incidentDescID := incidentFields[0].Descriptor()
	// incident.DefaultID holds the default value on creation for the id field.
	incident.DefaultID = incidentDescID.Default.(func() uuid.UUID)
}
