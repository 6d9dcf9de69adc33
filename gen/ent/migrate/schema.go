// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClaimsColumns holds the columns for the "claims" table.
	ClaimsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "refund_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "email_body", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID},
		{Name: "incident_id", Type: field.TypeUUID},
	}
	// ClaimsTable holds the schema information for the "claims" table.
	ClaimsTable = &schema.Table{
		Name:       "claims",
		Columns:    ClaimsColumns,
		PrimaryKey: []*schema.Column{ClaimsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "claims_contracts_claims",
				Columns:    []*schema.Column{ClaimsColumns[5]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "claims_incidents_claims",
				Columns:    []*schema.Column{ClaimsColumns[6]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "claim_incident_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[6]},
			},
			{
				Name:    "claim_contract_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[5]},
			},
			{
				Name:    "claim_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[3], ClaimsColumns[4]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "org_id", Type: field.TypeUUID},
		{Name: "file_url", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "extracted_data_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contract_org_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[1], ContractsColumns[5]},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "downtime_duration", Type: field.TypeInt},
		{Name: "penalty_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeString, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "incidents_contracts_incidents",
				Columns:    []*schema.Column{IncidentsColumns[5]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "incident_contract_id",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[5]},
			},
			{
				Name:    "incident_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[3], IncidentsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClaimsTable,
		ContractsTable,
		IncidentsTable,
	}
)

func init() {
	ClaimsTable.ForeignKeys[0].RefTable = ContractsTable
	ClaimsTable.ForeignKeys[1].RefTable = IncidentsTable
	ClaimsTable.Annotation = &entsql.Annotation{
		Table: "claims",
	}
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	IncidentsTable.ForeignKeys[0].RefTable = ContractsTable
	IncidentsTable.Annotation = &entsql.Annotation{
		Table: "incidents",
	}
}
