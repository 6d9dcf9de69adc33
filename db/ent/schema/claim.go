package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/alauddinGen-Z/SLA/constants"
	"github.com/alauddinGen-Z/SLA/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Claim struct{ ent.Schema }

func (Claim) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "claims"},
	}
}

func (Claim) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("incident_id", uuid.UUID{}),
		field.UUID("contract_id", uuid.UUID{}),
		field.Float("refund_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Text("email_body"),
		field.String("status").
			Default(string(constants.ClaimStatusDraft)).
			Validate(utils.EnumValidator(constants.ClaimStatuses...)),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Claim) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY claims -> ONE incident (FK: claims.incident_id)
		edge.From("incident", Incident.Type).
			Ref("claims").
			Field("incident_id").
			Unique().
			Required(),
		// MANY claims -> ONE contract (FK: claims.contract_id)
		edge.From("contract", Contract.Type).
			Ref("claims").
			Field("contract_id").
			Unique().
			Required(),
	}
}

func (Claim) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id"),
		index.Fields("contract_id"),
		index.Fields("status", "created_at"),
	}
}
