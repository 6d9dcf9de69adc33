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

type Incident struct{ ent.Schema }

func (Incident) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "incidents"},
	}
}

func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("contract_id", uuid.UUID{}),
		field.Int("downtime_duration").
			NonNegative().
			Comment("outage duration in minutes"),
		field.Float("penalty_amount").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("status").
			Default(string(constants.IncidentStatusOpen)).
			Validate(utils.EnumValidator(constants.IncidentStatuses...)),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Incident) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY incidents -> ONE contract (FK: incidents.contract_id)
		edge.From("contract", Contract.Type).
			Ref("incidents").
			Field("contract_id").
			Unique().
			Required(),
		// ONE incident -> MANY claims (no uniqueness: re-invoking the
		// enforcer drafts a second claim)
		edge.To("claims", Claim.Type),
	}
}

func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id"),
		index.Fields("status", "created_at"),
	}
}
