package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("org_id", uuid.UUID{}),
		field.String("file_url").NotEmpty(),
		field.String("file_name").Optional(),
		// Ordered list of {logic, penalty} rules extracted by the LLM.
		// Immutable source of truth for every later enforcement call.
		field.JSON("extracted_data_json", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE contract -> MANY incidents
		edge.To("incidents", Incident.Type),
		// ONE contract -> MANY claims
		edge.To("claims", Claim.Type),
	}
}

func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "created_at"),
	}
}
