// Code generated by ent, DO NOT EDIT.

package incident

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/alauddinGen-Z/SLA/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldContractID, v))
}

// DowntimeDuration applies equality check predicate on the "downtime_duration" field. It's identical to DowntimeDurationEQ.
func DowntimeDuration(v int) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldDowntimeDuration, v))
}

// PenaltyAmount applies equality check predicate on the "penalty_amount" field. It's identical to PenaltyAmountEQ.
func PenaltyAmount(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPenaltyAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldContractID, vs...))
}

// DowntimeDurationEQ applies the EQ predicate on the "downtime_duration" field.
func DowntimeDurationEQ(v int) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldDowntimeDuration, v))
}

// DowntimeDurationNEQ applies the NEQ predicate on the "downtime_duration" field.
func DowntimeDurationNEQ(v int) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldDowntimeDuration, v))
}

// DowntimeDurationIn applies the In predicate on the "downtime_duration" field.
func DowntimeDurationIn(vs ...int) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldDowntimeDuration, vs...))
}

// DowntimeDurationNotIn applies the NotIn predicate on the "downtime_duration" field.
func DowntimeDurationNotIn(vs ...int) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldDowntimeDuration, vs...))
}

// DowntimeDurationGT applies the GT predicate on the "downtime_duration" field.
func DowntimeDurationGT(v int) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldDowntimeDuration, v))
}

// DowntimeDurationGTE applies the GTE predicate on the "downtime_duration" field.
func DowntimeDurationGTE(v int) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldDowntimeDuration, v))
}

// DowntimeDurationLT applies the LT predicate on the "downtime_duration" field.
func DowntimeDurationLT(v int) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldDowntimeDuration, v))
}

// DowntimeDurationLTE applies the LTE predicate on the "downtime_duration" field.
func DowntimeDurationLTE(v int) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldDowntimeDuration, v))
}

// PenaltyAmountEQ applies the EQ predicate on the "penalty_amount" field.
func PenaltyAmountEQ(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldPenaltyAmount, v))
}

// PenaltyAmountNEQ applies the NEQ predicate on the "penalty_amount" field.
func PenaltyAmountNEQ(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldPenaltyAmount, v))
}

// PenaltyAmountIn applies the In predicate on the "penalty_amount" field.
func PenaltyAmountIn(vs ...float64) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldPenaltyAmount, vs...))
}

// PenaltyAmountNotIn applies the NotIn predicate on the "penalty_amount" field.
func PenaltyAmountNotIn(vs ...float64) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldPenaltyAmount, vs...))
}

// PenaltyAmountGT applies the GT predicate on the "penalty_amount" field.
func PenaltyAmountGT(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldPenaltyAmount, v))
}

// PenaltyAmountGTE applies the GTE predicate on the "penalty_amount" field.
func PenaltyAmountGTE(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldPenaltyAmount, v))
}

// PenaltyAmountLT applies the LT predicate on the "penalty_amount" field.
func PenaltyAmountLT(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldPenaltyAmount, v))
}

// PenaltyAmountLTE applies the LTE predicate on the "penalty_amount" field.
func PenaltyAmountLTE(v float64) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldPenaltyAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCreatedAt, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClaims applies the HasEdge predicate on the "claims" edge.
func HasClaims() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClaimsTable, ClaimsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimsWith applies the HasEdge predicate on the "claims" edge with a given conditions (other predicates).
func HasClaimsWith(preds ...predicate.Claim) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newClaimsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.NotPredicates(p))
}
