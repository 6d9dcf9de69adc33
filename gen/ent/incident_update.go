// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alauddinGen-Z/SLA/gen/ent/claim"
	"github.com/alauddinGen-Z/SLA/gen/ent/contract"
	"github.com/alauddinGen-Z/SLA/gen/ent/incident"
	"github.com/alauddinGen-Z/SLA/gen/ent/predicate"
	"github.com/google/uuid"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *IncidentUpdate) SetContractID(v uuid.UUID) *IncidentUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableContractID(v *uuid.UUID) *IncidentUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetDowntimeDuration sets the "downtime_duration" field.
func (_u *IncidentUpdate) SetDowntimeDuration(v int) *IncidentUpdate {
	_u.mutation.ResetDowntimeDuration()
	_u.mutation.SetDowntimeDuration(v)
	return _u
}

// SetNillableDowntimeDuration sets the "downtime_duration" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableDowntimeDuration(v *int) *IncidentUpdate {
	if v != nil {
		_u.SetDowntimeDuration(*v)
	}
	return _u
}

// AddDowntimeDuration adds value to the "downtime_duration" field.
func (_u *IncidentUpdate) AddDowntimeDuration(v int) *IncidentUpdate {
	_u.mutation.AddDowntimeDuration(v)
	return _u
}

// SetPenaltyAmount sets the "penalty_amount" field.
func (_u *IncidentUpdate) SetPenaltyAmount(v float64) *IncidentUpdate {
	_u.mutation.ResetPenaltyAmount()
	_u.mutation.SetPenaltyAmount(v)
	return _u
}

// SetNillablePenaltyAmount sets the "penalty_amount" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillablePenaltyAmount(v *float64) *IncidentUpdate {
	if v != nil {
		_u.SetPenaltyAmount(*v)
	}
	return _u
}

// AddPenaltyAmount adds value to the "penalty_amount" field.
func (_u *IncidentUpdate) AddPenaltyAmount(v float64) *IncidentUpdate {
	_u.mutation.AddPenaltyAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdate) SetStatus(v string) *IncidentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableStatus(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *IncidentUpdate) SetContract(v *Contract) *IncidentUpdate {
	return _u.SetContractID(v.ID)
}

// AddClaimIDs adds the "claims" edge to the Claim entity by IDs.
func (_u *IncidentUpdate) AddClaimIDs(ids ...uuid.UUID) *IncidentUpdate {
	_u.mutation.AddClaimIDs(ids...)
	return _u
}

// AddClaims adds the "claims" edges to the Claim entity.
func (_u *IncidentUpdate) AddClaims(v ...*Claim) *IncidentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *IncidentUpdate) ClearContract() *IncidentUpdate {
	_u.mutation.ClearContract()
	return _u
}

// ClearClaims clears all "claims" edges to the Claim entity.
func (_u *IncidentUpdate) ClearClaims() *IncidentUpdate {
	_u.mutation.ClearClaims()
	return _u
}

// RemoveClaimIDs removes the "claims" edge to Claim entities by IDs.
func (_u *IncidentUpdate) RemoveClaimIDs(ids ...uuid.UUID) *IncidentUpdate {
	_u.mutation.RemoveClaimIDs(ids...)
	return _u
}

// RemoveClaims removes "claims" edges to Claim entities.
func (_u *IncidentUpdate) RemoveClaims(v ...*Claim) *IncidentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdate) check() error {
	if v, ok := _u.mutation.DowntimeDuration(); ok {
		if err := incident.DowntimeDurationValidator(v); err != nil {
			return &ValidationError{Name: "downtime_duration", err: fmt.Errorf(`ent: validator failed for field "Incident.downtime_duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Incident.contract"`)
	}
	return nil
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DowntimeDuration(); ok {
		_spec.SetField(incident.FieldDowntimeDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDowntimeDuration(); ok {
		_spec.AddField(incident.FieldDowntimeDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PenaltyAmount(); ok {
		_spec.SetField(incident.FieldPenaltyAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPenaltyAmount(); ok {
		_spec.AddField(incident.FieldPenaltyAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   incident.ContractTable,
			Columns: []string{incident.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   incident.ContractTable,
			Columns: []string{incident.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClaimsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ClaimsTable,
			Columns: []string{incident.ClaimsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClaimsIDs(); len(nodes) > 0 && !_u.mutation.ClaimsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ClaimsTable,
			Columns: []string{incident.ClaimsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ClaimsTable,
			Columns: []string{incident.ClaimsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetContractID sets the "contract_id" field.
func (_u *IncidentUpdateOne) SetContractID(v uuid.UUID) *IncidentUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableContractID(v *uuid.UUID) *IncidentUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetDowntimeDuration sets the "downtime_duration" field.
func (_u *IncidentUpdateOne) SetDowntimeDuration(v int) *IncidentUpdateOne {
	_u.mutation.ResetDowntimeDuration()
	_u.mutation.SetDowntimeDuration(v)
	return _u
}

// SetNillableDowntimeDuration sets the "downtime_duration" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableDowntimeDuration(v *int) *IncidentUpdateOne {
	if v != nil {
		_u.SetDowntimeDuration(*v)
	}
	return _u
}

// AddDowntimeDuration adds value to the "downtime_duration" field.
func (_u *IncidentUpdateOne) AddDowntimeDuration(v int) *IncidentUpdateOne {
	_u.mutation.AddDowntimeDuration(v)
	return _u
}

// SetPenaltyAmount sets the "penalty_amount" field.
func (_u *IncidentUpdateOne) SetPenaltyAmount(v float64) *IncidentUpdateOne {
	_u.mutation.ResetPenaltyAmount()
	_u.mutation.SetPenaltyAmount(v)
	return _u
}

// SetNillablePenaltyAmount sets the "penalty_amount" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillablePenaltyAmount(v *float64) *IncidentUpdateOne {
	if v != nil {
		_u.SetPenaltyAmount(*v)
	}
	return _u
}

// AddPenaltyAmount adds value to the "penalty_amount" field.
func (_u *IncidentUpdateOne) AddPenaltyAmount(v float64) *IncidentUpdateOne {
	_u.mutation.AddPenaltyAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdateOne) SetStatus(v string) *IncidentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableStatus(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *IncidentUpdateOne) SetContract(v *Contract) *IncidentUpdateOne {
	return _u.SetContractID(v.ID)
}

// AddClaimIDs adds the "claims" edge to the Claim entity by IDs.
func (_u *IncidentUpdateOne) AddClaimIDs(ids ...uuid.UUID) *IncidentUpdateOne {
	_u.mutation.AddClaimIDs(ids...)
	return _u
}

// AddClaims adds the "claims" edges to the Claim entity.
func (_u *IncidentUpdateOne) AddClaims(v ...*Claim) *IncidentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *IncidentUpdateOne) ClearContract() *IncidentUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// ClearClaims clears all "claims" edges to the Claim entity.
func (_u *IncidentUpdateOne) ClearClaims() *IncidentUpdateOne {
	_u.mutation.ClearClaims()
	return _u
}

// RemoveClaimIDs removes the "claims" edge to Claim entities by IDs.
func (_u *IncidentUpdateOne) RemoveClaimIDs(ids ...uuid.UUID) *IncidentUpdateOne {
	_u.mutation.RemoveClaimIDs(ids...)
	return _u
}

// RemoveClaims removes "claims" edges to Claim entities.
func (_u *IncidentUpdateOne) RemoveClaims(v ...*Claim) *IncidentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimIDs(ids...)
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdateOne) check() error {
	if v, ok := _u.mutation.DowntimeDuration(); ok {
		if err := incident.DowntimeDurationValidator(v); err != nil {
			return &ValidationError{Name: "downtime_duration", err: fmt.Errorf(`ent: validator failed for field "Incident.downtime_duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Incident.contract"`)
	}
	return nil
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DowntimeDuration(); ok {
		_spec.SetField(incident.FieldDowntimeDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDowntimeDuration(); ok {
		_spec.AddField(incident.FieldDowntimeDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PenaltyAmount(); ok {
		_spec.SetField(incident.FieldPenaltyAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPenaltyAmount(); ok {
		_spec.AddField(incident.FieldPenaltyAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   incident.ContractTable,
			Columns: []string{incident.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   incident.ContractTable,
			Columns: []string{incident.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClaimsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ClaimsTable,
			Columns: []string{incident.ClaimsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClaimsIDs(); len(nodes) > 0 && !_u.mutation.ClaimsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ClaimsTable,
			Columns: []string{incident.ClaimsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ClaimsTable,
			Columns: []string{incident.ClaimsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
