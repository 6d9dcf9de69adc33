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

// ClaimUpdate is the builder for updating Claim entities.
type ClaimUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimMutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdate) Where(ps ...predicate.Claim) *ClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *ClaimUpdate) SetIncidentID(v uuid.UUID) *ClaimUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableIncidentID(v *uuid.UUID) *ClaimUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ClaimUpdate) SetContractID(v uuid.UUID) *ClaimUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableContractID(v *uuid.UUID) *ClaimUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetRefundAmount sets the "refund_amount" field.
func (_u *ClaimUpdate) SetRefundAmount(v float64) *ClaimUpdate {
	_u.mutation.ResetRefundAmount()
	_u.mutation.SetRefundAmount(v)
	return _u
}

// SetNillableRefundAmount sets the "refund_amount" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableRefundAmount(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetRefundAmount(*v)
	}
	return _u
}

// AddRefundAmount adds value to the "refund_amount" field.
func (_u *ClaimUpdate) AddRefundAmount(v float64) *ClaimUpdate {
	_u.mutation.AddRefundAmount(v)
	return _u
}

// SetEmailBody sets the "email_body" field.
func (_u *ClaimUpdate) SetEmailBody(v string) *ClaimUpdate {
	_u.mutation.SetEmailBody(v)
	return _u
}

// SetNillableEmailBody sets the "email_body" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableEmailBody(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetEmailBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClaimUpdate) SetStatus(v string) *ClaimUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableStatus(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_u *ClaimUpdate) SetIncident(v *Incident) *ClaimUpdate {
	return _u.SetIncidentID(v.ID)
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ClaimUpdate) SetContract(v *Contract) *ClaimUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdate) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (_u *ClaimUpdate) ClearIncident() *ClaimUpdate {
	_u.mutation.ClearIncident()
	return _u
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ClaimUpdate) ClearContract() *ClaimUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := claim.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Claim.status": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Claim.incident"`)
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Claim.contract"`)
	}
	return nil
}

func (_u *ClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RefundAmount(); ok {
		_spec.SetField(claim.FieldRefundAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRefundAmount(); ok {
		_spec.AddField(claim.FieldRefundAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EmailBody(); ok {
		_spec.SetField(claim.FieldEmailBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(claim.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.IncidentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claim.IncidentTable,
			Columns: []string{claim.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claim.IncidentTable,
			Columns: []string{claim.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claim.ContractTable,
			Columns: []string{claim.ContractColumn},
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
			Table:   claim.ContractTable,
			Columns: []string{claim.ContractColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimUpdateOne is the builder for updating a single Claim entity.
type ClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimMutation
}

// SetIncidentID sets the "incident_id" field.
func (_u *ClaimUpdateOne) SetIncidentID(v uuid.UUID) *ClaimUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableIncidentID(v *uuid.UUID) *ClaimUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ClaimUpdateOne) SetContractID(v uuid.UUID) *ClaimUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableContractID(v *uuid.UUID) *ClaimUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetRefundAmount sets the "refund_amount" field.
func (_u *ClaimUpdateOne) SetRefundAmount(v float64) *ClaimUpdateOne {
	_u.mutation.ResetRefundAmount()
	_u.mutation.SetRefundAmount(v)
	return _u
}

// SetNillableRefundAmount sets the "refund_amount" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableRefundAmount(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetRefundAmount(*v)
	}
	return _u
}

// AddRefundAmount adds value to the "refund_amount" field.
func (_u *ClaimUpdateOne) AddRefundAmount(v float64) *ClaimUpdateOne {
	_u.mutation.AddRefundAmount(v)
	return _u
}

// SetEmailBody sets the "email_body" field.
func (_u *ClaimUpdateOne) SetEmailBody(v string) *ClaimUpdateOne {
	_u.mutation.SetEmailBody(v)
	return _u
}

// SetNillableEmailBody sets the "email_body" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableEmailBody(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetEmailBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClaimUpdateOne) SetStatus(v string) *ClaimUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableStatus(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_u *ClaimUpdateOne) SetIncident(v *Incident) *ClaimUpdateOne {
	return _u.SetIncidentID(v.ID)
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ClaimUpdateOne) SetContract(v *Contract) *ClaimUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdateOne) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (_u *ClaimUpdateOne) ClearIncident() *ClaimUpdateOne {
	_u.mutation.ClearIncident()
	return _u
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ClaimUpdateOne) ClearContract() *ClaimUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdateOne) Where(ps ...predicate.Claim) *ClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimUpdateOne) Select(field string, fields ...string) *ClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Claim entity.
func (_u *ClaimUpdateOne) Save(ctx context.Context) (*Claim, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdateOne) SaveX(ctx context.Context) *Claim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := claim.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Claim.status": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Claim.incident"`)
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Claim.contract"`)
	}
	return nil
}

func (_u *ClaimUpdateOne) sqlSave(ctx context.Context) (_node *Claim, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Claim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claim.FieldID)
		for _, f := range fields {
			if !claim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claim.FieldID {
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
	if value, ok := _u.mutation.RefundAmount(); ok {
		_spec.SetField(claim.FieldRefundAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRefundAmount(); ok {
		_spec.AddField(claim.FieldRefundAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EmailBody(); ok {
		_spec.SetField(claim.FieldEmailBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(claim.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.IncidentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claim.IncidentTable,
			Columns: []string{claim.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claim.IncidentTable,
			Columns: []string{claim.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claim.ContractTable,
			Columns: []string{claim.ContractColumn},
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
			Table:   claim.ContractTable,
			Columns: []string{claim.ContractColumn},
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
	_node = &Claim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
