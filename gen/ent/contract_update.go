// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/alauddinGen-Z/SLA/gen/ent/claim"
	"github.com/alauddinGen-Z/SLA/gen/ent/contract"
	"github.com/alauddinGen-Z/SLA/gen/ent/incident"
	"github.com/alauddinGen-Z/SLA/gen/ent/predicate"
	"github.com/google/uuid"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ContractUpdate) SetOrgID(v uuid.UUID) *ContractUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableOrgID(v *uuid.UUID) *ContractUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *ContractUpdate) SetFileURL(v string) *ContractUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFileURL(v *string) *ContractUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ContractUpdate) SetFileName(v string) *ContractUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFileName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *ContractUpdate) ClearFileName() *ContractUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetExtractedDataJSON sets the "extracted_data_json" field.
func (_u *ContractUpdate) SetExtractedDataJSON(v json.RawMessage) *ContractUpdate {
	_u.mutation.SetExtractedDataJSON(v)
	return _u
}

// AppendExtractedDataJSON appends value to the "extracted_data_json" field.
func (_u *ContractUpdate) AppendExtractedDataJSON(v json.RawMessage) *ContractUpdate {
	_u.mutation.AppendExtractedDataJSON(v)
	return _u
}

// ClearExtractedDataJSON clears the value of the "extracted_data_json" field.
func (_u *ContractUpdate) ClearExtractedDataJSON() *ContractUpdate {
	_u.mutation.ClearExtractedDataJSON()
	return _u
}

// AddIncidentIDs adds the "incidents" edge to the Incident entity by IDs.
func (_u *ContractUpdate) AddIncidentIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddIncidentIDs(ids...)
	return _u
}

// AddIncidents adds the "incidents" edges to the Incident entity.
func (_u *ContractUpdate) AddIncidents(v ...*Incident) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncidentIDs(ids...)
}

// AddClaimIDs adds the "claims" edge to the Claim entity by IDs.
func (_u *ContractUpdate) AddClaimIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddClaimIDs(ids...)
	return _u
}

// AddClaims adds the "claims" edges to the Claim entity.
func (_u *ContractUpdate) AddClaims(v ...*Claim) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearIncidents clears all "incidents" edges to the Incident entity.
func (_u *ContractUpdate) ClearIncidents() *ContractUpdate {
	_u.mutation.ClearIncidents()
	return _u
}

// RemoveIncidentIDs removes the "incidents" edge to Incident entities by IDs.
func (_u *ContractUpdate) RemoveIncidentIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveIncidentIDs(ids...)
	return _u
}

// RemoveIncidents removes "incidents" edges to Incident entities.
func (_u *ContractUpdate) RemoveIncidents(v ...*Incident) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncidentIDs(ids...)
}

// ClearClaims clears all "claims" edges to the Claim entity.
func (_u *ContractUpdate) ClearClaims() *ContractUpdate {
	_u.mutation.ClearClaims()
	return _u
}

// RemoveClaimIDs removes the "claims" edge to Claim entities by IDs.
func (_u *ContractUpdate) RemoveClaimIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveClaimIDs(ids...)
	return _u
}

// RemoveClaims removes "claims" edges to Claim entities.
func (_u *ContractUpdate) RemoveClaims(v ...*Claim) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.FileURL(); ok {
		if err := contract.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "Contract.file_url": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(contract.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(contract.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(contract.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(contract.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedDataJSON(); ok {
		_spec.SetField(contract.FieldExtractedDataJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedDataJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldExtractedDataJSON, value)
		})
	}
	if _u.mutation.ExtractedDataJSONCleared() {
		_spec.ClearField(contract.FieldExtractedDataJSON, field.TypeJSON)
	}
	if _u.mutation.IncidentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.IncidentsTable,
			Columns: []string{contract.IncidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncidentsIDs(); len(nodes) > 0 && !_u.mutation.IncidentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.IncidentsTable,
			Columns: []string{contract.IncidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.IncidentsTable,
			Columns: []string{contract.IncidentsColumn},
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
	if _u.mutation.ClaimsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ClaimsTable,
			Columns: []string{contract.ClaimsColumn},
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
			Table:   contract.ClaimsTable,
			Columns: []string{contract.ClaimsColumn},
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
			Table:   contract.ClaimsTable,
			Columns: []string{contract.ClaimsColumn},
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
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetOrgID sets the "org_id" field.
func (_u *ContractUpdateOne) SetOrgID(v uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableOrgID(v *uuid.UUID) *ContractUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *ContractUpdateOne) SetFileURL(v string) *ContractUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFileURL(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ContractUpdateOne) SetFileName(v string) *ContractUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFileName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *ContractUpdateOne) ClearFileName() *ContractUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetExtractedDataJSON sets the "extracted_data_json" field.
func (_u *ContractUpdateOne) SetExtractedDataJSON(v json.RawMessage) *ContractUpdateOne {
	_u.mutation.SetExtractedDataJSON(v)
	return _u
}

// AppendExtractedDataJSON appends value to the "extracted_data_json" field.
func (_u *ContractUpdateOne) AppendExtractedDataJSON(v json.RawMessage) *ContractUpdateOne {
	_u.mutation.AppendExtractedDataJSON(v)
	return _u
}

// ClearExtractedDataJSON clears the value of the "extracted_data_json" field.
func (_u *ContractUpdateOne) ClearExtractedDataJSON() *ContractUpdateOne {
	_u.mutation.ClearExtractedDataJSON()
	return _u
}

// AddIncidentIDs adds the "incidents" edge to the Incident entity by IDs.
func (_u *ContractUpdateOne) AddIncidentIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddIncidentIDs(ids...)
	return _u
}

// AddIncidents adds the "incidents" edges to the Incident entity.
func (_u *ContractUpdateOne) AddIncidents(v ...*Incident) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncidentIDs(ids...)
}

// AddClaimIDs adds the "claims" edge to the Claim entity by IDs.
func (_u *ContractUpdateOne) AddClaimIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddClaimIDs(ids...)
	return _u
}

// AddClaims adds the "claims" edges to the Claim entity.
func (_u *ContractUpdateOne) AddClaims(v ...*Claim) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearIncidents clears all "incidents" edges to the Incident entity.
func (_u *ContractUpdateOne) ClearIncidents() *ContractUpdateOne {
	_u.mutation.ClearIncidents()
	return _u
}

// RemoveIncidentIDs removes the "incidents" edge to Incident entities by IDs.
func (_u *ContractUpdateOne) RemoveIncidentIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveIncidentIDs(ids...)
	return _u
}

// RemoveIncidents removes "incidents" edges to Incident entities.
func (_u *ContractUpdateOne) RemoveIncidents(v ...*Incident) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncidentIDs(ids...)
}

// ClearClaims clears all "claims" edges to the Claim entity.
func (_u *ContractUpdateOne) ClearClaims() *ContractUpdateOne {
	_u.mutation.ClearClaims()
	return _u
}

// RemoveClaimIDs removes the "claims" edge to Claim entities by IDs.
func (_u *ContractUpdateOne) RemoveClaimIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveClaimIDs(ids...)
	return _u
}

// RemoveClaims removes "claims" edges to Claim entities.
func (_u *ContractUpdateOne) RemoveClaims(v ...*Claim) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.FileURL(); ok {
		if err := contract.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "Contract.file_url": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(contract.FieldOrgID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(contract.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(contract.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(contract.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedDataJSON(); ok {
		_spec.SetField(contract.FieldExtractedDataJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedDataJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldExtractedDataJSON, value)
		})
	}
	if _u.mutation.ExtractedDataJSONCleared() {
		_spec.ClearField(contract.FieldExtractedDataJSON, field.TypeJSON)
	}
	if _u.mutation.IncidentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.IncidentsTable,
			Columns: []string{contract.IncidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncidentsIDs(); len(nodes) > 0 && !_u.mutation.IncidentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.IncidentsTable,
			Columns: []string{contract.IncidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.IncidentsTable,
			Columns: []string{contract.IncidentsColumn},
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
	if _u.mutation.ClaimsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ClaimsTable,
			Columns: []string{contract.ClaimsColumn},
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
			Table:   contract.ClaimsTable,
			Columns: []string{contract.ClaimsColumn},
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
			Table:   contract.ClaimsTable,
			Columns: []string{contract.ClaimsColumn},
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
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
