// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pavel-marchuk/order-finder/gen/ent/predicate"
	"github.com/pavel-marchuk/order-finder/gen/ent/workitem"
)

// WorkItemUpdate is the builder for updating WorkItem entities.
type WorkItemUpdate struct {
	config
	hooks    []Hook
	mutation *WorkItemMutation
}

// Where appends a list predicates to the WorkItemUpdate builder.
func (_u *WorkItemUpdate) Where(ps ...predicate.WorkItem) *WorkItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkItemUpdate) SetStatus(v string) *WorkItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableStatus(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkItemUpdate) SetResult(v string) *WorkItemUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableResult(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkItemUpdate) ClearResult() *WorkItemUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *WorkItemUpdate) SetErrorDetail(v string) *WorkItemUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableErrorDetail(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *WorkItemUpdate) ClearErrorDetail() *WorkItemUpdate {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkItemUpdate) SetUpdatedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *WorkItemUpdate) SetFinishedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableFinishedAt(v *time.Time) *WorkItemUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *WorkItemUpdate) ClearFinishedAt() *WorkItemUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the WorkItemMutation object of the builder.
func (_u *WorkItemUpdate) Mutation() *WorkItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorDetail(); ok {
		if err := workitem.ErrorDetailValidator(v); err != nil {
			return &ValidationError{Name: "error_detail", err: fmt.Errorf(`ent: validator failed for field "WorkItem.error_detail": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitem.Table, workitem.Columns, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workitem.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workitem.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(workitem.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(workitem.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(workitem.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(workitem.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkItemUpdateOne is the builder for updating a single WorkItem entity.
type WorkItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkItemMutation
}

// SetStatus sets the "status" field.
func (_u *WorkItemUpdateOne) SetStatus(v string) *WorkItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableStatus(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkItemUpdateOne) SetResult(v string) *WorkItemUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableResult(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkItemUpdateOne) ClearResult() *WorkItemUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *WorkItemUpdateOne) SetErrorDetail(v string) *WorkItemUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableErrorDetail(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *WorkItemUpdateOne) ClearErrorDetail() *WorkItemUpdateOne {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkItemUpdateOne) SetUpdatedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *WorkItemUpdateOne) SetFinishedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableFinishedAt(v *time.Time) *WorkItemUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *WorkItemUpdateOne) ClearFinishedAt() *WorkItemUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the WorkItemMutation object of the builder.
func (_u *WorkItemUpdateOne) Mutation() *WorkItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkItemUpdate builder.
func (_u *WorkItemUpdateOne) Where(ps ...predicate.WorkItem) *WorkItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkItemUpdateOne) Select(field string, fields ...string) *WorkItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkItem entity.
func (_u *WorkItemUpdateOne) Save(ctx context.Context) (*WorkItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemUpdateOne) SaveX(ctx context.Context) *WorkItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorDetail(); ok {
		if err := workitem.ErrorDetailValidator(v); err != nil {
			return &ValidationError{Name: "error_detail", err: fmt.Errorf(`ent: validator failed for field "WorkItem.error_detail": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkItemUpdateOne) sqlSave(ctx context.Context) (_node *WorkItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitem.Table, workitem.Columns, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workitem.FieldID)
		for _, f := range fields {
			if !workitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workitem.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workitem.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workitem.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(workitem.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(workitem.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(workitem.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(workitem.FieldFinishedAt, field.TypeTime)
	}
	_node = &WorkItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
