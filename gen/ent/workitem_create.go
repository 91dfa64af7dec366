// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pavel-marchuk/order-finder/gen/ent/workitem"
)

// WorkItemCreate is the builder for creating a WorkItem entity.
type WorkItemCreate struct {
	config
	mutation *WorkItemMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *WorkItemCreate) SetChatID(v string) *WorkItemCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *WorkItemCreate) SetOrderID(v string) *WorkItemCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkItemCreate) SetStatus(v string) *WorkItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableStatus(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *WorkItemCreate) SetResult(v string) *WorkItemCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableResult(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *WorkItemCreate) SetErrorDetail(v string) *WorkItemCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableErrorDetail(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkItemCreate) SetCreatedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableCreatedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkItemCreate) SetUpdatedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableUpdatedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *WorkItemCreate) SetFinishedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableFinishedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkItemCreate) SetID(v uuid.UUID) *WorkItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableID(v *uuid.UUID) *WorkItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WorkItemMutation object of the builder.
func (_c *WorkItemCreate) Mutation() *WorkItemMutation {
	return _c.mutation
}

// Save creates the WorkItem in the database.
func (_c *WorkItemCreate) Save(ctx context.Context) (*WorkItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkItemCreate) SaveX(ctx context.Context) *WorkItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkItemCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "WorkItem.chat_id"`)}
	}
	if v, ok := _c.mutation.ChatID(); ok {
		if err := workitem.ChatIDValidator(v); err != nil {
			return &ValidationError{Name: "chat_id", err: fmt.Errorf(`ent: validator failed for field "WorkItem.chat_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "WorkItem.order_id"`)}
	}
	if v, ok := _c.mutation.OrderID(); ok {
		if err := workitem.OrderIDValidator(v); err != nil {
			return &ValidationError{Name: "order_id", err: fmt.Errorf(`ent: validator failed for field "WorkItem.order_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ErrorDetail(); ok {
		if err := workitem.ErrorDetailValidator(v); err != nil {
			return &ValidationError{Name: "error_detail", err: fmt.Errorf(`ent: validator failed for field "WorkItem.error_detail": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkItem.updated_at"`)}
	}
	return nil
}

func (_c *WorkItemCreate) sqlSave(ctx context.Context) (*WorkItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkItemCreate) createSpec() (*WorkItem, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workitem.Table, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(workitem.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(workitem.FieldOrderID, field.TypeString, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(workitem.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(workitem.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(workitem.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// WorkItemCreateBulk is the builder for creating many WorkItem entities in bulk.
type WorkItemCreateBulk struct {
	config
	err      error
	builders []*WorkItemCreate
}

// Save creates the WorkItem entities in the database.
func (_c *WorkItemCreateBulk) Save(ctx context.Context) ([]*WorkItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkItemCreateBulk) SaveX(ctx context.Context) []*WorkItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
