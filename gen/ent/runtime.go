// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/pavel-marchuk/order-finder/db/ent/schema"
	"github.com/pavel-marchuk/order-finder/gen/ent/workitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	workitemFields := schema.WorkItem{}.Fields()
	_ = workitemFields
	// workitemDescChatID is the schema descriptor for chat_id field.
	workitemDescChatID := workitemFields[1].Descriptor()
	// workitem.ChatIDValidator is a validator for the "chat_id" field. It is called by the builders before save.
	workitem.ChatIDValidator = workitemDescChatID.Validators[0].(func(string) error)
	// workitemDescOrderID is the schema descriptor for order_id field.
	workitemDescOrderID := workitemFields[2].Descriptor()
	// workitem.OrderIDValidator is a validator for the "order_id" field. It is called by the builders before save.
	workitem.OrderIDValidator = workitemDescOrderID.Validators[0].(func(string) error)
	// workitemDescStatus is the schema descriptor for status field.
	workitemDescStatus := workitemFields[3].Descriptor()
	// workitem.DefaultStatus holds the default value on creation for the status field.
	workitem.DefaultStatus = workitemDescStatus.Default.(string)
	// workitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	workitem.StatusValidator = workitemDescStatus.Validators[0].(func(string) error)
	// workitemDescErrorDetail is the schema descriptor for error_detail field.
	workitemDescErrorDetail := workitemFields[5].Descriptor()
	// workitem.ErrorDetailValidator is a validator for the "error_detail" field. It is called by the builders before save.
	workitem.ErrorDetailValidator = workitemDescErrorDetail.Validators[0].(func(string) error)
	// workitemDescCreatedAt is the schema descriptor for created_at field.
	workitemDescCreatedAt := workitemFields[6].Descriptor()
	// workitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	workitem.DefaultCreatedAt = workitemDescCreatedAt.Default.(func() time.Time)
	// workitemDescUpdatedAt is the schema descriptor for updated_at field.
	workitemDescUpdatedAt := workitemFields[7].Descriptor()
	// workitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workitem.DefaultUpdatedAt = workitemDescUpdatedAt.Default.(func() time.Time)
	// workitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workitem.UpdateDefaultUpdatedAt = workitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workitemDescID is the schema descriptor for id field.
	workitemDescID := workitemFields[0].Descriptor()
	// workitem.DefaultID holds the default value on creation for the id field.
	workitem.DefaultID = workitemDescID.Default.(func() uuid.UUID)
}
