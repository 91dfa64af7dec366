// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// WorkItemColumns holds the columns for the "work_item" table.
	WorkItemColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "order_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "result", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "error_detail", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkItemTable holds the schema information for the "work_item" table.
	WorkItemTable = &schema.Table{
		Name:       "work_item",
		Columns:    WorkItemColumns,
		PrimaryKey: []*schema.Column{WorkItemColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workitem_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkItemColumns[3], WorkItemColumns[6]},
			},
			{
				Name:    "workitem_order_id",
				Unique:  false,
				Columns: []*schema.Column{WorkItemColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		WorkItemTable,
	}
)

func init() {
	WorkItemTable.Annotation = &entsql.Annotation{
		Table: "work_item",
	}
}
