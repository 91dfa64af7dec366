package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/db/ent/schema/utils"
)

// WorkItem is one submitted order lookup and its processing state.
// Rows are never deleted; the table doubles as an audit log.
type WorkItem struct{ ent.Schema }

func (WorkItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "work_item"},
	}
}

func (WorkItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("chat_id").NotEmpty().Immutable(),
		field.String("order_id").NotEmpty().Immutable(),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(
				string(constants.StatusPending),
				string(constants.StatusInProgress),
				string(constants.StatusSucceeded),
				string(constants.StatusFailed),
			)),
		field.String("result").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("error_detail").Optional().Nillable().
			MaxLen(constants.ErrorDetailMaxLength),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (WorkItem) Indexes() []ent.Index {
	return []ent.Index{
		// claim scans: oldest PENDING first
		index.Fields("status", "created_at"),
		index.Fields("order_id"),
	}
}
