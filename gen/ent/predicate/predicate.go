// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// WorkItem is the predicate function for workitem builders.
type WorkItem func(*sql.Selector)
