package constants

// WorkItemStatus is the canonical status for rows in work_item.
type WorkItemStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    WorkItemStatus = "PENDING"     // submitted, not yet claimed
	StatusInProgress WorkItemStatus = "IN_PROGRESS" // claimed by a worker
	StatusSucceeded  WorkItemStatus = "SUCCEEDED"   // terminal, result stored
	StatusFailed     WorkItemStatus = "FAILED"      // terminal, error_detail stored
)

// Terminal reports whether s admits no further transition.
func (s WorkItemStatus) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// ErrorDetailMaxLength caps work_item.error_detail; longer messages are truncated.
const ErrorDetailMaxLength = 255

// MessageLevel tags outbound notifications.
type MessageLevel string

const (
	LevelInfo    MessageLevel = "INFO"
	LevelWarning MessageLevel = "WARNING"
	LevelError   MessageLevel = "ERROR"
)
