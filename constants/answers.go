package constants

// Reserved positions in the answer catalog (the answer sheet's fixed column).
// The catalog is positional; these indexes are part of the sheet's contract
// with the bot and must match the rows maintained there.
const (
	// AnswerNotFound is the catalog slot composed with the order id when the
	// search sheet has no matching cell.
	AnswerNotFound = 3

	// AnswerDefault is returned by classification when no rule matches.
	AnswerDefault = 9
)

// AnswerColumn is the 1-based column of the answer sheet holding the catalog.
const AnswerColumn = 4
