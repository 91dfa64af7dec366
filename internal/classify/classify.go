// Package classify maps a matched row's cell colors to an answer catalog
// index. The whole decision is the ordered rule table below: rules are not
// mutually exclusive by color alone, so their order encodes business
// precedence — combined-color rules before single-color rules, then the
// default. Changing precedence means reordering rows here, nothing else.
package classify

import (
	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/internal/sheets"
)

type rule struct {
	name  string
	match func(row sheets.MatchedRow, t sheets.TemplateSet) bool
	index int
}

func primaryIs(pf constants.PaperFormat) func(sheets.MatchedRow, sheets.TemplateSet) bool {
	return func(row sheets.MatchedRow, t sheets.TemplateSet) bool {
		return row.PrimaryColor.Matches(t[pf])
	}
}

func primaryAndSecondary(primary, secondary constants.PaperFormat) func(sheets.MatchedRow, sheets.TemplateSet) bool {
	return func(row sheets.MatchedRow, t sheets.TemplateSet) bool {
		return row.PrimaryColor.Matches(t[primary]) && row.SecondaryColor.Matches(t[secondary])
	}
}

var rules = []rule{
	{"a3+a4", primaryAndSecondary(constants.PaperFormatA3, constants.PaperFormatA4), 4},
	{"a3+a5", primaryAndSecondary(constants.PaperFormatA3, constants.PaperFormatA5), 5},
	{"a3", primaryIs(constants.PaperFormatA3), 6},
	{"a4", primaryIs(constants.PaperFormatA4), 7},
	{"a5", primaryIs(constants.PaperFormatA5), 8},
}

// Classify returns the answer catalog index for row: the index of the first
// rule that matches, or constants.AnswerDefault when none does. Pure and
// deterministic; all I/O happens before this point.
func Classify(row sheets.MatchedRow, templates sheets.TemplateSet) int {
	for _, r := range rules {
		if r.match(row, templates) {
			return r.index
		}
	}
	return constants.AnswerDefault
}

// RuleName returns the name of the rule that would classify row, for logging.
func RuleName(row sheets.MatchedRow, templates sheets.TemplateSet) string {
	for _, r := range rules {
		if r.match(row, templates) {
			return r.name
		}
	}
	return "default"
}
