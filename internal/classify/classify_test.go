package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/internal/sheets"
)

var (
	colorA3 = sheets.Color{Hex: "FF0000", Present: true}
	colorA4 = sheets.Color{Hex: "00FF00", Present: true}
	colorA5 = sheets.Color{Hex: "0000FF", Present: true}
)

func fullTemplates() sheets.TemplateSet {
	return sheets.TemplateSet{
		constants.PaperFormatA3: colorA3,
		constants.PaperFormatA4: colorA4,
		constants.PaperFormatA5: colorA5,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		primary   sheets.Color
		secondary sheets.Color
		want      int
	}{
		{"combined a3+a4", colorA3, colorA4, 4},
		{"combined a3+a5", colorA3, colorA5, 5},
		{"plain a3", colorA3, sheets.Color{}, 6},
		{"plain a4", colorA4, sheets.Color{}, 7},
		{"plain a5", colorA5, sheets.Color{}, 8},
		{"unknown color", sheets.Color{Hex: "ABCDEF", Present: true}, sheets.Color{}, constants.AnswerDefault},
		{"no fill at all", sheets.Color{}, sheets.Color{}, constants.AnswerDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := sheets.MatchedRow{PrimaryColor: tt.primary, SecondaryColor: tt.secondary}
			assert.Equal(t, tt.want, Classify(row, fullTemplates()))
		})
	}
}

// A row whose primary matches A3 and secondary matches A4 also satisfies the
// plain-A3 rule; the combined rule must win because it is evaluated first.
func TestClassifyPrecedence(t *testing.T) {
	row := sheets.MatchedRow{PrimaryColor: colorA3, SecondaryColor: colorA4}
	assert.Equal(t, 4, Classify(row, fullTemplates()))
	assert.Equal(t, "a3+a4", RuleName(row, fullTemplates()))
}

func TestClassifyAbsentTemplateNeverMatches(t *testing.T) {
	// the template snapshot has no fill for any format: every row falls
	// through to the default, even rows that do carry a color
	empty := sheets.TemplateSet{
		constants.PaperFormatA3: {},
		constants.PaperFormatA4: {},
		constants.PaperFormatA5: {},
	}
	row := sheets.MatchedRow{PrimaryColor: colorA3, SecondaryColor: colorA4}
	assert.Equal(t, constants.AnswerDefault, Classify(row, empty))
}

func TestClassifyDeterministic(t *testing.T) {
	row := sheets.MatchedRow{PrimaryColor: colorA4, SecondaryColor: colorA5}
	first := Classify(row, fullTemplates())
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(row, fullTemplates()))
	}
}
