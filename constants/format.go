package constants

// PaperFormat enumerates the paper sizes the production sheet distinguishes.
// Each format has a reference cell on the search sheet whose background color
// is the template for that format.
type PaperFormat string

const (
	PaperFormatA3 PaperFormat = "A3"
	PaperFormatA4 PaperFormat = "A4"
	PaperFormatA5 PaperFormat = "A5"
)

// AllPaperFormats lists formats in template-sampling order.
var AllPaperFormats = []PaperFormat{PaperFormatA3, PaperFormatA4, PaperFormatA5}

// TemplateCells maps each paper format to the search-sheet cell sampled for
// its reference background color.
var TemplateCells = map[PaperFormat]string{
	PaperFormatA3: "I1",
	PaperFormatA4: "J1",
	PaperFormatA5: "K1",
}
