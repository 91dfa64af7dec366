package sheets

import "context"

// Color is a cell background color. Present is false when the cell carries no
// explicit fill; an absent color never matches anything.
type Color struct {
	Hex     string
	Present bool
}

// Matches reports whether two colors are both present and equal.
func (c Color) Matches(o Color) bool {
	return c.Present && o.Present && c.Hex == o.Hex
}

// CellData is one cell's value and background fill.
type CellData struct {
	Value string
	Fill  Color
}

// Source is the tabular data source the lookups run against. Implementations
// wrap a concrete spreadsheet backend; connectivity failures are wrapped in
// common.ErrLookupSource, while missing values or missing formatting are
// reported through empty results and absent colors, never through errors.
type Source interface {
	// FindCells returns the addresses (e.g. "D12") of all cells on sheet
	// whose content equals value exactly. No matches yields an empty slice.
	FindCells(ctx context.Context, sheet, value string) ([]string, error)

	// ReadCell returns the value and background color at addr.
	ReadCell(ctx context.Context, sheet, addr string) (CellData, error)

	// ReadColumn returns the 1-based column col top to bottom, with trailing
	// empty cells trimmed.
	ReadColumn(ctx context.Context, sheet string, col int) ([]string, error)
}
