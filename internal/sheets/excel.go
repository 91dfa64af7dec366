package sheets

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pavel-marchuk/order-finder/internal/common"
)

// ExcelSource reads an XLSX workbook through excelize. The workbook is
// reopened on every call so edits made by the production team are visible
// without restarting the bot; the Lookup caches keep the read volume down.
type ExcelSource struct {
	path   string
	logger *slog.Logger
}

func NewExcelSource(path string, logger *slog.Logger) *ExcelSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelSource{path: path, logger: logger}
}

func (s *ExcelSource) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, common.NewAppError("SHEET_OPEN", "opening workbook "+s.path, common.ErrLookupSource)
	}
	return f, nil
}

func (s *ExcelSource) FindCells(_ context.Context, sheet, value string) ([]string, error) {
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	addrs, err := f.SearchSheet(sheet, value)
	if err != nil {
		return nil, common.NewAppError("SHEET_SEARCH", "searching sheet "+sheet, common.ErrLookupSource)
	}
	return addrs, nil
}

func (s *ExcelSource) ReadCell(_ context.Context, sheet, addr string) (CellData, error) {
	f, err := s.open()
	if err != nil {
		return CellData{}, err
	}
	defer func() { _ = f.Close() }()

	value, err := f.GetCellValue(sheet, addr)
	if err != nil {
		return CellData{}, common.NewAppError("SHEET_READ", "reading cell "+addr, common.ErrLookupSource)
	}
	return CellData{Value: value, Fill: s.cellFill(f, sheet, addr)}, nil
}

// cellFill resolves the background color at addr. Any failure to resolve the
// style is treated as "no fill", not as an error: formatting on the
// production sheet is hand-maintained and often missing.
func (s *ExcelSource) cellFill(f *excelize.File, sheet, addr string) Color {
	styleID, err := f.GetCellStyle(sheet, addr)
	if err != nil {
		s.logger.Debug("cell style unavailable", "sheet", sheet, "cell", addr, "error", err)
		return Color{}
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil || len(style.Fill.Color) == 0 {
		return Color{}
	}
	hex := strings.ToUpper(strings.TrimPrefix(style.Fill.Color[0], "#"))
	if hex == "" {
		return Color{}
	}
	return Color{Hex: hex, Present: true}
}

func (s *ExcelSource) ReadColumn(_ context.Context, sheet string, col int) ([]string, error) {
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	cols, err := f.GetCols(sheet)
	if err != nil {
		return nil, common.NewAppError("SHEET_READ", "reading columns of "+sheet, common.ErrLookupSource)
	}
	if col < 1 || col > len(cols) {
		return nil, nil
	}
	values := cols[col-1]
	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	return values, nil
}
