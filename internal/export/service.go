package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pavel-marchuk/order-finder/internal/repository"
)

// Service produces XLSX bytes from the work item audit log. Work items are
// never deleted, so this is the operator's view of what the bot has been
// asked and how it answered.
type Service struct {
	repo   repository.WorkItemRepository
	logger *slog.Logger
}

func NewService(repo repository.WorkItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportWorkItemsXLSX returns an XLSX workbook (as bytes) with the most
// recent limit work items, newest first.
func (s *Service) ExportWorkItemsXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	items, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query work items: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "WorkItems"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"ID",
		"Chat",
		"Order",
		"Status",
		"Result",
		"Error",
		"Created At",
		"Finished At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, item := range items {
		row := rowIdx + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, item.ID.String())
		write(2, item.ChatID)
		write(3, item.OrderID)
		write(4, item.Status)
		write(5, strOrEmpty(item.Result))
		write(6, strOrEmpty(item.ErrorDetail))
		write(7, item.CreatedAt.UTC().Format(time.RFC3339))
		write(8, timeOrEmpty(item.FinishedAt))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("work items exported", "items", len(items), "took", time.Since(start).String())
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
