package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/gen/ent"
)

type fakeRepo struct {
	items []*ent.WorkItem
}

func (f *fakeRepo) ListRecent(_ context.Context, limit int) ([]*ent.WorkItem, error) {
	if limit < len(f.items) {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func (f *fakeRepo) Create(context.Context, string, string) (*ent.WorkItem, error) {
	panic("not used")
}
func (f *fakeRepo) ClaimNext(context.Context) (*ent.WorkItem, error)       { panic("not used") }
func (f *fakeRepo) MarkSucceeded(context.Context, uuid.UUID, string) error { panic("not used") }
func (f *fakeRepo) MarkFailed(context.Context, uuid.UUID, string) error    { panic("not used") }
func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*ent.WorkItem, error) {
	panic("not used")
}

func TestExportWorkItemsXLSX(t *testing.T) {
	result := "баннер 3мм — глянцевая бумага"
	finished := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{items: []*ent.WorkItem{
		{
			ID:         uuid.New(),
			ChatID:     "42",
			OrderID:    "1234567",
			Status:     string(constants.StatusSucceeded),
			Result:     &result,
			CreatedAt:  finished.Add(-time.Minute),
			FinishedAt: &finished,
		},
		{
			ID:        uuid.New(),
			ChatID:    "43",
			OrderID:   "7654321",
			Status:    string(constants.StatusPending),
			CreatedAt: finished,
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportWorkItemsXLSX(context.Background(), 50)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "WorkItems"
	header, err := f.GetCellValue(sheet, "C1")
	require.NoError(t, err)
	assert.Equal(t, "Order", header)

	order, _ := f.GetCellValue(sheet, "C2")
	assert.Equal(t, "1234567", order)
	status, _ := f.GetCellValue(sheet, "D2")
	assert.Equal(t, string(constants.StatusSucceeded), status)
	res, _ := f.GetCellValue(sheet, "E2")
	assert.Equal(t, result, res)
	fin, _ := f.GetCellValue(sheet, "H2")
	assert.Equal(t, "2026-08-30T12:00:00Z", fin)

	// pending row has no result or finish time
	res2, _ := f.GetCellValue(sheet, "E3")
	assert.Empty(t, res2)
	fin2, _ := f.GetCellValue(sheet, "H3")
	assert.Empty(t, fin2)
}
