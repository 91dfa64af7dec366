package sheets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavel-marchuk/order-finder/constants"
)

// fakeSource is an in-memory Source for lookup tests. Cells are keyed
// "sheet!addr"; reads are counted so caching behavior is observable.
type fakeSource struct {
	cells   map[string]CellData
	matches map[string][]string
	columns map[string][]string

	err       error
	readCalls int
	findCalls int
}

func (f *fakeSource) FindCells(_ context.Context, sheet, value string) ([]string, error) {
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.matches[sheet+"!"+value], nil
}

func (f *fakeSource) ReadCell(_ context.Context, sheet, addr string) (CellData, error) {
	f.readCalls++
	if f.err != nil {
		return CellData{}, f.err
	}
	return f.cells[sheet+"!"+addr], nil
}

func (f *fakeSource) ReadColumn(_ context.Context, sheet string, col int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.columns[fmt.Sprintf("%s!%d", sheet, col)], nil
}

func testConfig() Config {
	return Config{
		SearchSheet:  "production",
		AnswerSheet:  "answers",
		TemplatesTTL: time.Hour,
		AnswersTTL:   time.Hour,
		OrdersTTL:    time.Hour,
	}
}

func TestTemplateSet(t *testing.T) {
	red := Color{Hex: "FF0000", Present: true}
	src := &fakeSource{cells: map[string]CellData{
		"production!I1": {Fill: red},
		"production!J1": {Fill: Color{Hex: "00FF00", Present: true}},
		// K1 missing: the A5 template cell has no fill
	}}
	l := NewLookup(src, testConfig(), nil)

	set, err := l.TemplateSet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, red, set[constants.PaperFormatA3])
	assert.True(t, set[constants.PaperFormatA4].Present)
	assert.False(t, set[constants.PaperFormatA5].Present, "missing fill becomes an absent color, not an error")
}

func TestTemplateSetCaching(t *testing.T) {
	src := &fakeSource{cells: map[string]CellData{}}
	l := NewLookup(src, testConfig(), nil)

	_, err := l.TemplateSet(context.Background())
	require.NoError(t, err)
	first := src.readCalls

	_, err = l.TemplateSet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, src.readCalls, "second call within TTL must not hit the source")
}

func TestTemplateSetSourceErrorSurfaces(t *testing.T) {
	boom := errors.New("connection reset")
	l := NewLookup(&fakeSource{err: boom}, testConfig(), nil)

	_, err := l.TemplateSet(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAnswerCatalog(t *testing.T) {
	src := &fakeSource{columns: map[string][]string{
		"answers!4": {"a0", "a1", "a2", "not found", "combined"},
	}}
	l := NewLookup(src, testConfig(), nil)

	catalog, err := l.AnswerCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "not found", catalog[constants.AnswerNotFound])
	assert.Len(t, catalog, 5)
}

func TestFindRows(t *testing.T) {
	blue := Color{Hex: "0000FF", Present: true}
	gray := Color{Hex: "CCCCCC", Present: true}
	src := &fakeSource{
		matches: map[string][]string{"production!1234567": {"D12", "D40"}},
		cells: map[string]CellData{
			"production!D12": {Value: "1234567", Fill: blue},
			"production!B12": {Value: "баннер"},
			"production!C12": {Value: "3мм"},
			"production!F12": {Value: "", Fill: gray},
			"production!D40": {Value: "1234567"},
			"production!B40": {Value: "холст"},
			"production!C40": {Value: "5мм"},
		},
	}
	l := NewLookup(src, testConfig(), nil)

	rows, err := l.FindRows(context.Background(), "1234567")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "D12", rows[0].CellAddress)
	assert.Equal(t, 12, rows[0].Row)
	assert.Equal(t, 4, rows[0].Col)
	assert.Equal(t, "баннер", rows[0].Category)
	assert.Equal(t, "3мм", rows[0].Qualifier)
	assert.Equal(t, blue, rows[0].PrimaryColor)
	assert.Equal(t, gray, rows[0].SecondaryColor)

	assert.Equal(t, "холст", rows[1].Category)
	assert.False(t, rows[1].PrimaryColor.Present)
}

func TestFindRowsNoMatches(t *testing.T) {
	l := NewLookup(&fakeSource{}, testConfig(), nil)

	rows, err := l.FindRows(context.Background(), "7654321")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindRowsCachedPerOrder(t *testing.T) {
	src := &fakeSource{matches: map[string][]string{}}
	l := NewLookup(src, testConfig(), nil)

	_, err := l.FindRows(context.Background(), "1111111")
	require.NoError(t, err)
	_, err = l.FindRows(context.Background(), "1111111")
	require.NoError(t, err)
	assert.Equal(t, 1, src.findCalls)

	_, err = l.FindRows(context.Background(), "2222222")
	require.NoError(t, err)
	assert.Equal(t, 2, src.findCalls, "a different order id is its own cache key")
}

func TestFindRowsSourceErrorSurfaces(t *testing.T) {
	boom := errors.New("unauthorized")
	l := NewLookup(&fakeSource{err: boom}, testConfig(), nil)

	_, err := l.FindRows(context.Background(), "1234567")
	assert.ErrorIs(t, err, boom)
}
