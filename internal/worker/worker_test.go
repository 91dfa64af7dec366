package worker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/gen/ent"
	"github.com/pavel-marchuk/order-finder/internal/repository"
	"github.com/pavel-marchuk/order-finder/internal/sheets"
)

// memStore implements the store contract in memory: one mutex serializes the
// whole select-and-transition, so no item is ever claimed twice.
type memStore struct {
	mu       sync.Mutex
	items    []*ent.WorkItem
	claimErr error
}

func (s *memStore) add(orderID string) *ent.WorkItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &ent.WorkItem{
		ID:        uuid.New(),
		ChatID:    "42",
		OrderID:   orderID,
		Status:    string(constants.StatusPending),
		CreatedAt: time.Now(),
	}
	s.items = append(s.items, item)
	return item
}

func (s *memStore) Create(_ context.Context, chatID, orderID string) (*ent.WorkItem, error) {
	return s.add(orderID), nil
}

func (s *memStore) ClaimNext(context.Context) (*ent.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimErr != nil {
		return nil, s.claimErr
	}
	for _, item := range s.items {
		if item.Status == string(constants.StatusPending) {
			item.Status = string(constants.StatusInProgress)
			return item, nil
		}
	}
	return nil, nil
}

func (s *memStore) finish(id uuid.UUID, status constants.WorkItemStatus, result, detail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID != id {
			continue
		}
		if constants.WorkItemStatus(item.Status).Terminal() {
			return nil
		}
		item.Status = string(status)
		if result != "" {
			item.Result = &result
		}
		if detail != "" {
			d := repository.Truncate(detail, constants.ErrorDetailMaxLength)
			item.ErrorDetail = &d
		}
		now := time.Now()
		item.FinishedAt = &now
		return nil
	}
	return errors.New("work item not found")
}

func (s *memStore) MarkSucceeded(_ context.Context, id uuid.UUID, result string) error {
	return s.finish(id, constants.StatusSucceeded, result, "")
}

func (s *memStore) MarkFailed(_ context.Context, id uuid.UUID, detail string) error {
	return s.finish(id, constants.StatusFailed, "", detail)
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*ent.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, errors.New("work item not found")
}

func (s *memStore) ListRecent(context.Context, int) ([]*ent.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*ent.WorkItem(nil), s.items...), nil
}

type fakeLookup struct {
	rows      []sheets.MatchedRow
	rowsErr   error
	catalog   []string
	templates sheets.TemplateSet
}

func (f *fakeLookup) TemplateSet(context.Context) (sheets.TemplateSet, error) {
	return f.templates, nil
}

func (f *fakeLookup) AnswerCatalog(context.Context) ([]string, error) {
	return f.catalog, nil
}

func (f *fakeLookup) FindRows(context.Context, string) ([]sheets.MatchedRow, error) {
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	return f.rows, nil
}

type notifyCall struct {
	chatID string
	text   string
	level  constants.MessageLevel
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

func (f *fakeNotifier) Notify(_ context.Context, chatID, text string, level constants.MessageLevel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notifyCall{chatID: chatID, text: text, level: level})
	return nil
}

func testCatalog() []string {
	return []string{
		"a0", "a1", "a2",
		"Заказ не найден",
		"a4", "a5", "a6", "a7",
		"глянцевая бумага",
		"стандартная печать",
	}
}

func TestWorkerComposesResultForTwoRows(t *testing.T) {
	blue := sheets.Color{Hex: "0000FF", Present: true}
	store := &memStore{}
	item := store.add("1234567")

	lookup := &fakeLookup{
		templates: sheets.TemplateSet{constants.PaperFormatA5: blue},
		catalog:   testCatalog(),
		rows: []sheets.MatchedRow{
			{Category: "баннер", Qualifier: "3мм", PrimaryColor: blue}, // A5 rule, index 8
			{Category: "холст", Qualifier: "5мм"},                      // no rule, default index
		},
	}
	notifier := &fakeNotifier{}
	w := New(store, lookup, notifier, time.Millisecond, nil)

	claimed, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, claimed)

	assert.Equal(t, string(constants.StatusSucceeded), item.Status)
	require.NotNil(t, item.Result)
	assert.Equal(t, "баннер 3мм — глянцевая бумага\nхолст 5мм — стандартная печать", *item.Result)
	require.NotNil(t, item.FinishedAt)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, constants.LevelInfo, notifier.calls[0].level)
	assert.Equal(t, *item.Result, notifier.calls[0].text)
}

func TestWorkerNotFoundFallback(t *testing.T) {
	store := &memStore{}
	item := store.add("1234567")
	lookup := &fakeLookup{catalog: testCatalog()}
	notifier := &fakeNotifier{}
	w := New(store, lookup, notifier, time.Millisecond, nil)

	claimed, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, claimed)

	assert.Equal(t, string(constants.StatusSucceeded), item.Status)
	require.NotNil(t, item.Result)
	assert.Equal(t, "Заказ не найден: 1234567", *item.Result)
}

func TestWorkerLookupFailure(t *testing.T) {
	store := &memStore{}
	item := store.add("1234567")
	longErr := strings.Repeat("внешний источник недоступен; ", 20)
	lookup := &fakeLookup{rowsErr: errors.New(longErr)}
	notifier := &fakeNotifier{}
	w := New(store, lookup, notifier, time.Millisecond, nil)

	claimed, err := w.RunOnce(context.Background())
	require.NoError(t, err, "a per-item failure must not surface from the loop")
	assert.True(t, claimed)

	assert.Equal(t, string(constants.StatusFailed), item.Status)
	require.NotNil(t, item.ErrorDetail)
	assert.NotEmpty(t, *item.ErrorDetail)
	assert.LessOrEqual(t, len([]rune(*item.ErrorDetail)), constants.ErrorDetailMaxLength)
	require.NotNil(t, item.FinishedAt)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, constants.LevelError, notifier.calls[0].level)
	assert.Contains(t, notifier.calls[0].text, "1234567")
}

func TestWorkerCatalogTooShort(t *testing.T) {
	store := &memStore{}
	item := store.add("1234567")
	// default index points past the end of this catalog
	lookup := &fakeLookup{
		catalog: []string{"a0", "a1", "a2", "not found"},
		rows:    []sheets.MatchedRow{{Category: "баннер"}},
	}
	w := New(store, lookup, &fakeNotifier{}, time.Millisecond, nil)

	_, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusFailed), item.Status)
}

func TestWorkerEmptyQueue(t *testing.T) {
	w := New(&memStore{}, &fakeLookup{}, &fakeNotifier{}, time.Millisecond, nil)

	claimed, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestWorkerStopsOnStoreFailure(t *testing.T) {
	store := &memStore{claimErr: errors.New("store unreachable")}
	w := New(store, &fakeLookup{}, &fakeNotifier{}, time.Millisecond, nil)

	err := w.Run(context.Background())
	assert.ErrorContains(t, err, "store unreachable")
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := New(&memStore{}, &fakeLookup{}, &fakeNotifier{}, 10*time.Millisecond, nil)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestWorkerDrainsQueueToTerminalStates(t *testing.T) {
	store := &memStore{}
	for _, id := range []string{"1111111", "2222222", "3333333"} {
		store.add(id)
	}
	lookup := &fakeLookup{catalog: testCatalog()}
	w := New(store, lookup, &fakeNotifier{}, time.Millisecond, nil)

	for {
		claimed, err := w.RunOnce(context.Background())
		require.NoError(t, err)
		if !claimed {
			break
		}
	}

	for _, item := range store.items {
		assert.True(t, constants.WorkItemStatus(item.Status).Terminal(), "item %s not terminal", item.OrderID)
		assert.NotNil(t, item.FinishedAt)
	}
}

func TestClaimNextConcurrent(t *testing.T) {
	store := &memStore{}
	for _, id := range []string{"1111111", "2222222", "3333333"} {
		store.add(id)
	}

	const callers = 10
	results := make(chan *ent.WorkItem, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := store.ClaimNext(context.Background())
			assert.NoError(t, err)
			results <- item
		}()
	}
	wg.Wait()
	close(results)

	claimed := map[uuid.UUID]int{}
	empty := 0
	for item := range results {
		if item == nil {
			empty++
			continue
		}
		claimed[item.ID]++
	}
	assert.Len(t, claimed, 3, "each pending item claimed by exactly one caller")
	for id, n := range claimed {
		assert.Equal(t, 1, n, "item %s claimed %d times", id, n)
	}
	assert.Equal(t, callers-3, empty)
}
