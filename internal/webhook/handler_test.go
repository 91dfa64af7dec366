package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/gen/ent"
	"github.com/pavel-marchuk/order-finder/internal/orders"
)

type fakeRepo struct {
	mu      sync.Mutex
	created []*ent.WorkItem
}

func (f *fakeRepo) Create(_ context.Context, chatID, orderID string) (*ent.WorkItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := &ent.WorkItem{ID: uuid.New(), ChatID: chatID, OrderID: orderID, Status: string(constants.StatusPending)}
	f.created = append(f.created, item)
	return item, nil
}

func (f *fakeRepo) ClaimNext(context.Context) (*ent.WorkItem, error)       { panic("not used") }
func (f *fakeRepo) MarkSucceeded(context.Context, uuid.UUID, string) error { panic("not used") }
func (f *fakeRepo) MarkFailed(context.Context, uuid.UUID, string) error    { panic("not used") }
func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*ent.WorkItem, error) {
	panic("not used")
}
func (f *fakeRepo) ListRecent(context.Context, int) ([]*ent.WorkItem, error) { panic("not used") }

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

func newTestHandler() (*Handler, *fakeRepo, *fakeNotifier) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := orders.NewService(repo, notifier, nil)
	return NewHandler(svc, notifier, nil), repo, notifier
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestWebhookAcceptsOrder(t *testing.T) {
	h, repo, notifier := newTestHandler()

	rec := post(h, `{"message": {"chat": {"id": 42}, "text": "1234567"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "1234567", repo.created[0].OrderID)
	assert.Equal(t, "42", repo.created[0].ChatID)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, constants.LevelInfo, notifier.calls[0].level)
}

func TestWebhookRejectsBadOrderNumber(t *testing.T) {
	h, repo, notifier := newTestHandler()

	rec := post(h, `{"message": {"chat": {"id": 42}, "text": "12345"}}`)
	// Telegram retries non-2xx responses, so bad input still answers 200
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.created)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "42", notifier.calls[0].chatID)
	assert.Equal(t, constants.LevelWarning, notifier.calls[0].level)
	assert.Contains(t, notifier.calls[0].text, "12345")
}

func TestWebhookDropsMalformedUpdate(t *testing.T) {
	h, repo, notifier := newTestHandler()

	for _, body := range []string{`{{{`, `{"message": {"chat": {"id": 42}}}`, `{}`} {
		rec := post(h, body)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.calls)
}

func TestWebhookMethodNotAllowed(t *testing.T) {
	h, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
