package orders

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/gen/ent"
	"github.com/pavel-marchuk/order-finder/internal/common"
)

type fakeRepo struct {
	created []*ent.WorkItem
	err     error
}

func (f *fakeRepo) Create(_ context.Context, chatID, orderID string) (*ent.WorkItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item := &ent.WorkItem{
		ID:      uuid.New(),
		ChatID:  chatID,
		OrderID: orderID,
		Status:  string(constants.StatusPending),
	}
	f.created = append(f.created, item)
	return item, nil
}

func (f *fakeRepo) ClaimNext(context.Context) (*ent.WorkItem, error) { panic("not used") }
func (f *fakeRepo) MarkSucceeded(context.Context, uuid.UUID, string) error {
	panic("not used")
}
func (f *fakeRepo) MarkFailed(context.Context, uuid.UUID, string) error { panic("not used") }
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
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, chatID, text string, level constants.MessageLevel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notifyCall{chatID: chatID, text: text, level: level})
	return f.err
}

func TestSubmitValidOrder(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, nil)

	item, err := svc.Submit(context.Background(), "42", "1234567")
	require.NoError(t, err)
	require.NotNil(t, item)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "1234567", repo.created[0].OrderID)
	assert.Equal(t, string(constants.StatusPending), repo.created[0].Status)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "42", notifier.calls[0].chatID)
	assert.Equal(t, "Event searching order 1234567 has been created", notifier.calls[0].text)
	assert.Equal(t, constants.LevelInfo, notifier.calls[0].level)
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeNotifier{}, nil)

	_, err := svc.Submit(context.Background(), "42", "  1234567 ")
	require.NoError(t, err)
	assert.Equal(t, "1234567", repo.created[0].OrderID)
}

func TestSubmitInvalidOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too short", "123456"},
		{"too long", "12345678"},
		{"not numeric", "12a4567"},
		{"empty", ""},
		{"negative", "-123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			notifier := &fakeNotifier{}
			svc := NewService(repo, notifier, nil)

			_, err := svc.Submit(context.Background(), "42", tt.text)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Empty(t, repo.created, "no work item on validation failure")
			assert.Empty(t, notifier.calls, "no notification on validation failure")
		})
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	boom := errors.New("connection refused")
	notifier := &fakeNotifier{}
	svc := NewService(&fakeRepo{err: boom}, notifier, nil)

	_, err := svc.Submit(context.Background(), "42", "1234567")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, notifier.calls)
}

func TestSubmitNotifierFailureDoesNotFailSubmit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeNotifier{err: errors.New("telegram down")}, nil)

	item, err := svc.Submit(context.Background(), "42", "1234567")
	require.NoError(t, err)
	assert.NotNil(t, item)
	assert.Len(t, repo.created, 1)
}
