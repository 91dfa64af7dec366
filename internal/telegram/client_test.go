package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavel-marchuk/order-finder/constants"
)

func TestNotify(t *testing.T) {
	var gotPath, gotChatID, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotChatID = r.URL.Query().Get("chat_id")
		gotText = r.URL.Query().Get("text")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, nil)
	err := c.Notify(context.Background(), "42", "hello", constants.LevelInfo)
	require.NoError(t, err)

	assert.Equal(t, "/botTOKEN/sendMessage", gotPath)
	assert.Equal(t, "42", gotChatID)
	assert.Equal(t, "hello", gotText)
}

func TestNotifyLevelTag(t *testing.T) {
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotText = r.URL.Query().Get("text")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, nil)
	require.NoError(t, c.Notify(context.Background(), "42", "boom", constants.LevelError))
	assert.Equal(t, "[ERROR]boom", gotText)

	require.NoError(t, c.Notify(context.Background(), "42", "hm", constants.LevelWarning))
	assert.Equal(t, "[WARNING]hm", gotText)
}

func TestNotifyRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, nil)
	err := c.Notify(context.Background(), "42", "hello", constants.LevelInfo)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNotifyGivesUpAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, nil)
	err := c.Notify(context.Background(), "42", "hello", constants.LevelInfo)
	assert.Error(t, err)
}
