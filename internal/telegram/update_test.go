package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavel-marchuk/order-finder/internal/common"
)

func TestParseUpdate(t *testing.T) {
	body := []byte(`{"update_id": 7, "message": {"message_id": 1, "chat": {"id": 123456789, "type": "private"}, "text": "1234567"}}`)

	update, err := ParseUpdate(body)
	require.NoError(t, err)
	assert.Equal(t, "123456789", update.ChatID)
	assert.Equal(t, "1234567", update.Text)
}

func TestParseUpdateNegativeChatID(t *testing.T) {
	// group chats have negative ids
	update, err := ParseUpdate([]byte(`{"message": {"chat": {"id": -1001234}, "text": "hi"}}`))
	require.NoError(t, err)
	assert.Equal(t, "-1001234", update.ChatID)
}

func TestParseUpdateRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"no message", `{"update_id": 7}`},
		{"no text", `{"message": {"chat": {"id": 1}}}`},
		{"no chat", `{"message": {"text": "1234567"}}`},
		{"chat id not integer", `{"message": {"chat": {"id": "abc"}, "text": "1234567"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUpdate([]byte(tt.body))
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}
