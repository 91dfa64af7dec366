package telegram

import (
	"encoding/json"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pavel-marchuk/order-finder/internal/common"
)

// Update is the slice of a Telegram webhook update the bot cares about:
// who asked, and the text they sent.
type Update struct {
	ChatID string
	Text   string
}

const updateSchemaJSON = `{
	"type": "object",
	"required": ["message"],
	"properties": {
		"message": {
			"type": "object",
			"required": ["chat", "text"],
			"properties": {
				"chat": {
					"type": "object",
					"required": ["id"],
					"properties": {
						"id": {"type": "integer"}
					}
				},
				"text": {"type": "string"}
			}
		}
	}
}`

var updateSchema = jsonschema.MustCompileString("update.json", updateSchemaJSON)

// ParseUpdate validates body against the update schema and extracts the chat
// id and message text. Updates without a text message (stickers, edits,
// channel posts) fail validation and are dropped by the caller.
func ParseUpdate(body []byte) (Update, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return Update{}, common.NewAppError("BAD_UPDATE", "update is not valid JSON", common.ErrValidation)
	}
	if err := updateSchema.Validate(v); err != nil {
		return Update{}, common.NewAppError("BAD_UPDATE", "update does not match schema", common.ErrValidation)
	}

	var payload struct {
		Message struct {
			Chat struct {
				ID int64 `json:"id"`
			} `json:"chat"`
			Text string `json:"text"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Update{}, common.NewAppError("BAD_UPDATE", "decoding update", common.ErrValidation)
	}
	return Update{
		ChatID: strconv.FormatInt(payload.Message.Chat.ID, 10),
		Text:   payload.Message.Text,
	}, nil
}
