package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/pavel-marchuk/order-finder/constants"
)

// Notifier delivers a text to a chat. The core calls it on acceptance,
// success and failure; delivery is the notifier's own concern, the core
// never retries.
type Notifier interface {
	Notify(ctx context.Context, chatID, text string, level constants.MessageLevel) error
}

// Client is an explicitly constructed Telegram Bot API handle. It is passed
// into whatever needs to send messages; there is no ambient shared client.
type Client struct {
	sendMessageURL string
	http           *http.Client
	logger         *slog.Logger
}

func NewClient(apiBase, token string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		sendMessageURL: fmt.Sprintf("%s/bot%s/sendMessage", apiBase, token),
		http:           &http.Client{Timeout: timeout},
		logger:         logger,
	}
}

// Notify sends text to chatID, tagged "[LEVEL]" for anything above INFO.
// Transient delivery failures are retried here a few times; the final error
// is returned for the caller to log, never to act on.
func (c *Client) Notify(ctx context.Context, chatID, text string, level constants.MessageLevel) error {
	if level != constants.LevelInfo {
		text = fmt.Sprintf("[%s]%s", level, text)
	}

	params := url.Values{}
	params.Set("chat_id", chatID)
	params.Set("text", text)
	reqURL := c.sendMessageURL + "?" + params.Encode()

	err := retry.Do(
		func() error { return c.send(ctx, reqURL) },
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		c.logger.Error("telegram delivery failed", "chat_id", chatID, "level", level, "error", err)
		return err
	}
	return nil
}

func (c *Client) send(ctx context.Context, reqURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendMessage: status %d: %s", resp.StatusCode, body)
	}
	return nil
}
