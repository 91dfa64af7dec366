// Package webhook receives Telegram webhook updates over HTTP and feeds them
// to the orders service. Telegram retries any non-2xx response, so every
// outcome — including bad input — answers 200; rejections are reported back
// through the chat instead.
package webhook

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/internal/common"
	"github.com/pavel-marchuk/order-finder/internal/orders"
	"github.com/pavel-marchuk/order-finder/internal/telegram"
)

const maxUpdateBytes = 64 << 10

// Handler is the webhook endpoint.
type Handler struct {
	orders   *orders.Service
	notifier telegram.Notifier
	logger   *slog.Logger
}

func NewHandler(ordersSvc *orders.Service, notifier telegram.Notifier, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{orders: ordersSvc, notifier: notifier, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUpdateBytes))
	if err != nil {
		h.logger.Warn("reading webhook body failed", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	update, err := telegram.ParseUpdate(body)
	if err != nil {
		h.logger.Warn("dropping malformed update", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	if _, err := h.orders.Submit(r.Context(), update.ChatID, update.Text); err != nil {
		if errors.Is(err, common.ErrValidation) {
			// the chat id is known here, so the user gets told what was wrong
			if nerr := h.notifier.Notify(r.Context(), update.ChatID, validationMessage(err), constants.LevelWarning); nerr != nil {
				h.logger.Warn("validation notification failed", "chat_id", update.ChatID, "error", nerr)
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		h.logger.Error("order submission failed", "chat_id", update.ChatID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func validationMessage(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
