// Package orders is the submission facade: everything that turns an incoming
// chat message into a pending work item goes through here, regardless of
// which surface (webhook, gRPC) received it.
package orders

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/gen/ent"
	"github.com/pavel-marchuk/order-finder/internal/common"
	"github.com/pavel-marchuk/order-finder/internal/repository"
	"github.com/pavel-marchuk/order-finder/internal/telegram"
)

const acceptedTemplate = "Event searching order %s has been created"

// Service handles order submission.
type Service struct {
	repo     repository.WorkItemRepository
	notifier telegram.Notifier
	logger   *slog.Logger
}

func NewService(repo repository.WorkItemRepository, notifier telegram.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// Submit validates orderText as an order number, persists a pending work item
// for it and acknowledges the chat. Exactly one item and one acknowledgement
// per valid submission; an invalid order number creates nothing.
func (s *Service) Submit(ctx context.Context, chatID, orderText string) (*ent.WorkItem, error) {
	orderID := strings.TrimSpace(orderText)
	if err := common.ValidateOrderID(orderID); err != nil {
		s.logger.Warn("order submission rejected", "chat_id", chatID, "order_text", orderText)
		return nil, err
	}

	item, err := s.repo.Create(ctx, chatID, orderID)
	if err != nil {
		return nil, common.WrapError(err, "creating work item")
	}

	if err := s.notifier.Notify(ctx, chatID, fmt.Sprintf(acceptedTemplate, orderID), constants.LevelInfo); err != nil {
		// acceptance delivery is best effort; the item is already queued
		s.logger.Warn("acceptance notification failed", "item_id", item.ID, "error", err)
	}
	return item, nil
}
