package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/gen/ent"
	"github.com/pavel-marchuk/order-finder/gen/ent/workitem"
	"github.com/pavel-marchuk/order-finder/internal/common"
)

// WorkItemRepository owns the work_item lifecycle. The worker is the only
// writer of state transitions; ClaimNext is the serialization point that
// keeps that true when several worker processes share the store.
type WorkItemRepository interface {
	Create(ctx context.Context, chatID, orderID string) (*ent.WorkItem, error)
	ClaimNext(ctx context.Context) (*ent.WorkItem, error)
	MarkSucceeded(ctx context.Context, id uuid.UUID, result string) error
	MarkFailed(ctx context.Context, id uuid.UUID, detail string) error
	GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkItem, error)
	ListRecent(ctx context.Context, limit int) ([]*ent.WorkItem, error)
}

type workItemRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewWorkItemRepository(entc *ent.Client, log *slog.Logger) WorkItemRepository {
	if log == nil {
		log = slog.Default()
	}
	return &workItemRepo{ent: entc, log: log}
}

func (r *workItemRepo) Create(ctx context.Context, chatID, orderID string) (*ent.WorkItem, error) {
	item, err := r.ent.WorkItem.
		Create().
		SetChatID(chatID).
		SetOrderID(orderID).
		SetStatus(string(constants.StatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("work_item create failed", "chat_id", chatID, "order_id", orderID, "err", err)
		return nil, err
	}
	r.log.Info("work_item created", "item_id", item.ID, "order_id", orderID)
	return item, nil
}

// ClaimNext selects the oldest PENDING item and flips it to IN_PROGRESS in
// one transaction, locking the row for the whole select-and-transition so no
// two callers ever claim the same item. SKIP LOCKED lets concurrent workers
// claim unrelated items instead of queueing. Returns (nil, nil) when nothing
// is pending.
func (r *workItemRepo) ClaimNext(ctx context.Context) (*ent.WorkItem, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	item, err := tx.WorkItem.Query().
		Where(workitem.StatusEQ(string(constants.StatusPending))).
		Order(ent.Asc(workitem.FieldCreatedAt)).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, tx.Rollback()
	}
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	claimed, err := tx.WorkItem.UpdateOne(item).
		SetStatus(string(constants.StatusInProgress)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.log.Info("work_item claimed", "item_id", claimed.ID, "order_id", claimed.OrderID)
	return claimed, nil
}

func (r *workItemRepo) MarkSucceeded(ctx context.Context, id uuid.UUID, result string) error {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if constants.WorkItemStatus(item.Status).Terminal() {
		r.log.Warn("work_item already terminal, ignoring success", "item_id", id, "status", item.Status)
		return nil
	}
	_, err = r.ent.WorkItem.UpdateOneID(id).
		SetStatus(string(constants.StatusSucceeded)).
		SetResult(result).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("work_item finish(SUCCEEDED) failed", "item_id", id, "err", err)
		return err
	}
	r.log.Info("work_item finished (SUCCEEDED)", "item_id", id)
	return nil
}

func (r *workItemRepo) MarkFailed(ctx context.Context, id uuid.UUID, detail string) error {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if constants.WorkItemStatus(item.Status).Terminal() {
		r.log.Warn("work_item already terminal, ignoring failure", "item_id", id, "status", item.Status)
		return nil
	}
	_, err = r.ent.WorkItem.UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetErrorDetail(Truncate(detail, constants.ErrorDetailMaxLength)).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("work_item finish(FAILED) failed", "item_id", id, "err", err)
		return err
	}
	r.log.Warn("work_item finished (FAILED)", "item_id", id, "error", detail)
	return nil
}

func (r *workItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkItem, error) {
	item, err := r.ent.WorkItem.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("work_item %s: %w", id, common.ErrNotFound)
	}
	return item, err
}

func (r *workItemRepo) ListRecent(ctx context.Context, limit int) ([]*ent.WorkItem, error) {
	return r.ent.WorkItem.Query().
		Order(ent.Desc(workitem.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// Truncate caps s at max runes. Error details from the sheet layer can carry
// long upstream messages; the column is bounded.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
