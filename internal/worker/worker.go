// Package worker runs the claim-and-process loop: claim the oldest pending
// work item, look the order up, classify every matched row, store the
// terminal state and tell the chat. One item's failure never stops the loop;
// a store failure does, since no further progress is possible without it.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/gen/ent"
	"github.com/pavel-marchuk/order-finder/internal/classify"
	"github.com/pavel-marchuk/order-finder/internal/common"
	"github.com/pavel-marchuk/order-finder/internal/repository"
	"github.com/pavel-marchuk/order-finder/internal/sheets"
	"github.com/pavel-marchuk/order-finder/internal/telegram"
)

const (
	rowResultTemplate = "%s %s — %s"
	notFoundTemplate  = "%s: %s"
	failedTemplate    = "Event %s (order %s) failed with error: %s"
)

// LookupService is the slice of the sheets lookup the worker consumes.
type LookupService interface {
	TemplateSet(ctx context.Context) (sheets.TemplateSet, error)
	AnswerCatalog(ctx context.Context) ([]string, error)
	FindRows(ctx context.Context, orderID string) ([]sheets.MatchedRow, error)
}

// Worker is the single control loop of the bot.
type Worker struct {
	repo     repository.WorkItemRepository
	lookup   LookupService
	notifier telegram.Notifier
	interval time.Duration
	logger   *slog.Logger
}

func New(repo repository.WorkItemRepository, lookup LookupService, notifier telegram.Notifier, interval time.Duration, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{repo: repo, lookup: lookup, notifier: notifier, interval: interval, logger: logger}
}

// Run polls the store until ctx is cancelled or the store becomes
// unreachable. There is no push channel; the fixed poll interval is the
// pacing mechanism.
func (w *Worker) Run(ctx context.Context) error {
	for {
		claimed, err := w.RunOnce(ctx)
		if err != nil {
			return err
		}
		if claimed {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.interval):
		}
	}
}

// RunOnce performs one poll iteration. It reports whether an item was
// claimed; per-item failures are resolved on the item and do not surface
// here.
func (w *Worker) RunOnce(ctx context.Context) (bool, error) {
	item, err := w.repo.ClaimNext(ctx)
	if err != nil {
		return false, common.WrapError(err, "claiming next work item")
	}
	if item == nil {
		w.logger.Debug("iteration finished", "claimed", false)
		return false, nil
	}

	result, err := w.process(ctx, item)
	if err != nil {
		w.resolveFailure(ctx, item, err)
	} else {
		w.resolveSuccess(ctx, item, result)
	}
	w.logger.Info("iteration finished", "item_id", item.ID, "order_id", item.OrderID, "claimed", true, "failed", err != nil)
	return true, nil
}

// process composes the answer for one claimed item. All sheet access happens
// here, outside any store lock.
func (w *Worker) process(ctx context.Context, item *ent.WorkItem) (string, error) {
	rows, err := w.lookup.FindRows(ctx, item.OrderID)
	if err != nil {
		return "", err
	}

	catalog, err := w.lookup.AnswerCatalog(ctx)
	if err != nil {
		return "", err
	}

	if len(rows) == 0 {
		answer, err := answerAt(catalog, constants.AnswerNotFound)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(notFoundTemplate, answer, item.OrderID), nil
	}

	templates, err := w.lookup.TemplateSet(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		index := classify.Classify(row, templates)
		answer, err := answerAt(catalog, index)
		if err != nil {
			return "", err
		}
		w.logger.Debug("row classified",
			"order_id", item.OrderID, "cell", row.CellAddress,
			"rule", classify.RuleName(row, templates), "index", index)
		lines = append(lines, fmt.Sprintf(rowResultTemplate, row.Category, row.Qualifier, answer))
	}
	return strings.Join(lines, "\n"), nil
}

func (w *Worker) resolveSuccess(ctx context.Context, item *ent.WorkItem, result string) {
	if err := w.repo.MarkSucceeded(ctx, item.ID, result); err != nil {
		w.logger.Error("marking work item succeeded failed", "item_id", item.ID, "error", err)
	}
	if err := w.notifier.Notify(ctx, item.ChatID, result, constants.LevelInfo); err != nil {
		w.logger.Warn("success notification failed", "item_id", item.ID, "error", err)
	}
}

func (w *Worker) resolveFailure(ctx context.Context, item *ent.WorkItem, cause error) {
	detail := repository.Truncate(cause.Error(), constants.ErrorDetailMaxLength)
	if err := w.repo.MarkFailed(ctx, item.ID, detail); err != nil {
		w.logger.Error("marking work item failed failed", "item_id", item.ID, "error", err)
	}
	text := fmt.Sprintf(failedTemplate, item.ID, item.OrderID, detail)
	if err := w.notifier.Notify(ctx, item.ChatID, text, constants.LevelError); err != nil {
		w.logger.Warn("failure notification failed", "item_id", item.ID, "error", err)
	}
}

// answerAt guards catalog access: an index outside the catalog means the
// answer sheet and the rule table have drifted apart.
func answerAt(catalog []string, index int) (string, error) {
	if index < 0 || index >= len(catalog) {
		return "", common.NewAppError(
			"ANSWER_INDEX",
			fmt.Sprintf("answer index %d outside catalog of %d entries", index, len(catalog)),
			common.ErrClassify,
		)
	}
	return catalog[index], nil
}
