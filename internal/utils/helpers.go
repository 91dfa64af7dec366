package utils

import (
	"time"

	"github.com/pavel-marchuk/order-finder/gen/ent"
	finderv1 "github.com/pavel-marchuk/order-finder/gen/proto/finder/v1"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToPBWorkItem(item *ent.WorkItem) *finderv1.WorkItem {
	return &finderv1.WorkItem{
		Id:          item.ID.String(),
		ChatId:      item.ChatID,
		OrderId:     item.OrderID,
		Status:      item.Status,
		Result:      strOrEmpty(item.Result),
		ErrorDetail: strOrEmpty(item.ErrorDetail),
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.UTC().Format(time.RFC3339),
		FinishedAt:  timeOrEmpty(item.FinishedAt),
	}
}
