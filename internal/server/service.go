package server

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	finderv1 "github.com/pavel-marchuk/order-finder/gen/proto/finder/v1"
	"github.com/pavel-marchuk/order-finder/internal/common"
	"github.com/pavel-marchuk/order-finder/internal/orders"
	"github.com/pavel-marchuk/order-finder/internal/repository"
	"github.com/pavel-marchuk/order-finder/internal/utils"
)

const defaultListLimit = 50

type FinderService struct {
	finderv1.UnimplementedFinderServiceServer
	orders *orders.Service
	repo   repository.WorkItemRepository
	logger *zap.Logger
}

func NewFinderService(ordersSvc *orders.Service, repo repository.WorkItemRepository, logger *zap.Logger) *FinderService {
	return &FinderService{orders: ordersSvc, repo: repo, logger: logger}
}

func (s *FinderService) SubmitLookup(ctx context.Context, req *finderv1.SubmitLookupRequest) (*finderv1.SubmitLookupResponse, error) {
	chatID := req.GetChatId()
	if chatID == "" {
		return nil, status.Error(codes.InvalidArgument, "chat_id is required")
	}

	item, err := s.orders.Submit(ctx, chatID, req.GetOrderId())
	if errors.Is(err, common.ErrValidation) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		s.logger.Warn("submit lookup failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "submit lookup failed")
	}

	return &finderv1.SubmitLookupResponse{Item: utils.ToPBWorkItem(item)}, nil
}

func (s *FinderService) GetWorkItem(ctx context.Context, req *finderv1.GetWorkItemRequest) (*finderv1.GetWorkItemResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	item, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "work item not found")
	}
	if err != nil {
		s.logger.Warn("get work item failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "get work item failed")
	}

	return &finderv1.GetWorkItemResponse{Item: utils.ToPBWorkItem(item)}, nil
}

func (s *FinderService) ListWorkItems(ctx context.Context, req *finderv1.ListWorkItemsRequest) (*finderv1.ListWorkItemsResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultListLimit
	}

	items, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Warn("list work items failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list work items failed")
	}

	out := make([]*finderv1.WorkItem, 0, len(items))
	for _, item := range items {
		out = append(out, utils.ToPBWorkItem(item))
	}
	return &finderv1.ListWorkItemsResponse{Items: out}, nil
}
