package usecases

import (
	"context"

	"upravdom/internal/application/request/dto"
	"upravdom/internal/domain/request"
	vo "upravdom/internal/domain/request/valueobjects"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

// List buckets exposed by the HTTP surface. The active bucket covers
// every non-closed status.
const (
	BucketAll        = ""
	BucketActive     = "active"
	BucketNew        = "new"
	BucketPending    = "pending"
	BucketInProgress = "in_progress"
	BucketClosed     = "closed"
)

type ListRequestsQuery struct {
	Bucket string
}

type ListRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(requestRepo request.Repository, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{requestRepo: requestRepo, logger: logger}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]dto.RequestListItemDTO, error) {
	filter, err := bucketFilter(query.Bucket)
	if err != nil {
		return nil, err
	}

	requests, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "bucket", query.Bucket, "error", err)
		return nil, errors.NewInternalError("failed to list requests")
	}

	return dto.ToRequestListItemDTOs(requests), nil
}

func bucketFilter(bucket string) (request.Filter, error) {
	switch bucket {
	case BucketAll:
		return request.Filter{}, nil
	case BucketActive:
		return request.Filter{Statuses: []vo.Status{
			vo.StatusNew, vo.StatusPendingProcessing, vo.StatusInProgress,
		}}, nil
	case BucketNew:
		return request.Filter{Statuses: []vo.Status{vo.StatusNew}}, nil
	case BucketPending:
		return request.Filter{Statuses: []vo.Status{vo.StatusPendingProcessing}}, nil
	case BucketInProgress:
		return request.Filter{Statuses: []vo.Status{vo.StatusInProgress}}, nil
	case BucketClosed:
		return request.Filter{Statuses: []vo.Status{vo.StatusClosed}}, nil
	default:
		return request.Filter{}, errors.NewValidationError("unknown request bucket: " + bucket)
	}
}
