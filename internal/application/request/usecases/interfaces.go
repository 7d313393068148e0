package usecases

import (
	"context"

	"upravdom/internal/application/request/dto"
)

// TransactionManager runs a unit of work atomically. The identifier
// mint, incident correlation, and persistence of a request must share
// one transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) ([]dto.RequestListItemDTO, error)
}

type ReworkRequestExecutor interface {
	Execute(ctx context.Context, cmd ReworkRequestCommand) (*ReworkRequestResult, error)
}

type CloseRequestExecutor interface {
	Execute(ctx context.Context, cmd CloseRequestCommand) (*CloseRequestResult, error)
}

type ListIncidentsExecutor interface {
	Execute(ctx context.Context, query ListIncidentsQuery) ([]dto.IncidentGroupDTO, error)
}

type SubmitReviewExecutor interface {
	Execute(ctx context.Context, cmd SubmitReviewCommand) (*SubmitReviewResult, error)
}
