package usecases

import (
	"context"
	"fmt"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type ListSecurityEventsExecutor interface {
	Execute(ctx context.Context, workPerformedTypeID uint) ([]*catalog.SecurityEvent, error)
}

type ListSecurityEventsUseCase struct {
	workRepo catalog.WorkPerformedTypeRepository
	logger   logger.Interface
}

func NewListSecurityEventsUseCase(workRepo catalog.WorkPerformedTypeRepository, logger logger.Interface) *ListSecurityEventsUseCase {
	return &ListSecurityEventsUseCase{workRepo: workRepo, logger: logger}
}

func (uc *ListSecurityEventsUseCase) Execute(ctx context.Context, workPerformedTypeID uint) ([]*catalog.SecurityEvent, error) {
	if workPerformedTypeID == 0 {
		return nil, errors.NewValidationError("work performed type ID is required")
	}

	if _, err := uc.workRepo.GetByID(ctx, workPerformedTypeID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("work performed type %d not found", workPerformedTypeID))
	}

	events, err := uc.workRepo.ListSecurityEvents(ctx, workPerformedTypeID)
	if err != nil {
		uc.logger.Errorw("failed to list security events", "work_performed_type_id", workPerformedTypeID, "error", err)
		return nil, errors.NewInternalError("failed to list security events")
	}
	return events, nil
}
