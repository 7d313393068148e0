package usecases

import (
	"context"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type ListRefusalReasonsExecutor interface {
	Execute(ctx context.Context) (*RefusalReasons, error)
}

// RefusalReasons groups the two refusal registries: reasons an executor
// gives and reasons an implementing organization gives.
type RefusalReasons struct {
	Executor                 []*catalog.RefusalReason
	ImplementingOrganization []*catalog.RefusalReason
}

type ListRefusalReasonsUseCase struct {
	refusalRepo catalog.RefusalReasonRepository
	logger      logger.Interface
}

func NewListRefusalReasonsUseCase(refusalRepo catalog.RefusalReasonRepository, logger logger.Interface) *ListRefusalReasonsUseCase {
	return &ListRefusalReasonsUseCase{refusalRepo: refusalRepo, logger: logger}
}

func (uc *ListRefusalReasonsUseCase) Execute(ctx context.Context) (*RefusalReasons, error) {
	executor, err := uc.refusalRepo.ListExecutor(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list executor refusal reasons", "error", err)
		return nil, errors.NewInternalError("failed to list refusal reasons")
	}

	implementing, err := uc.refusalRepo.ListImplementing(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list implementing organization refusal reasons", "error", err)
		return nil, errors.NewInternalError("failed to list refusal reasons")
	}

	return &RefusalReasons{
		Executor:                 executor,
		ImplementingOrganization: implementing,
	}, nil
}
