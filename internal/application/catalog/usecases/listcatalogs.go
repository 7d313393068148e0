// Package usecases exposes the read-only catalog queries backing the
// reference-data endpoints.
package usecases

import (
	"context"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/domain/organization"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type ListDefectsExecutor interface {
	Execute(ctx context.Context) ([]*catalog.Defect, error)
}

type ListAddressesExecutor interface {
	Execute(ctx context.Context) ([]*catalog.Address, error)
}

type ListImplementingOrganizationsExecutor interface {
	Execute(ctx context.Context) ([]*organization.ImplementingOrganization, error)
}

type ListWorkPerformedTypesExecutor interface {
	Execute(ctx context.Context) ([]*catalog.WorkPerformedType, error)
}

type ListDefectsUseCase struct {
	defectRepo catalog.DefectRepository
	logger     logger.Interface
}

func NewListDefectsUseCase(defectRepo catalog.DefectRepository, logger logger.Interface) *ListDefectsUseCase {
	return &ListDefectsUseCase{defectRepo: defectRepo, logger: logger}
}

func (uc *ListDefectsUseCase) Execute(ctx context.Context) ([]*catalog.Defect, error) {
	defects, err := uc.defectRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list defects", "error", err)
		return nil, errors.NewInternalError("failed to list defects")
	}
	return defects, nil
}

type ListAddressesUseCase struct {
	addressRepo catalog.AddressRepository
	logger      logger.Interface
}

func NewListAddressesUseCase(addressRepo catalog.AddressRepository, logger logger.Interface) *ListAddressesUseCase {
	return &ListAddressesUseCase{addressRepo: addressRepo, logger: logger}
}

func (uc *ListAddressesUseCase) Execute(ctx context.Context) ([]*catalog.Address, error) {
	addresses, err := uc.addressRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list addresses", "error", err)
		return nil, errors.NewInternalError("failed to list addresses")
	}
	return addresses, nil
}

type ListImplementingOrganizationsUseCase struct {
	implRepo organization.ImplementingRepository
	logger   logger.Interface
}

func NewListImplementingOrganizationsUseCase(implRepo organization.ImplementingRepository, logger logger.Interface) *ListImplementingOrganizationsUseCase {
	return &ListImplementingOrganizationsUseCase{implRepo: implRepo, logger: logger}
}

func (uc *ListImplementingOrganizationsUseCase) Execute(ctx context.Context) ([]*organization.ImplementingOrganization, error) {
	orgs, err := uc.implRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list implementing organizations", "error", err)
		return nil, errors.NewInternalError("failed to list implementing organizations")
	}
	return orgs, nil
}

type ListWorkPerformedTypesUseCase struct {
	workRepo catalog.WorkPerformedTypeRepository
	logger   logger.Interface
}

func NewListWorkPerformedTypesUseCase(workRepo catalog.WorkPerformedTypeRepository, logger logger.Interface) *ListWorkPerformedTypesUseCase {
	return &ListWorkPerformedTypesUseCase{workRepo: workRepo, logger: logger}
}

func (uc *ListWorkPerformedTypesUseCase) Execute(ctx context.Context) ([]*catalog.WorkPerformedType, error) {
	types, err := uc.workRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list work performed types", "error", err)
		return nil, errors.NewInternalError("failed to list work performed types")
	}
	return types, nil
}
