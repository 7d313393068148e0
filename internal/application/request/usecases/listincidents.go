package usecases

import (
	"context"

	"upravdom/internal/application/request/dto"
	"upravdom/internal/domain/catalog"
	"upravdom/internal/domain/request"
	vo "upravdom/internal/domain/request/valueobjects"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type ListIncidentsQuery struct{}

// ListIncidentsUseCase returns every incident parent with the linked
// requests confirmed as members. A linked request only counts as a
// member when it is still open, its defect category and problem
// address match the parent's, and the parent was created between one
// and seven days before it.
type ListIncidentsUseCase struct {
	requestRepo request.Repository
	defectRepo  catalog.DefectRepository
	addressRepo catalog.AddressRepository
	logger      logger.Interface
}

func NewListIncidentsUseCase(
	requestRepo request.Repository,
	defectRepo catalog.DefectRepository,
	addressRepo catalog.AddressRepository,
	logger logger.Interface,
) *ListIncidentsUseCase {
	return &ListIncidentsUseCase{
		requestRepo: requestRepo,
		defectRepo:  defectRepo,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

func (uc *ListIncidentsUseCase) Execute(ctx context.Context, _ ListIncidentsQuery) ([]dto.IncidentGroupDTO, error) {
	sign := vo.IncidentSignYes
	parents, err := uc.requestRepo.List(ctx, request.Filter{IncidentSign: &sign})
	if err != nil {
		uc.logger.Errorw("failed to list incident parents", "error", err)
		return nil, errors.NewInternalError("failed to list incidents")
	}

	groups := make([]dto.IncidentGroupDTO, 0, len(parents))
	for _, parent := range parents {
		children, err := uc.requestRepo.ListByParentRootID(ctx, parent.RootID())
		if err != nil {
			uc.logger.Errorw("failed to list incident members", "parent_root_id", parent.RootID(), "error", err)
			return nil, errors.NewInternalError("failed to list incidents")
		}

		parentAttrs, err := uc.requestAttributes(ctx, parent)
		if err != nil {
			return nil, err
		}

		members := make([]dto.RequestListItemDTO, 0, len(children))
		for _, child := range children {
			if !child.Status().IsOpen() {
				continue
			}
			childAttrs, err := uc.requestAttributes(ctx, child)
			if err != nil {
				return nil, err
			}
			ok := request.IsIncidentMember(child, parent, request.MembershipParams{
				ChildCategory:  childAttrs.category,
				ParentCategory: parentAttrs.category,
				ChildAddress:   childAttrs.address,
				ParentAddress:  parentAttrs.address,
			})
			if !ok {
				continue
			}
			members = append(members, dto.ToRequestListItemDTO(child))
		}

		groups = append(groups, dto.IncidentGroupDTO{
			Parent:  dto.ToRequestListItemDTO(parent),
			Members: members,
		})
	}

	return groups, nil
}

type requestAttributes struct {
	category string
	address  string
}

func (uc *ListIncidentsUseCase) requestAttributes(ctx context.Context, r *request.Request) (requestAttributes, error) {
	defect, err := uc.defectRepo.GetByID(ctx, r.DefectID())
	if err != nil {
		uc.logger.Errorw("failed to get defect", "defect_id", r.DefectID(), "error", err)
		return requestAttributes{}, errors.NewInternalError("failed to load defect")
	}
	address, err := uc.addressRepo.GetByID(ctx, r.AddressID())
	if err != nil {
		uc.logger.Errorw("failed to get address", "address_id", r.AddressID(), "error", err)
		return requestAttributes{}, errors.NewInternalError("failed to load address")
	}
	return requestAttributes{category: defect.CategoryName, address: address.ProblemAddress}, nil
}
