package usecases

import (
	"context"
	"fmt"
	"time"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/domain/request"
	vo "upravdom/internal/domain/request/valueobjects"
	"upravdom/internal/shared/biztime"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type CreateRequestCommand struct {
	PublicServicesNumber string
	SourceName           string
	SourceCode           string
	CreatorName          string
	Description          string
	Comments             string
	Question             string
	Urgency              string
	AddressID            uint
	Entrance             *uint
	Floor                *uint
	Apartment            *uint
	ExecutorID           uint
	DefectID             uint
	UserID               uint
	PaymentCategoryName  string
	PaymentCategoryCode  string
	CardPaymentSign      string
}

type CreateRequestResult struct {
	RequestID    uint
	RootID       uint
	Number       string
	Status       string
	IncidentSign string
	ParentRootID *uint
	CreatedAt    time.Time
}

// CreateRequestUseCase mints identifiers, runs incident correlation,
// and persists the request, all inside one transaction so concurrent
// creations cannot mint the same root identifier or number.
type CreateRequestUseCase struct {
	requestRepo request.Repository
	defectRepo  catalog.DefectRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	defectRepo catalog.DefectRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		defectRepo:  defectRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case", "defect_id", cmd.DefectID, "address_id", cmd.AddressID, "user_id", cmd.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create request command", "error", err)
		return nil, err
	}

	defect, err := uc.defectRepo.GetByID(ctx, cmd.DefectID)
	if err != nil {
		uc.logger.Errorw("failed to get defect", "defect_id", cmd.DefectID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("defect %d not found", cmd.DefectID))
	}

	newRequest, err := request.NewRequest(request.NewRequestParams{
		PublicServicesNumber: cmd.PublicServicesNumber,
		SourceName:           cmd.SourceName,
		SourceCode:           cmd.SourceCode,
		CreatorName:          cmd.CreatorName,
		Description:          cmd.Description,
		Comments:             cmd.Comments,
		Question:             cmd.Question,
		Urgency:              vo.Urgency(cmd.Urgency),
		AddressID:            cmd.AddressID,
		Entrance:             cmd.Entrance,
		Floor:                cmd.Floor,
		Apartment:            cmd.Apartment,
		ExecutorID:           cmd.ExecutorID,
		DefectID:             cmd.DefectID,
		UserID:               cmd.UserID,
		PaymentCategoryName:  cmd.PaymentCategoryName,
		PaymentCategoryCode:  cmd.PaymentCategoryCode,
		CardPaymentSign:      cmd.CardPaymentSign,
	})
	if err != nil {
		uc.logger.Errorw("failed to create request entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		maxRootID, maxVersionID, err := uc.requestRepo.MaxIdentifiers(txCtx)
		if err != nil {
			return err
		}
		numbers, err := uc.requestRepo.AllNumbers(txCtx)
		if err != nil {
			return err
		}

		rootID := request.NextRootID(maxRootID, maxVersionID)
		number := request.NextNumber(numbers, biztime.CurrentYear())
		if err := newRequest.AssignIdentifiers(rootID, number); err != nil {
			return err
		}

		if err := uc.correlate(txCtx, newRequest, defect); err != nil {
			return err
		}

		return uc.requestRepo.Save(txCtx, newRequest)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist request", "error", err)
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		return nil, errors.NewInternalError("failed to create request")
	}

	uc.logger.Infow("request created successfully",
		"request_id", newRequest.ID(), "root_id", newRequest.RootID(), "number", newRequest.Number())

	return &CreateRequestResult{
		RequestID:    newRequest.ID(),
		RootID:       newRequest.RootID(),
		Number:       newRequest.Number(),
		Status:       newRequest.Status().String(),
		IncidentSign: newRequest.IncidentSign().String(),
		ParentRootID: newRequest.ParentRootID(),
		CreatedAt:    newRequest.CreatedAt(),
	}, nil
}

// correlate scans prior requests sharing the defect signature. Every
// prior request whose resolution term elapsed is flagged as an
// incident; the new request links to the earliest of them.
func (uc *CreateRequestUseCase) correlate(ctx context.Context, newRequest *request.Request, defect *catalog.Defect) error {
	if defect.RepeatedLocation == "" {
		return nil
	}

	priors, err := uc.requestRepo.FindByDefectSignature(ctx, defect.Name, defect.RepeatedLocation)
	if err != nil {
		return err
	}
	if len(priors) == 0 {
		return nil
	}

	candidates := make([]request.CorrelationCandidate, 0, len(priors))
	for _, prior := range priors {
		term := defect.AnotherTerm
		if prior.DefectID() != defect.ID {
			priorDefect, err := uc.defectRepo.GetByID(ctx, prior.DefectID())
			if err != nil {
				return err
			}
			term = priorDefect.AnotherTerm
		}
		candidates = append(candidates, request.CorrelationCandidate{Request: prior, TermDays: term})
	}

	result := request.Correlate(candidates, biztime.NowUTC())
	if result.Parent == nil {
		return nil
	}

	for _, flagged := range result.Flagged {
		flagged.MarkIncidentParent()
		if err := uc.requestRepo.Update(ctx, flagged); err != nil {
			return err
		}
	}
	newRequest.LinkToParent(result.Parent.RootID(), result.Parent.Number())

	uc.logger.Infow("incident correlation linked request",
		"parent_root_id", result.Parent.RootID(), "flagged_count", len(result.Flagged))
	return nil
}

func (uc *CreateRequestUseCase) validateCommand(cmd CreateRequestCommand) error {
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 1000 {
		return errors.NewValidationError("description exceeds maximum length of 1000 characters")
	}
	if cmd.AddressID == 0 {
		return errors.NewValidationError("address ID is required")
	}
	if cmd.DefectID == 0 {
		return errors.NewValidationError("defect ID is required")
	}
	if cmd.ExecutorID == 0 {
		return errors.NewValidationError("implementing organization ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if !vo.Urgency(cmd.Urgency).IsValid() {
		return errors.NewValidationError("invalid urgency category")
	}
	return nil
}
