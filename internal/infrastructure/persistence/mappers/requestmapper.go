package mappers

import (
	"time"

	"upravdom/internal/domain/request"
	vo "upravdom/internal/domain/request/valueobjects"
	"upravdom/internal/infrastructure/persistence/models"
)

// RequestMapper converts between Request domain entities and
// persistence models.
type RequestMapper interface {
	ToModel(r *request.Request) *models.RequestModel
	ToDomain(model *models.RequestModel) (*request.Request, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.Request) *models.RequestModel {
	return &models.RequestModel{
		ID:                   r.ID(),
		RootID:               r.RootID(),
		VersionID:            r.VersionID(),
		Number:               r.Number(),
		PublicServicesNumber: r.PublicServicesNumber(),
		SourceName:           r.SourceName(),
		SourceCode:           r.SourceCode(),
		CreatorName:          r.CreatorName(),
		IncidentSign:         r.IncidentSign().String(),
		ParentRootID:         r.ParentRootID(),
		ParentNumber:         r.ParentNumber(),
		Comments:             r.Comments(),
		Description:          r.Description(),
		Question:             r.Question(),
		Urgency:              r.Urgency().String(),
		Status:               r.Status().String(),
		AddressID:            r.AddressID(),
		Entrance:             r.Entrance(),
		Floor:                r.Floor(),
		Apartment:            r.Apartment(),
		ExecutorID:           r.ExecutorID(),
		DefectID:             r.DefectID(),
		UserID:               r.UserID(),
		PaymentCategoryName:  r.PaymentCategoryName(),
		PaymentCategoryCode:  r.PaymentCategoryCode(),
		CardPaymentSign:      r.CardPaymentSign(),
		CreatedAt:            r.CreatedAt().UnixMilli(),
		UpdatedAt:            r.UpdatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	return request.ReconstructRequest(request.ReconstructParams{
		ID:                   model.ID,
		RootID:               model.RootID,
		VersionID:            model.VersionID,
		Number:               model.Number,
		PublicServicesNumber: model.PublicServicesNumber,
		SourceName:           model.SourceName,
		SourceCode:           model.SourceCode,
		CreatorName:          model.CreatorName,
		IncidentSign:         vo.IncidentSign(model.IncidentSign),
		ParentRootID:         model.ParentRootID,
		ParentNumber:         model.ParentNumber,
		Comments:             model.Comments,
		Description:          model.Description,
		Question:             model.Question,
		Urgency:              vo.Urgency(model.Urgency),
		Status:               vo.Status(model.Status),
		AddressID:            model.AddressID,
		Entrance:             model.Entrance,
		Floor:                model.Floor,
		Apartment:            model.Apartment,
		ExecutorID:           model.ExecutorID,
		DefectID:             model.DefectID,
		UserID:               model.UserID,
		PaymentCategoryName:  model.PaymentCategoryName,
		PaymentCategoryCode:  model.PaymentCategoryCode,
		CardPaymentSign:      model.CardPaymentSign,
		CreatedAt:            millisToTime(model.CreatedAt),
		UpdatedAt:            millisToTime(model.UpdatedAt),
	})
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
