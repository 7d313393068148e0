package mappers

import (
	"time"

	"upravdom/internal/domain/closing"
	"upravdom/internal/infrastructure/persistence/models"
)

type ClosingMapper interface {
	ToModel(c *closing.ClosingResult) *models.ClosingResultModel
	ToDomain(model *models.ClosingResultModel) (*closing.ClosingResult, error)
	RefinementToModel(r *closing.Refinement) *models.RefinementModel
	RefinementToDomain(model *models.RefinementModel) (*closing.Refinement, error)
	ReviewToModel(r *closing.Review) *models.ReviewModel
	ReviewToDomain(model *models.ReviewModel) (*closing.Review, error)
}

type ClosingMapperImpl struct{}

func NewClosingMapper() ClosingMapper {
	return &ClosingMapperImpl{}
}

func (m *ClosingMapperImpl) ToModel(c *closing.ClosingResult) *models.ClosingResultModel {
	model := &models.ClosingResultModel{
		ID:                 c.ID(),
		RequestRootID:      c.RequestRootID(),
		ConsumedMaterial:   c.ConsumedMaterial(),
		SecurityEventsSign: c.SecurityEventsSign(),
		ActionsTaken:       c.ActionsTaken(),
		Effectiveness:      c.Effectiveness(),
		EfficiencyCode:     c.EfficiencyCode(),
		BeingUnderRevision: c.BeingUnderRevision(),
		SignAlerted:        c.SignAlerted(),
		ExecutorRefusalID:  c.ExecutorRefusalID(),
		ImplOrgRefusalID:   c.ImplOrgRefusalID(),
		ClosingDate:        c.ClosingDate().UnixMilli(),
	}
	if c.SecurityEventsTime() != nil {
		millis := c.SecurityEventsTime().UnixMilli()
		model.SecurityEventsTime = &millis
	}
	return model
}

func (m *ClosingMapperImpl) ToDomain(model *models.ClosingResultModel) (*closing.ClosingResult, error) {
	var securityEventsTime *time.Time
	if model.SecurityEventsTime != nil {
		t := millisToTime(*model.SecurityEventsTime)
		securityEventsTime = &t
	}

	return closing.ReconstructClosingResult(
		model.ID,
		model.RequestRootID,
		model.ConsumedMaterial,
		model.SecurityEventsSign,
		securityEventsTime,
		model.ActionsTaken,
		model.Effectiveness,
		model.EfficiencyCode,
		model.BeingUnderRevision,
		model.SignAlerted,
		model.ExecutorRefusalID,
		model.ImplOrgRefusalID,
		millisToTime(model.ClosingDate),
	)
}

func (m *ClosingMapperImpl) RefinementToModel(r *closing.Refinement) *models.RefinementModel {
	model := &models.RefinementModel{
		ID:              r.ID(),
		ClosingResultID: r.ClosingResultID(),
		ReturnCount:     r.ReturnCount(),
	}
	if r.LastReturnDate() != nil {
		millis := r.LastReturnDate().UnixMilli()
		model.LastReturnDate = &millis
	}
	return model
}

func (m *ClosingMapperImpl) RefinementToDomain(model *models.RefinementModel) (*closing.Refinement, error) {
	var lastReturnDate *time.Time
	if model.LastReturnDate != nil {
		t := millisToTime(*model.LastReturnDate)
		lastReturnDate = &t
	}
	return closing.ReconstructRefinement(model.ID, model.ClosingResultID, model.ReturnCount, lastReturnDate)
}

func (m *ClosingMapperImpl) ReviewToModel(r *closing.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:                    r.ID(),
		ClosingResultID:       r.ClosingResultID(),
		Dt:                    r.Date().UnixMilli(),
		Review:                r.Text(),
		AssessmentQualityWork: r.AssessmentQualityWork(),
	}
}

func (m *ClosingMapperImpl) ReviewToDomain(model *models.ReviewModel) (*closing.Review, error) {
	return closing.ReconstructReview(
		model.ID,
		model.ClosingResultID,
		millisToTime(model.Dt),
		model.Review,
		model.AssessmentQualityWork,
	)
}
