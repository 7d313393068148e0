package request

import (
	"time"

	"upravdom/internal/application/request/usecases"
)

type CreateRequestRequest struct {
	PublicServicesNumber string `json:"public_services_number,omitempty"`
	SourceName           string `json:"source_name,omitempty"`
	SourceCode           string `json:"source_code,omitempty"`
	CreatorName          string `json:"creator_name,omitempty"`
	Description          string `json:"description" binding:"required,max=1000"`
	Comments             string `json:"comments,omitempty"`
	Question             string `json:"question,omitempty"`
	Urgency              string `json:"urgency" binding:"required"`
	AddressID            uint   `json:"address_id" binding:"required"`
	Entrance             *uint  `json:"entrance,omitempty"`
	Floor                *uint  `json:"floor,omitempty"`
	Apartment            *uint  `json:"apartment,omitempty"`
	ExecutorID           uint   `json:"executor_id" binding:"required"`
	DefectID             uint   `json:"defect_id" binding:"required"`
	PaymentCategoryName  string `json:"payment_category_name,omitempty"`
	PaymentCategoryCode  string `json:"payment_category_code,omitempty"`
	CardPaymentSign      string `json:"card_payment_sign,omitempty"`
}

func (r *CreateRequestRequest) ToCommand(userID uint) usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		PublicServicesNumber: r.PublicServicesNumber,
		SourceName:           r.SourceName,
		SourceCode:           r.SourceCode,
		CreatorName:          r.CreatorName,
		Description:          r.Description,
		Comments:             r.Comments,
		Question:             r.Question,
		Urgency:              r.Urgency,
		AddressID:            r.AddressID,
		Entrance:             r.Entrance,
		Floor:                r.Floor,
		Apartment:            r.Apartment,
		ExecutorID:           r.ExecutorID,
		DefectID:             r.DefectID,
		UserID:               userID,
		PaymentCategoryName:  r.PaymentCategoryName,
		PaymentCategoryCode:  r.PaymentCategoryCode,
		CardPaymentSign:      r.CardPaymentSign,
	}
}

type UpdateRequestRequest struct {
	Description         string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Comments            string `json:"comments,omitempty"`
	Question            string `json:"question,omitempty"`
	Urgency             string `json:"urgency,omitempty"`
	Entrance            *uint  `json:"entrance,omitempty"`
	Floor               *uint  `json:"floor,omitempty"`
	Apartment           *uint  `json:"apartment,omitempty"`
	ExecutorID          uint   `json:"executor_id,omitempty"`
	DefectID            uint   `json:"defect_id,omitempty"`
	PaymentCategoryName string `json:"payment_category_name,omitempty"`
	PaymentCategoryCode string `json:"payment_category_code,omitempty"`
	CardPaymentSign     string `json:"card_payment_sign,omitempty"`
}

func (r *UpdateRequestRequest) ToCommand(rootID, userID uint) usecases.UpdateRequestCommand {
	return usecases.UpdateRequestCommand{
		RootID:              rootID,
		UserID:              userID,
		Description:         r.Description,
		Comments:            r.Comments,
		Question:            r.Question,
		Urgency:             r.Urgency,
		Entrance:            r.Entrance,
		Floor:               r.Floor,
		Apartment:           r.Apartment,
		ExecutorID:          r.ExecutorID,
		DefectID:            r.DefectID,
		PaymentCategoryName: r.PaymentCategoryName,
		PaymentCategoryCode: r.PaymentCategoryCode,
		CardPaymentSign:     r.CardPaymentSign,
	}
}

type CloseRequestRequest struct {
	ConsumedMaterial   string     `json:"consumed_material,omitempty"`
	SecurityEventsSign string     `json:"security_events_sign,omitempty"`
	SecurityEventsTime *time.Time `json:"security_events_time,omitempty"`
	ActionsTaken       string     `json:"actions_taken,omitempty"`
	Effectiveness      string     `json:"effectiveness" binding:"required,max=200"`
	EfficiencyCode     string     `json:"efficiency_code,omitempty"`
	SignAlerted        string     `json:"sign_alerted,omitempty"`
	ExecutorRefusalID  *uint      `json:"executor_refusal_id,omitempty"`
	ImplOrgRefusalID   *uint      `json:"impl_org_refusal_id,omitempty"`
}

type SubmitReviewRequest struct {
	Review     string `json:"review,omitempty"`
	Assessment uint   `json:"assessment" binding:"required,min=1,max=5"`
}

func (r *SubmitReviewRequest) ToCommand(rootID uint) usecases.SubmitReviewCommand {
	return usecases.SubmitReviewCommand{
		RootID:     rootID,
		Review:     r.Review,
		Assessment: r.Assessment,
	}
}

func (r *CloseRequestRequest) ToCommand(rootID, userID uint) usecases.CloseRequestCommand {
	return usecases.CloseRequestCommand{
		RootID:             rootID,
		UserID:             userID,
		ConsumedMaterial:   r.ConsumedMaterial,
		SecurityEventsSign: r.SecurityEventsSign,
		SecurityEventsTime: r.SecurityEventsTime,
		ActionsTaken:       r.ActionsTaken,
		Effectiveness:      r.Effectiveness,
		EfficiencyCode:     r.EfficiencyCode,
		SignAlerted:        r.SignAlerted,
		ExecutorRefusalID:  r.ExecutorRefusalID,
		ImplOrgRefusalID:   r.ImplOrgRefusalID,
	}
}
