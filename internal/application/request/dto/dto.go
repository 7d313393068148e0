package dto

import (
	"time"

	"upravdom/internal/domain/request"
)

type RequestDTO struct {
	ID                   uint       `json:"id"`
	RootID               uint       `json:"root_id"`
	VersionID            *uint      `json:"version_id"`
	Number               string     `json:"number"`
	PublicServicesNumber string     `json:"public_services_number,omitempty"`
	SourceName           string     `json:"source_name,omitempty"`
	SourceCode           string     `json:"source_code,omitempty"`
	CreatorName          string     `json:"creator_name,omitempty"`
	IncidentSign         string     `json:"incident_sign,omitempty"`
	ParentRootID         *uint      `json:"parent_root_id,omitempty"`
	ParentNumber         string     `json:"parent_number,omitempty"`
	Comments             string     `json:"comments,omitempty"`
	Description          string     `json:"description"`
	Question             string     `json:"question,omitempty"`
	Urgency              string     `json:"urgency"`
	UrgencyName          string     `json:"urgency_name"`
	Status               string     `json:"status"`
	StatusName           string     `json:"status_name"`
	AddressID            uint       `json:"address_id"`
	Entrance             *uint      `json:"entrance,omitempty"`
	Floor                *uint      `json:"floor,omitempty"`
	Apartment            *uint      `json:"apartment,omitempty"`
	ExecutorID           uint       `json:"executor_id"`
	DefectID             uint       `json:"defect_id"`
	UserID               uint       `json:"user_id"`
	PaymentCategoryName  string     `json:"payment_category_name,omitempty"`
	PaymentCategoryCode  string     `json:"payment_category_code,omitempty"`
	CardPaymentSign      string     `json:"card_payment_sign,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	// TotalTerm is reported only while the request's closing result is
	// under revision. Computed, never stored.
	TotalTerm *string `json:"total_term,omitempty"`
}

type RequestListItemDTO struct {
	ID           uint   `json:"id"`
	RootID       uint   `json:"root_id"`
	Number       string `json:"number"`
	Description  string `json:"description"`
	Urgency      string `json:"urgency"`
	Status       string `json:"status"`
	StatusName   string `json:"status_name"`
	IncidentSign string `json:"incident_sign,omitempty"`
	ParentRootID *uint  `json:"parent_root_id,omitempty"`
	AddressID    uint   `json:"address_id"`
	DefectID     uint   `json:"defect_id"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// IncidentGroupDTO is an incident parent together with the linked
// requests confirmed as members of the group.
type IncidentGroupDTO struct {
	Parent  RequestListItemDTO   `json:"parent"`
	Members []RequestListItemDTO `json:"members"`
}

func ToRequestDTO(r *request.Request) *RequestDTO {
	if r == nil {
		return nil
	}

	return &RequestDTO{
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
		UrgencyName:          r.Urgency().Name(),
		Status:               r.Status().String(),
		StatusName:           r.Status().Name(),
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
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
	}
}

func ToRequestListItemDTO(r *request.Request) RequestListItemDTO {
	return RequestListItemDTO{
		ID:           r.ID(),
		RootID:       r.RootID(),
		Number:       r.Number(),
		Description:  r.Description(),
		Urgency:      r.Urgency().String(),
		Status:       r.Status().String(),
		StatusName:   r.Status().Name(),
		IncidentSign: r.IncidentSign().String(),
		ParentRootID: r.ParentRootID(),
		AddressID:    r.AddressID(),
		DefectID:     r.DefectID(),
		CreatedAt:    r.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt().Format(time.RFC3339),
	}
}

func ToRequestListItemDTOs(requests []*request.Request) []RequestListItemDTO {
	items := make([]RequestListItemDTO, 0, len(requests))
	for _, r := range requests {
		items = append(items, ToRequestListItemDTO(r))
	}
	return items
}
