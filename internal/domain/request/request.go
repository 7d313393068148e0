package request

import (
	"fmt"
	"time"

	vo "upravdom/internal/domain/request/valueobjects"
)

// reworkWindowDays is the maximum age, measured from the last version
// change, after which a closed request can no longer be sent back for
// rework.
const reworkWindowDays = 5

// Request is a resident's maintenance request for a defect at an
// address. The root identifier names the logical request; the version
// identifier changes on every edit.
type Request struct {
	id                   uint
	rootID               uint
	versionID            *uint
	number               string
	publicServicesNumber string
	sourceName           string
	sourceCode           string
	creatorName          string
	incidentSign         vo.IncidentSign
	parentRootID         *uint
	parentNumber         string
	comments             string
	description          string
	question             string
	urgency              vo.Urgency
	status               vo.Status
	addressID            uint
	entrance             *uint
	floor                *uint
	apartment            *uint
	executorID           uint
	defectID             uint
	userID               uint
	paymentCategoryName  string
	paymentCategoryCode  string
	cardPaymentSign      string
	createdAt            time.Time
	updatedAt            time.Time
}

// NewRequestParams carries the caller-supplied attributes of a new
// request. Identifiers, status, and incident linkage are assigned by
// the creation workflow, not the caller.
type NewRequestParams struct {
	PublicServicesNumber string
	SourceName           string
	SourceCode           string
	CreatorName          string
	Description          string
	Comments             string
	Question             string
	Urgency              vo.Urgency
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

func NewRequest(p NewRequestParams) (*Request, error) {
	if len(p.Description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(p.Description) > 1000 {
		return nil, fmt.Errorf("description exceeds maximum length of 1000 characters")
	}
	if !p.Urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency category")
	}
	if p.AddressID == 0 {
		return nil, fmt.Errorf("address is required")
	}
	if p.DefectID == 0 {
		return nil, fmt.Errorf("defect is required")
	}
	if p.ExecutorID == 0 {
		return nil, fmt.Errorf("implementing organization is required")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user is required")
	}

	now := time.Now()

	return &Request{
		publicServicesNumber: p.PublicServicesNumber,
		sourceName:           p.SourceName,
		sourceCode:           p.SourceCode,
		creatorName:          p.CreatorName,
		incidentSign:         vo.IncidentSignNone,
		comments:             p.Comments,
		description:          p.Description,
		question:             p.Question,
		urgency:              p.Urgency,
		status:               vo.StatusNew,
		addressID:            p.AddressID,
		entrance:             p.Entrance,
		floor:                p.Floor,
		apartment:            p.Apartment,
		executorID:           p.ExecutorID,
		defectID:             p.DefectID,
		userID:               p.UserID,
		paymentCategoryName:  p.PaymentCategoryName,
		paymentCategoryCode:  p.PaymentCategoryCode,
		cardPaymentSign:      p.CardPaymentSign,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// ReconstructParams rebuilds a Request from storage.
type ReconstructParams struct {
	ID                   uint
	RootID               uint
	VersionID            *uint
	Number               string
	PublicServicesNumber string
	SourceName           string
	SourceCode           string
	CreatorName          string
	IncidentSign         vo.IncidentSign
	ParentRootID         *uint
	ParentNumber         string
	Comments             string
	Description          string
	Question             string
	Urgency              vo.Urgency
	Status               vo.Status
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
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func ReconstructRequest(p ReconstructParams) (*Request, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if p.RootID == 0 {
		return nil, fmt.Errorf("request root ID cannot be zero")
	}
	if len(p.Number) == 0 {
		return nil, fmt.Errorf("request number is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !p.Urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency category")
	}

	return &Request{
		id:                   p.ID,
		rootID:               p.RootID,
		versionID:            p.VersionID,
		number:               p.Number,
		publicServicesNumber: p.PublicServicesNumber,
		sourceName:           p.SourceName,
		sourceCode:           p.SourceCode,
		creatorName:          p.CreatorName,
		incidentSign:         p.IncidentSign,
		parentRootID:         p.ParentRootID,
		parentNumber:         p.ParentNumber,
		comments:             p.Comments,
		description:          p.Description,
		question:             p.Question,
		urgency:              p.Urgency,
		status:               p.Status,
		addressID:            p.AddressID,
		entrance:             p.Entrance,
		floor:                p.Floor,
		apartment:            p.Apartment,
		executorID:           p.ExecutorID,
		defectID:             p.DefectID,
		userID:               p.UserID,
		paymentCategoryName:  p.PaymentCategoryName,
		paymentCategoryCode:  p.PaymentCategoryCode,
		cardPaymentSign:      p.CardPaymentSign,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}, nil
}

func (r *Request) ID() uint                     { return r.id }
func (r *Request) RootID() uint                 { return r.rootID }
func (r *Request) VersionID() *uint             { return r.versionID }
func (r *Request) Number() string               { return r.number }
func (r *Request) PublicServicesNumber() string { return r.publicServicesNumber }
func (r *Request) SourceName() string           { return r.sourceName }
func (r *Request) SourceCode() string           { return r.sourceCode }
func (r *Request) CreatorName() string          { return r.creatorName }
func (r *Request) IncidentSign() vo.IncidentSign {
	return r.incidentSign
}
func (r *Request) ParentRootID() *uint         { return r.parentRootID }
func (r *Request) ParentNumber() string        { return r.parentNumber }
func (r *Request) Comments() string            { return r.comments }
func (r *Request) Description() string         { return r.description }
func (r *Request) Question() string            { return r.question }
func (r *Request) Urgency() vo.Urgency         { return r.urgency }
func (r *Request) Status() vo.Status           { return r.status }
func (r *Request) AddressID() uint             { return r.addressID }
func (r *Request) Entrance() *uint             { return r.entrance }
func (r *Request) Floor() *uint                { return r.floor }
func (r *Request) Apartment() *uint            { return r.apartment }
func (r *Request) ExecutorID() uint            { return r.executorID }
func (r *Request) DefectID() uint              { return r.defectID }
func (r *Request) UserID() uint                { return r.userID }
func (r *Request) PaymentCategoryName() string { return r.paymentCategoryName }
func (r *Request) PaymentCategoryCode() string { return r.paymentCategoryCode }
func (r *Request) CardPaymentSign() string     { return r.cardPaymentSign }
func (r *Request) CreatedAt() time.Time        { return r.createdAt }
func (r *Request) UpdatedAt() time.Time        { return r.updatedAt }

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// AssignIdentifiers attaches the minted root identifier and number at
// creation time. Both are assigned exactly once.
func (r *Request) AssignIdentifiers(rootID uint, number string) error {
	if r.rootID != 0 {
		return fmt.Errorf("root ID is already set")
	}
	if rootID == 0 {
		return fmt.Errorf("root ID cannot be zero")
	}
	if len(number) == 0 {
		return fmt.Errorf("number cannot be empty")
	}
	r.rootID = rootID
	r.number = number
	return nil
}

// LinkToParent marks this request as a recurrence of an earlier
// unresolved request and records the back-reference.
func (r *Request) LinkToParent(parentRootID uint, parentNumber string) {
	r.incidentSign = vo.IncidentSignNo
	r.parentRootID = &parentRootID
	r.parentNumber = parentNumber
}

// MarkIncidentParent flags this request as superseded by a newer
// recurrence of the same defect.
func (r *Request) MarkIncidentParent() {
	r.incidentSign = vo.IncidentSignYes
}

// CanEdit reports whether an in-place edit is allowed: the request is
// still open, or its defect urgency is not emergency.
func (r *Request) CanEdit(defectUrgency vo.Urgency) bool {
	return r.status.IsOpen() || !defectUrgency.IsEmergency()
}

// ApplyEdit records a new version of the request. The version
// identifier must be freshly minted; the acting user is attached.
func (r *Request) ApplyEdit(versionID uint, userID uint, now time.Time) error {
	if versionID == 0 {
		return fmt.Errorf("version ID cannot be zero")
	}
	r.versionID = &versionID
	r.userID = userID
	r.updatedAt = now
	return nil
}

// UpdateParams carries the caller-editable fields of a request. Nil
// pointers and empty strings leave the current value untouched, except
// optional location fields which follow the pointer.
type UpdateParams struct {
	Description         string
	Comments            string
	Question            string
	Urgency             vo.Urgency
	Entrance            *uint
	Floor               *uint
	Apartment           *uint
	ExecutorID          uint
	DefectID            uint
	PaymentCategoryName string
	PaymentCategoryCode string
	CardPaymentSign     string
}

// UpdateDetails applies an edit's field changes. Identifier and status
// handling stays with ApplyEdit and the status methods.
func (r *Request) UpdateDetails(p UpdateParams) error {
	if len(p.Description) > 1000 {
		return fmt.Errorf("description exceeds maximum length of 1000 characters")
	}
	if p.Urgency != "" && !p.Urgency.IsValid() {
		return fmt.Errorf("invalid urgency category")
	}

	if len(p.Description) > 0 {
		r.description = p.Description
	}
	if len(p.Comments) > 0 {
		r.comments = p.Comments
	}
	if len(p.Question) > 0 {
		r.question = p.Question
	}
	if p.Urgency != "" {
		r.urgency = p.Urgency
	}
	if p.Entrance != nil {
		r.entrance = p.Entrance
	}
	if p.Floor != nil {
		r.floor = p.Floor
	}
	if p.Apartment != nil {
		r.apartment = p.Apartment
	}
	if p.ExecutorID != 0 {
		r.executorID = p.ExecutorID
	}
	if p.DefectID != 0 {
		r.defectID = p.DefectID
	}
	if len(p.PaymentCategoryName) > 0 {
		r.paymentCategoryName = p.PaymentCategoryName
	}
	if len(p.PaymentCategoryCode) > 0 {
		r.paymentCategoryCode = p.PaymentCategoryCode
	}
	if len(p.CardPaymentSign) > 0 {
		r.cardPaymentSign = p.CardPaymentSign
	}
	return nil
}

// lastActivity is the timestamp the rework window counts from: the
// last version change when the request was ever edited, creation
// otherwise.
func (r *Request) lastActivity() time.Time {
	if r.updatedAt.Equal(r.createdAt) {
		return r.createdAt
	}
	return r.updatedAt
}

// CheckRework validates the closed-to-new transition. A request may be
// sent back for rework only while all of these hold: less than five
// days elapsed since the last version change, the defect urgency is
// not emergency, and the request is on neither side of an incident
// link.
func (r *Request) CheckRework(defectUrgency vo.Urgency, now time.Time) error {
	if now.Sub(r.lastActivity()) >= reworkWindowDays*24*time.Hour {
		return fmt.Errorf("rework window of %d days has elapsed", reworkWindowDays)
	}
	if defectUrgency.IsEmergency() {
		return fmt.Errorf("emergency requests cannot be sent to rework")
	}
	if r.incidentSign.IsNo() && r.parentRootID != nil {
		return fmt.Errorf("request is linked to an incident parent")
	}
	if r.incidentSign.IsYes() {
		return fmt.Errorf("request is flagged as an incident")
	}
	return nil
}

// SendToRework resets the request to the new status after CheckRework
// passed.
func (r *Request) SendToRework(now time.Time) error {
	if !r.status.CanTransitionTo(vo.StatusNew) {
		return fmt.Errorf("cannot send request with status %s to rework", r.status)
	}
	r.status = vo.StatusNew
	r.updatedAt = now
	return nil
}

// ChangeStatus moves the request along the normal forward flow.
func (r *Request) ChangeStatus(next vo.Status, now time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid status: %s", next)
	}
	if r.status == next {
		return nil
	}
	if !r.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition from %s to %s", r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// Close transitions the request to the closed status. A closing result
// must be attached by the caller in the same transaction.
func (r *Request) Close(now time.Time) error {
	if r.status.IsClosed() {
		return fmt.Errorf("request is already closed")
	}
	r.status = vo.StatusClosed
	r.updatedAt = now
	return nil
}

// TotalTerm is the request's age, reported when its closing result is
// under revision. Never persisted.
func (r *Request) TotalTerm(now time.Time) time.Duration {
	return now.Sub(r.createdAt)
}
