// Package closing models the closure side of a request's lifecycle:
// the closing result recorded when work finishes, the refinement
// counter driven by rework re-opens, and the citizen review.
package closing

import (
	"fmt"
	"time"
)

// Sign values mirror the dispatcher-facing flags stored on closure
// records.
const (
	SignYes = "Да"
	SignNo  = "Нет"
)

// ClosingResult captures the outcome of a closed request: consumed
// materials, security measures, effectiveness, and the revision flag
// toggled by the rework workflow. One-to-one with a request root.
type ClosingResult struct {
	id                  uint
	requestRootID       uint
	consumedMaterial    string
	securityEventsSign  string
	securityEventsTime  *time.Time
	actionsTaken        string
	effectiveness       string
	efficiencyCode      string
	beingUnderRevision  string
	signAlerted         string
	executorRefusalID   *uint
	implOrgRefusalID    *uint
	closingDate         time.Time
}

// NewClosingResultParams carries the closure attributes supplied when
// a request is closed.
type NewClosingResultParams struct {
	RequestRootID      uint
	ConsumedMaterial   string
	SecurityEventsSign string
	SecurityEventsTime *time.Time
	ActionsTaken       string
	Effectiveness      string
	EfficiencyCode     string
	SignAlerted        string
	ExecutorRefusalID  *uint
	ImplOrgRefusalID   *uint
}

func NewClosingResult(p NewClosingResultParams) (*ClosingResult, error) {
	if p.RequestRootID == 0 {
		return nil, fmt.Errorf("request root ID is required")
	}
	if len(p.Effectiveness) == 0 {
		return nil, fmt.Errorf("effectiveness is required")
	}
	sign := p.SecurityEventsSign
	if sign == "" {
		sign = SignNo
	}
	alerted := p.SignAlerted
	if alerted == "" {
		alerted = SignNo
	}

	return &ClosingResult{
		requestRootID:      p.RequestRootID,
		consumedMaterial:   p.ConsumedMaterial,
		securityEventsSign: sign,
		securityEventsTime: p.SecurityEventsTime,
		actionsTaken:       p.ActionsTaken,
		effectiveness:      p.Effectiveness,
		efficiencyCode:     p.EfficiencyCode,
		beingUnderRevision: SignNo,
		signAlerted:        alerted,
		executorRefusalID:  p.ExecutorRefusalID,
		implOrgRefusalID:   p.ImplOrgRefusalID,
		closingDate:        time.Now(),
	}, nil
}

func ReconstructClosingResult(
	id uint,
	requestRootID uint,
	consumedMaterial string,
	securityEventsSign string,
	securityEventsTime *time.Time,
	actionsTaken string,
	effectiveness string,
	efficiencyCode string,
	beingUnderRevision string,
	signAlerted string,
	executorRefusalID *uint,
	implOrgRefusalID *uint,
	closingDate time.Time,
) (*ClosingResult, error) {
	if id == 0 {
		return nil, fmt.Errorf("closing result ID cannot be zero")
	}
	if requestRootID == 0 {
		return nil, fmt.Errorf("request root ID cannot be zero")
	}

	return &ClosingResult{
		id:                 id,
		requestRootID:      requestRootID,
		consumedMaterial:   consumedMaterial,
		securityEventsSign: securityEventsSign,
		securityEventsTime: securityEventsTime,
		actionsTaken:       actionsTaken,
		effectiveness:      effectiveness,
		efficiencyCode:     efficiencyCode,
		beingUnderRevision: beingUnderRevision,
		signAlerted:        signAlerted,
		executorRefusalID:  executorRefusalID,
		implOrgRefusalID:   implOrgRefusalID,
		closingDate:        closingDate,
	}, nil
}

func (c *ClosingResult) ID() uint                      { return c.id }
func (c *ClosingResult) RequestRootID() uint           { return c.requestRootID }
func (c *ClosingResult) ConsumedMaterial() string      { return c.consumedMaterial }
func (c *ClosingResult) SecurityEventsSign() string    { return c.securityEventsSign }
func (c *ClosingResult) SecurityEventsTime() *time.Time { return c.securityEventsTime }
func (c *ClosingResult) ActionsTaken() string          { return c.actionsTaken }
func (c *ClosingResult) Effectiveness() string         { return c.effectiveness }
func (c *ClosingResult) EfficiencyCode() string        { return c.efficiencyCode }
func (c *ClosingResult) BeingUnderRevision() string    { return c.beingUnderRevision }
func (c *ClosingResult) SignAlerted() string           { return c.signAlerted }
func (c *ClosingResult) ExecutorRefusalID() *uint      { return c.executorRefusalID }
func (c *ClosingResult) ImplOrgRefusalID() *uint       { return c.implOrgRefusalID }
func (c *ClosingResult) ClosingDate() time.Time        { return c.closingDate }

func (c *ClosingResult) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("closing result ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("closing result ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsUnderRevision reports whether the closure is currently being
// reworked.
func (c *ClosingResult) IsUnderRevision() bool {
	return c.beingUnderRevision == SignYes
}

// MarkUnderRevision flags the closure when its request is sent back to
// rework.
func (c *ClosingResult) MarkUnderRevision() {
	c.beingUnderRevision = SignYes
}
