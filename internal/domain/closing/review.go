package closing

import (
	"fmt"
	"time"
)

// Review is the citizen's assessment of completed work, attached to a
// closing result.
type Review struct {
	id                    uint
	closingResultID       uint
	dt                    time.Time
	review                string
	assessmentQualityWork uint
}

func NewReview(closingResultID uint, text string, assessment uint, now time.Time) (*Review, error) {
	if closingResultID == 0 {
		return nil, fmt.Errorf("closing result ID is required")
	}
	if assessment < 1 || assessment > 5 {
		return nil, fmt.Errorf("quality assessment must be between 1 and 5")
	}
	return &Review{
		closingResultID:       closingResultID,
		dt:                    now,
		review:                text,
		assessmentQualityWork: assessment,
	}, nil
}

func ReconstructReview(id, closingResultID uint, dt time.Time, text string, assessment uint) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	return &Review{
		id:                    id,
		closingResultID:       closingResultID,
		dt:                    dt,
		review:                text,
		assessmentQualityWork: assessment,
	}, nil
}

func (r *Review) ID() uint                    { return r.id }
func (r *Review) ClosingResultID() uint       { return r.closingResultID }
func (r *Review) Date() time.Time             { return r.dt }
func (r *Review) Text() string                { return r.review }
func (r *Review) AssessmentQualityWork() uint { return r.assessmentQualityWork }

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}
