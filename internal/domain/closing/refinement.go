package closing

import (
	"fmt"
	"time"
)

// Refinement counts how many times a closed request was sent back for
// rework. One-to-one with a closing result; created lazily on the
// first return.
type Refinement struct {
	id              uint
	closingResultID uint
	returnCount     uint
	lastReturnDate  *time.Time
}

func NewRefinement(closingResultID uint) (*Refinement, error) {
	if closingResultID == 0 {
		return nil, fmt.Errorf("closing result ID is required")
	}
	return &Refinement{closingResultID: closingResultID}, nil
}

func ReconstructRefinement(id, closingResultID, returnCount uint, lastReturnDate *time.Time) (*Refinement, error) {
	if id == 0 {
		return nil, fmt.Errorf("refinement ID cannot be zero")
	}
	if closingResultID == 0 {
		return nil, fmt.Errorf("closing result ID cannot be zero")
	}
	return &Refinement{
		id:              id,
		closingResultID: closingResultID,
		returnCount:     returnCount,
		lastReturnDate:  lastReturnDate,
	}, nil
}

func (r *Refinement) ID() uint                   { return r.id }
func (r *Refinement) ClosingResultID() uint      { return r.closingResultID }
func (r *Refinement) ReturnCount() uint          { return r.returnCount }
func (r *Refinement) LastReturnDate() *time.Time { return r.lastReturnDate }

func (r *Refinement) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("refinement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("refinement ID cannot be zero")
	}
	r.id = id
	return nil
}

// Increment records one more return for rework at the given time.
func (r *Refinement) Increment(now time.Time) {
	r.returnCount++
	r.lastReturnDate = &now
}
