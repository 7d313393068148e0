package request

import (
	"time"
)

// Incident correlation: a new request for the same defect signature
// (defect name + repeated location) supersedes an older request whose
// allowed resolution term has already elapsed. The older request is
// flagged as an incident; the new one records the link.

// CorrelationCandidate pairs a prior request with the resolution term,
// in days, of its defect.
type CorrelationCandidate struct {
	Request  *Request
	TermDays int
}

// CorrelationResult names the chosen parent and every prior request
// that must be flagged as an incident.
type CorrelationResult struct {
	Parent  *Request
	Flagged []*Request
}

// Correlate scans prior requests with the same defect signature and
// picks the ones whose term elapsed before now. All of them are
// flagged; the earliest-created one becomes the parent. The earliest
// rule makes the choice deterministic where the reference behavior
// depended on iteration order.
func Correlate(candidates []CorrelationCandidate, now time.Time) CorrelationResult {
	var result CorrelationResult
	for _, c := range candidates {
		if c.Request == nil {
			continue
		}
		deadline := c.Request.CreatedAt().Add(time.Duration(c.TermDays) * 24 * time.Hour)
		if !deadline.Before(now) {
			continue
		}
		result.Flagged = append(result.Flagged, c.Request)
		if result.Parent == nil || c.Request.CreatedAt().Before(result.Parent.CreatedAt()) {
			result.Parent = c.Request
		}
	}
	return result
}

// MembershipParams carries the joined attributes the incident
// membership check needs beyond the two requests themselves.
type MembershipParams struct {
	ChildCategory  string
	ParentCategory string
	ChildAddress   string
	ParentAddress  string
}

// IsIncidentMember decides whether child legitimately belongs to the
// incident group rooted at parent. Besides matching defect category
// and problem address, the parent must have been created more than one
// day and less than seven days before the child. Both bounds are
// applied as specified; the narrow window is a suspected product rule
// awaiting confirmation.
func IsIncidentMember(child, parent *Request, p MembershipParams) bool {
	if child == nil || parent == nil {
		return false
	}
	if p.ChildCategory != p.ParentCategory {
		return false
	}
	if p.ChildAddress != p.ParentAddress {
		return false
	}
	lower := child.CreatedAt().Add(-7 * 24 * time.Hour)
	if !lower.Before(parent.CreatedAt()) {
		return false
	}
	return parent.CreatedAt().Add(24 * time.Hour).Before(child.CreatedAt())
}
