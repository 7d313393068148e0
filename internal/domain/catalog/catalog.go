// Package catalog holds the reference data the dispatch workflow joins
// against: defect classifications, serviced addresses, dispatch
// services, performed-work types, and refusal-reason registries. These
// records are maintained by administrators and read-only for the
// request workflow, so they are modeled as plain records rather than
// aggregates.
package catalog

import "time"

// Defect classifies a reported problem. RepeatedLocation and
// AnotherTerm form the recurrence signature: a second request for the
// same defect name at the same sub-location more than AnotherTerm days
// later counts as a repeat.
type Defect struct {
	ID                    uint
	CategoryName          string
	CategoryRootID        uint
	CategoryCode          string
	Name                  string
	ShortName             string
	Identifier            uint
	Code                  string
	UrgencyCategoryName   string
	UrgencyCategoryCode   string
	SignReturnForRevision string
	RepeatedLocation      string
	AnotherTerm           int
}

// Address is a serviced building with its administrative descriptors
// and the dispatch service responsible for it.
type Address struct {
	ID                uint
	OkrugName         string
	OkrugCode         uint
	DistrictName      string
	DistrictCode      uint
	ProblemAddress    string
	UNOM              uint
	ODSID             uint
	ManagementCompany string
}

// ODS is a joint dispatch service.
type ODS struct {
	ID     uint
	Number string
}

// WorkPerformedType names a kind of completed work and the defects it
// applies to.
type WorkPerformedType struct {
	ID                uint
	WorkPerformedType string
	RootVersionID     uint
	DefectIDs         []uint
}

// SecurityEvent is a scheduled protective measure tied to a performed
// work type.
type SecurityEvent struct {
	ID                  uint
	Name                string
	RootVersionID       uint
	Term                time.Time
	WorkPerformedTypeID uint
}

// RefusalReason is a registry entry naming why an executor or an
// implementing organization declined a request (MARM registries).
type RefusalReason struct {
	ID              uint
	Name            string
	FailureReasonID uint
}
