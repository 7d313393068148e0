package request

import (
	"context"

	vo "upravdom/internal/domain/request/valueobjects"
)

// Repository is the persistence boundary for service requests. The
// identifier queries (MaxIdentifiers, AllNumbers) and the writes that
// depend on them must run inside one transaction; repositories join
// the transaction bound to ctx.
type Repository interface {
	Save(ctx context.Context, r *Request) error
	Update(ctx context.Context, r *Request) error
	GetByRootID(ctx context.Context, rootID uint) (*Request, error)
	List(ctx context.Context, filter Filter) ([]*Request, error)

	// FindByDefectSignature returns every request whose defect shares
	// the given name and repeated location, for incident correlation.
	FindByDefectSignature(ctx context.Context, defectName, repeatedLocation string) ([]*Request, error)

	// ListByParentRootID returns the requests linked to the given
	// incident parent.
	ListByParentRootID(ctx context.Context, parentRootID uint) ([]*Request, error)

	// MaxIdentifiers returns the dataset-wide maxima of root and
	// version identifiers.
	MaxIdentifiers(ctx context.Context) (maxRootID, maxVersionID uint, err error)

	// AllNumbers returns every stored request number for prefix
	// scanning.
	AllNumbers(ctx context.Context) ([]string, error)
}

// Filter narrows List results. Zero values mean no constraint.
type Filter struct {
	Statuses     []vo.Status
	HasParent    *bool
	IncidentSign *vo.IncidentSign
}
