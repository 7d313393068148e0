// Package organization models the two kinds of parties in the dispatch
// workflow: customer organizations (management companies, dispatch
// services) and implementing organizations that execute the work.
package organization

import "context"

// Organization is a customer-side organization.
type Organization struct {
	ID           uint
	Name         string
	Identifier   uint
	INN          uint64
	BusinessRole string
}

// ImplementingOrganization executes requests routed to it. Kept as a
// separate registry with its own identifier space, matching the
// upstream dataset.
type ImplementingOrganization struct {
	ID           uint
	Name         string
	Identifier   uint
	INN          uint64
	BusinessRole string
}

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Organization, error)
}

type ImplementingRepository interface {
	GetByID(ctx context.Context, id uint) (*ImplementingOrganization, error)
	List(ctx context.Context) ([]*ImplementingOrganization, error)
}
