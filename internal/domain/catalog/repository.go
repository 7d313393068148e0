package catalog

import "context"

type DefectRepository interface {
	GetByID(ctx context.Context, id uint) (*Defect, error)
	List(ctx context.Context) ([]*Defect, error)
}

type AddressRepository interface {
	GetByID(ctx context.Context, id uint) (*Address, error)
	List(ctx context.Context) ([]*Address, error)
	GetODSByID(ctx context.Context, id uint) (*ODS, error)
}

type WorkPerformedTypeRepository interface {
	GetByID(ctx context.Context, id uint) (*WorkPerformedType, error)
	List(ctx context.Context) ([]*WorkPerformedType, error)
	ListSecurityEvents(ctx context.Context, workPerformedTypeID uint) ([]*SecurityEvent, error)
}

type RefusalReasonRepository interface {
	ListExecutor(ctx context.Context) ([]*RefusalReason, error)
	ListImplementing(ctx context.Context) ([]*RefusalReason, error)
}
