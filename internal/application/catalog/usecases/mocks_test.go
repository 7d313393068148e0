package usecases

import (
	"context"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/shared/logger"
)

type mockAddressRepository struct {
	GetByIDFunc    func(ctx context.Context, id uint) (*catalog.Address, error)
	ListFunc       func(ctx context.Context) ([]*catalog.Address, error)
	GetODSByIDFunc func(ctx context.Context, id uint) (*catalog.ODS, error)
}

func (m *mockAddressRepository) GetByID(ctx context.Context, id uint) (*catalog.Address, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAddressRepository) List(ctx context.Context) ([]*catalog.Address, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAddressRepository) GetODSByID(ctx context.Context, id uint) (*catalog.ODS, error) {
	if m.GetODSByIDFunc != nil {
		return m.GetODSByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockWorkPerformedTypeRepository struct {
	GetByIDFunc            func(ctx context.Context, id uint) (*catalog.WorkPerformedType, error)
	ListFunc               func(ctx context.Context) ([]*catalog.WorkPerformedType, error)
	ListSecurityEventsFunc func(ctx context.Context, workPerformedTypeID uint) ([]*catalog.SecurityEvent, error)
}

func (m *mockWorkPerformedTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.WorkPerformedType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkPerformedTypeRepository) List(ctx context.Context) ([]*catalog.WorkPerformedType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockWorkPerformedTypeRepository) ListSecurityEvents(ctx context.Context, workPerformedTypeID uint) ([]*catalog.SecurityEvent, error) {
	if m.ListSecurityEventsFunc != nil {
		return m.ListSecurityEventsFunc(ctx, workPerformedTypeID)
	}
	return nil, nil
}

type mockRefusalReasonRepository struct {
	ListExecutorFunc     func(ctx context.Context) ([]*catalog.RefusalReason, error)
	ListImplementingFunc func(ctx context.Context) ([]*catalog.RefusalReason, error)
}

func (m *mockRefusalReasonRepository) ListExecutor(ctx context.Context) ([]*catalog.RefusalReason, error) {
	if m.ListExecutorFunc != nil {
		return m.ListExecutorFunc(ctx)
	}
	return nil, nil
}

func (m *mockRefusalReasonRepository) ListImplementing(ctx context.Context) ([]*catalog.RefusalReason, error) {
	if m.ListImplementingFunc != nil {
		return m.ListImplementingFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
