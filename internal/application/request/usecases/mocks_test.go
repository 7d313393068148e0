package usecases

import (
	"context"
	"time"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/domain/closing"
	"upravdom/internal/domain/request"
	"upravdom/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc                  func(ctx context.Context, r *request.Request) error
	UpdateFunc                func(ctx context.Context, r *request.Request) error
	GetByRootIDFunc           func(ctx context.Context, rootID uint) (*request.Request, error)
	ListFunc                  func(ctx context.Context, filter request.Filter) ([]*request.Request, error)
	FindByDefectSignatureFunc func(ctx context.Context, defectName, repeatedLocation string) ([]*request.Request, error)
	ListByParentRootIDFunc    func(ctx context.Context, parentRootID uint) ([]*request.Request, error)
	MaxIdentifiersFunc        func(ctx context.Context) (uint, uint, error)
	AllNumbersFunc            func(ctx context.Context) ([]string, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) GetByRootID(ctx context.Context, rootID uint) (*request.Request, error) {
	if m.GetByRootIDFunc != nil {
		return m.GetByRootIDFunc(ctx, rootID)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockRequestRepository) FindByDefectSignature(ctx context.Context, defectName, repeatedLocation string) ([]*request.Request, error) {
	if m.FindByDefectSignatureFunc != nil {
		return m.FindByDefectSignatureFunc(ctx, defectName, repeatedLocation)
	}
	return nil, nil
}

func (m *mockRequestRepository) ListByParentRootID(ctx context.Context, parentRootID uint) ([]*request.Request, error) {
	if m.ListByParentRootIDFunc != nil {
		return m.ListByParentRootIDFunc(ctx, parentRootID)
	}
	return nil, nil
}

func (m *mockRequestRepository) MaxIdentifiers(ctx context.Context) (uint, uint, error) {
	if m.MaxIdentifiersFunc != nil {
		return m.MaxIdentifiersFunc(ctx)
	}
	return 0, 0, nil
}

func (m *mockRequestRepository) AllNumbers(ctx context.Context) ([]string, error) {
	if m.AllNumbersFunc != nil {
		return m.AllNumbersFunc(ctx)
	}
	return nil, nil
}

type mockDefectRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.Defect, error)
	ListFunc    func(ctx context.Context) ([]*catalog.Defect, error)
}

func (m *mockDefectRepository) GetByID(ctx context.Context, id uint) (*catalog.Defect, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDefectRepository) List(ctx context.Context) ([]*catalog.Defect, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

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

type mockClosingResultRepository struct {
	SaveFunc               func(ctx context.Context, c *closing.ClosingResult) error
	UpdateFunc             func(ctx context.Context, c *closing.ClosingResult) error
	GetByRequestRootIDFunc func(ctx context.Context, rootID uint) (*closing.ClosingResult, error)
}

func (m *mockClosingResultRepository) Save(ctx context.Context, c *closing.ClosingResult) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClosingResultRepository) Update(ctx context.Context, c *closing.ClosingResult) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClosingResultRepository) GetByRequestRootID(ctx context.Context, rootID uint) (*closing.ClosingResult, error) {
	if m.GetByRequestRootIDFunc != nil {
		return m.GetByRequestRootIDFunc(ctx, rootID)
	}
	return nil, nil
}

type mockRefinementRepository struct {
	GetOrCreateByClosingResultIDFunc func(ctx context.Context, closingResultID uint) (*closing.Refinement, error)
	UpdateFunc                       func(ctx context.Context, r *closing.Refinement) error
}

func (m *mockRefinementRepository) GetOrCreateByClosingResultID(ctx context.Context, closingResultID uint) (*closing.Refinement, error) {
	if m.GetOrCreateByClosingResultIDFunc != nil {
		return m.GetOrCreateByClosingResultIDFunc(ctx, closingResultID)
	}
	return closing.NewRefinement(closingResultID)
}

func (m *mockRefinementRepository) Update(ctx context.Context, r *closing.Refinement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

type mockReviewRepository struct {
	SaveFunc                  func(ctx context.Context, r *closing.Review) error
	ListByClosingResultIDFunc func(ctx context.Context, closingResultID uint) ([]*closing.Review, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, r *closing.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) ListByClosingResultID(ctx context.Context, closingResultID uint) ([]*closing.Review, error) {
	if m.ListByClosingResultIDFunc != nil {
		return m.ListByClosingResultIDFunc(ctx, closingResultID)
	}
	return nil, nil
}

// mockTxManager runs the unit of work inline.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
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

// reconstructedRequest is a persistence-shaped request for use case
// tests.
func reconstructedRequest(id, rootID uint, opts func(*request.ReconstructParams)) (*request.Request, error) {
	now := time.Now()
	p := request.ReconstructParams{
		ID:          id,
		RootID:      rootID,
		Number:      "125",
		Description: "Протечка стояка",
		Urgency:     "normal",
		Status:      "new",
		AddressID:   3,
		ExecutorID:  2,
		DefectID:    5,
		UserID:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if opts != nil {
		opts(&p)
	}
	return request.ReconstructRequest(p)
}
