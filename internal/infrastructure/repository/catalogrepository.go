package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/infrastructure/persistence/mappers"
	"upravdom/internal/infrastructure/persistence/models"
	db "upravdom/internal/shared/db"
)

type DefectRepository struct {
	db *gorm.DB
}

func NewDefectRepository(db *gorm.DB) *DefectRepository {
	return &DefectRepository{db: db}
}

func (r *DefectRepository) GetByID(ctx context.Context, id uint) (*catalog.Defect, error) {
	var model models.DefectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("defect not found")
		}
		return nil, fmt.Errorf("failed to find defect: %w", err)
	}
	return mappers.DefectToDomain(&model), nil
}

func (r *DefectRepository) List(ctx context.Context) ([]*catalog.Defect, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var defectModels []models.DefectModel
	if err := tx.Order("category_name, name").Find(&defectModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list defects: %w", err)
	}

	defects := make([]*catalog.Defect, len(defectModels))
	for i, model := range defectModels {
		defects[i] = mappers.DefectToDomain(&model)
	}
	return defects, nil
}

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) GetByID(ctx context.Context, id uint) (*catalog.Address, error) {
	var model models.AddressModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("address not found")
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return mappers.AddressToDomain(&model), nil
}

func (r *AddressRepository) List(ctx context.Context) ([]*catalog.Address, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var addressModels []models.AddressModel
	if err := tx.Order("problem_address").Find(&addressModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	addresses := make([]*catalog.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = mappers.AddressToDomain(&model)
	}
	return addresses, nil
}

func (r *AddressRepository) GetODSByID(ctx context.Context, id uint) (*catalog.ODS, error) {
	var model models.ODSModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dispatch service not found")
		}
		return nil, fmt.Errorf("failed to find dispatch service: %w", err)
	}
	return mappers.ODSToDomain(&model), nil
}

type WorkPerformedTypeRepository struct {
	db *gorm.DB
}

func NewWorkPerformedTypeRepository(db *gorm.DB) *WorkPerformedTypeRepository {
	return &WorkPerformedTypeRepository{db: db}
}

func (r *WorkPerformedTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.WorkPerformedType, error) {
	var model models.WorkPerformedTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("work performed type not found")
		}
		return nil, fmt.Errorf("failed to find work performed type: %w", err)
	}
	return mappers.WorkPerformedTypeToDomain(&model)
}

func (r *WorkPerformedTypeRepository) List(ctx context.Context) ([]*catalog.WorkPerformedType, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var typeModels []models.WorkPerformedTypeModel
	if err := tx.Order("work_performed_type").Find(&typeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list work performed types: %w", err)
	}

	types := make([]*catalog.WorkPerformedType, len(typeModels))
	for i, model := range typeModels {
		t, err := mappers.WorkPerformedTypeToDomain(&model)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

func (r *WorkPerformedTypeRepository) ListSecurityEvents(ctx context.Context, workPerformedTypeID uint) ([]*catalog.SecurityEvent, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var eventModels []models.SecurityEventModel
	if err := tx.
		Where("work_performed_type_id = ?", workPerformedTypeID).
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list security events: %w", err)
	}

	events := make([]*catalog.SecurityEvent, len(eventModels))
	for i, model := range eventModels {
		events[i] = mappers.SecurityEventToDomain(&model)
	}
	return events, nil
}

type RefusalReasonRepository struct {
	db *gorm.DB
}

func NewRefusalReasonRepository(db *gorm.DB) *RefusalReasonRepository {
	return &RefusalReasonRepository{db: db}
}

func (r *RefusalReasonRepository) ListExecutor(ctx context.Context) ([]*catalog.RefusalReason, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var reasonModels []models.ExecutorRefusalReasonModel
	if err := tx.Order("name").Find(&reasonModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list executor refusal reasons: %w", err)
	}

	reasons := make([]*catalog.RefusalReason, len(reasonModels))
	for i, model := range reasonModels {
		reasons[i] = mappers.ExecutorRefusalReasonToDomain(&model)
	}
	return reasons, nil
}

func (r *RefusalReasonRepository) ListImplementing(ctx context.Context) ([]*catalog.RefusalReason, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var reasonModels []models.ImplOrgRefusalReasonModel
	if err := tx.Order("name").Find(&reasonModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list implementing organization refusal reasons: %w", err)
	}

	reasons := make([]*catalog.RefusalReason, len(reasonModels))
	for i, model := range reasonModels {
		reasons[i] = mappers.ImplOrgRefusalReasonToDomain(&model)
	}
	return reasons, nil
}
