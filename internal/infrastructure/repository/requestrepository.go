package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"upravdom/internal/domain/request"
	"upravdom/internal/infrastructure/persistence/mappers"
	"upravdom/internal/infrastructure/persistence/models"
	db "upravdom/internal/shared/db"
)

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RequestModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *RequestRepository) GetByRootID(ctx context.Context, rootID uint) (*request.Request, error) {
	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("root_id = ?", rootID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("request not found")
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RequestModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.HasParent != nil {
		if *filter.HasParent {
			query = query.Where("parent_root_id IS NOT NULL")
		} else {
			query = query.Where("parent_root_id IS NULL")
		}
	}
	if filter.IncidentSign != nil {
		query = query.Where("incident_sign = ?", filter.IncidentSign.String())
	}

	var requestModels []models.RequestModel
	if err := query.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return r.toDomainSlice(requestModels)
}

func (r *RequestRepository) FindByDefectSignature(ctx context.Context, defectName, repeatedLocation string) ([]*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var requestModels []models.RequestModel
	err := tx.
		Model(&models.RequestModel{}).
		Joins("JOIN defects ON defects.id = requests.defect_id").
		Where("defects.name = ? AND defects.repeated_location = ?", defectName, repeatedLocation).
		Find(&requestModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find requests by defect signature: %w", err)
	}

	return r.toDomainSlice(requestModels)
}

func (r *RequestRepository) ListByParentRootID(ctx context.Context, parentRootID uint) ([]*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var requestModels []models.RequestModel
	if err := tx.
		Where("parent_root_id = ?", parentRootID).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests by parent: %w", err)
	}

	return r.toDomainSlice(requestModels)
}

// MaxIdentifiers reads the dataset-wide maxima of the shared root and
// version identifier sequence. Callers mint the next value inside the
// same transaction.
func (r *RequestRepository) MaxIdentifiers(ctx context.Context) (uint, uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var maxima struct {
		MaxRootID    *uint
		MaxVersionID *uint
	}
	err := tx.
		Model(&models.RequestModel{}).
		Select("MAX(root_id) AS max_root_id, MAX(version_id) AS max_version_id").
		Scan(&maxima).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read identifier maxima: %w", err)
	}

	var maxRootID, maxVersionID uint
	if maxima.MaxRootID != nil {
		maxRootID = *maxima.MaxRootID
	}
	if maxima.MaxVersionID != nil {
		maxVersionID = *maxima.MaxVersionID
	}
	return maxRootID, maxVersionID, nil
}

func (r *RequestRepository) AllNumbers(ctx context.Context) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var numbers []string
	if err := tx.
		Model(&models.RequestModel{}).
		Pluck("number", &numbers).Error; err != nil {
		return nil, fmt.Errorf("failed to read request numbers: %w", err)
	}
	return numbers, nil
}

func (r *RequestRepository) toDomainSlice(requestModels []models.RequestModel) ([]*request.Request, error) {
	requests := make([]*request.Request, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}
	return requests, nil
}
