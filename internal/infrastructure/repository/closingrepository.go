package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"upravdom/internal/domain/closing"
	"upravdom/internal/infrastructure/persistence/mappers"
	"upravdom/internal/infrastructure/persistence/models"
	db "upravdom/internal/shared/db"
)

type ClosingResultRepository struct {
	db     *gorm.DB
	mapper mappers.ClosingMapper
}

func NewClosingResultRepository(db *gorm.DB) *ClosingResultRepository {
	return &ClosingResultRepository{
		db:     db,
		mapper: mappers.NewClosingMapper(),
	}
}

func (r *ClosingResultRepository) Save(ctx context.Context, c *closing.ClosingResult) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save closing result: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ClosingResultRepository) Update(ctx context.Context, c *closing.ClosingResult) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClosingResultModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update closing result: %w", result.Error)
	}
	return nil
}

func (r *ClosingResultRepository) GetByRequestRootID(ctx context.Context, rootID uint) (*closing.ClosingResult, error) {
	var model models.ClosingResultModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("request_root_id = ?", rootID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("closing result not found")
		}
		return nil, fmt.Errorf("failed to find closing result: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

type RefinementRepository struct {
	db     *gorm.DB
	mapper mappers.ClosingMapper
}

func NewRefinementRepository(db *gorm.DB) *RefinementRepository {
	return &RefinementRepository{
		db:     db,
		mapper: mappers.NewClosingMapper(),
	}
}

// GetOrCreateByClosingResultID returns the refinement for a closing
// result, inserting a zero-count row on first use.
func (r *RefinementRepository) GetOrCreateByClosingResultID(ctx context.Context, closingResultID uint) (*closing.Refinement, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.RefinementModel
	err := tx.Where("closing_result_id = ?", closingResultID).First(&model).Error
	if err == nil {
		return r.mapper.RefinementToDomain(&model)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find refinement: %w", err)
	}

	refinement, err := closing.NewRefinement(closingResultID)
	if err != nil {
		return nil, err
	}
	model = *r.mapper.RefinementToModel(refinement)
	if err := tx.Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to create refinement: %w", err)
	}
	if err := refinement.SetID(model.ID); err != nil {
		return nil, err
	}
	return refinement, nil
}

func (r *RefinementRepository) Update(ctx context.Context, refinement *closing.Refinement) error {
	model := r.mapper.RefinementToModel(refinement)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RefinementModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"return_count":     model.ReturnCount,
			"last_return_date": model.LastReturnDate,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update refinement: %w", result.Error)
	}
	return nil
}

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ClosingMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewClosingMapper(),
	}
}

func (r *ReviewRepository) Save(ctx context.Context, review *closing.Review) error {
	model := r.mapper.ReviewToModel(review)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return review.SetID(model.ID)
}

func (r *ReviewRepository) ListByClosingResultID(ctx context.Context, closingResultID uint) ([]*closing.Review, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var reviewModels []models.ReviewModel
	if err := tx.
		Where("closing_result_id = ?", closingResultID).
		Order("dt ASC").
		Find(&reviewModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]*closing.Review, len(reviewModels))
	for i, model := range reviewModels {
		review, err := r.mapper.ReviewToDomain(&model)
		if err != nil {
			return nil, err
		}
		reviews[i] = review
	}
	return reviews, nil
}
