package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"upravdom/internal/domain/organization"
	"upravdom/internal/infrastructure/persistence/mappers"
	"upravdom/internal/infrastructure/persistence/models"
	db "upravdom/internal/shared/db"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("organization not found")
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return mappers.OrganizationToDomain(&model), nil
}

type ImplementingOrganizationRepository struct {
	db *gorm.DB
}

func NewImplementingOrganizationRepository(db *gorm.DB) *ImplementingOrganizationRepository {
	return &ImplementingOrganizationRepository{db: db}
}

func (r *ImplementingOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.ImplementingOrganization, error) {
	var model models.ImplementingOrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("implementing organization not found")
		}
		return nil, fmt.Errorf("failed to find implementing organization: %w", err)
	}
	return mappers.ImplementingOrganizationToDomain(&model), nil
}

func (r *ImplementingOrganizationRepository) List(ctx context.Context) ([]*organization.ImplementingOrganization, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var orgModels []models.ImplementingOrganizationModel
	if err := tx.Order("name").Find(&orgModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list implementing organizations: %w", err)
	}

	orgs := make([]*organization.ImplementingOrganization, len(orgModels))
	for i, model := range orgModels {
		orgs[i] = mappers.ImplementingOrganizationToDomain(&model)
	}
	return orgs, nil
}
