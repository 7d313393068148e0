package mappers

import (
	"encoding/json"
	"fmt"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/domain/organization"
	"upravdom/internal/infrastructure/persistence/models"
)

// Catalog records are plain structs, so the conversions are direct
// field copies.

func DefectToDomain(model *models.DefectModel) *catalog.Defect {
	return &catalog.Defect{
		ID:                    model.ID,
		CategoryName:          model.CategoryName,
		CategoryRootID:        model.CategoryRootID,
		CategoryCode:          model.CategoryCode,
		Name:                  model.Name,
		ShortName:             model.ShortName,
		Identifier:            model.Identifier,
		Code:                  model.Code,
		UrgencyCategoryName:   model.UrgencyCategoryName,
		UrgencyCategoryCode:   model.UrgencyCategoryCode,
		SignReturnForRevision: model.SignReturnForRevision,
		RepeatedLocation:      model.RepeatedLocation,
		AnotherTerm:           model.AnotherTerm,
	}
}

func AddressToDomain(model *models.AddressModel) *catalog.Address {
	return &catalog.Address{
		ID:                model.ID,
		OkrugName:         model.OkrugName,
		OkrugCode:         model.OkrugCode,
		DistrictName:      model.DistrictName,
		DistrictCode:      model.DistrictCode,
		ProblemAddress:    model.ProblemAddress,
		UNOM:              model.UNOM,
		ODSID:             model.ODSID,
		ManagementCompany: model.ManagementCompany,
	}
}

func ODSToDomain(model *models.ODSModel) *catalog.ODS {
	return &catalog.ODS{ID: model.ID, Number: model.Number}
}

func WorkPerformedTypeToDomain(model *models.WorkPerformedTypeModel) (*catalog.WorkPerformedType, error) {
	var defectIDs []uint
	if len(model.DefectIDs) > 0 {
		if err := json.Unmarshal(model.DefectIDs, &defectIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal defect IDs (id=%d): %w", model.ID, err)
		}
	}
	return &catalog.WorkPerformedType{
		ID:                model.ID,
		WorkPerformedType: model.WorkPerformedType,
		RootVersionID:     model.RootVersionID,
		DefectIDs:         defectIDs,
	}, nil
}

func SecurityEventToDomain(model *models.SecurityEventModel) *catalog.SecurityEvent {
	return &catalog.SecurityEvent{
		ID:                  model.ID,
		Name:                model.Name,
		RootVersionID:       model.RootVersionID,
		Term:                millisToTime(model.Term),
		WorkPerformedTypeID: model.WorkPerformedTypeID,
	}
}

func ExecutorRefusalReasonToDomain(model *models.ExecutorRefusalReasonModel) *catalog.RefusalReason {
	return &catalog.RefusalReason{
		ID:              model.ID,
		Name:            model.Name,
		FailureReasonID: model.FailureReasonID,
	}
}

func ImplOrgRefusalReasonToDomain(model *models.ImplOrgRefusalReasonModel) *catalog.RefusalReason {
	return &catalog.RefusalReason{
		ID:              model.ID,
		Name:            model.Name,
		FailureReasonID: model.FailureReasonID,
	}
}

func OrganizationToDomain(model *models.OrganizationModel) *organization.Organization {
	return &organization.Organization{
		ID:           model.ID,
		Name:         model.Name,
		Identifier:   model.Identifier,
		INN:          model.INN,
		BusinessRole: model.BusinessRole,
	}
}

func ImplementingOrganizationToDomain(model *models.ImplementingOrganizationModel) *organization.ImplementingOrganization {
	return &organization.ImplementingOrganization{
		ID:           model.ID,
		Name:         model.Name,
		Identifier:   model.Identifier,
		INN:          model.INN,
		BusinessRole: model.BusinessRole,
	}
}
