package migration

import (
	"upravdom/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.OrganizationModel{},
		&models.ImplementingOrganizationModel{},
		&models.ODSModel{},
		&models.AddressModel{},
		&models.DefectModel{},
		&models.WorkPerformedTypeModel{},
		&models.SecurityEventModel{},
		&models.ExecutorRefusalReasonModel{},
		&models.ImplOrgRefusalReasonModel{},
		&models.RequestModel{},
		&models.ClosingResultModel{},
		&models.RefinementModel{},
		&models.ReviewModel{},
	}
}
