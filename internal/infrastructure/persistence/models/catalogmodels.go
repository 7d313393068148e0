package models

import "gorm.io/datatypes"

// Reference-data tables. Maintained by administrators and read-only
// for the request workflow.

type DefectModel struct {
	ID                    uint   `gorm:"primaryKey"`
	CategoryName          string `gorm:"size:200;not null;index"`
	CategoryRootID        uint
	CategoryCode          string `gorm:"size:20"`
	Name                  string `gorm:"size:300;not null;index"`
	ShortName             string `gorm:"size:200"`
	Identifier            uint
	Code                  string `gorm:"size:20"`
	UrgencyCategoryName   string `gorm:"size:50"`
	UrgencyCategoryCode   string `gorm:"size:20"`
	SignReturnForRevision string `gorm:"size:10"`
	RepeatedLocation      string `gorm:"size:200;index"`
	AnotherTerm           int    `gorm:"not null;default:0"`
}

func (DefectModel) TableName() string {
	return "defects"
}

type AddressModel struct {
	ID                uint   `gorm:"primaryKey"`
	OkrugName         string `gorm:"size:100"`
	OkrugCode         uint
	DistrictName      string `gorm:"size:100"`
	DistrictCode      uint
	ProblemAddress    string `gorm:"uniqueIndex;size:300;not null"`
	UNOM              uint   `gorm:"column:unom;uniqueIndex"`
	ODSID             uint   `gorm:"column:ods_id;index"`
	ManagementCompany string `gorm:"size:300"`
}

func (AddressModel) TableName() string {
	return "addresses"
}

type ODSModel struct {
	ID     uint   `gorm:"primaryKey"`
	Number string `gorm:"uniqueIndex;size:50;not null"`
}

func (ODSModel) TableName() string {
	return "ods"
}

type WorkPerformedTypeModel struct {
	ID                uint   `gorm:"primaryKey"`
	WorkPerformedType string `gorm:"size:300;not null"`
	RootVersionID     uint
	DefectIDs         datatypes.JSON `gorm:"type:json"`
}

func (WorkPerformedTypeModel) TableName() string {
	return "work_performed_types"
}

type SecurityEventModel struct {
	ID                  uint   `gorm:"primaryKey"`
	Name                string `gorm:"size:300;not null"`
	RootVersionID       uint
	Term                int64
	WorkPerformedTypeID uint `gorm:"not null;index"`
}

func (SecurityEventModel) TableName() string {
	return "security_events"
}

type ExecutorRefusalReasonModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:300;not null"`
	FailureReasonID uint
}

func (ExecutorRefusalReasonModel) TableName() string {
	return "executor_refusal_reasons"
}

type ImplOrgRefusalReasonModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:300;not null"`
	FailureReasonID uint
}

func (ImplOrgRefusalReasonModel) TableName() string {
	return "impl_org_refusal_reasons"
}
