package models

type OrganizationModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:300;not null"`
	Identifier   uint   `gorm:"uniqueIndex"`
	INN          uint64 `gorm:"column:inn;uniqueIndex"`
	BusinessRole string `gorm:"size:100"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

type ImplementingOrganizationModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:300;not null"`
	Identifier   uint   `gorm:"uniqueIndex"`
	INN          uint64 `gorm:"column:inn;uniqueIndex"`
	BusinessRole string `gorm:"size:100"`
}

func (ImplementingOrganizationModel) TableName() string {
	return "implementing_organizations"
}
