package models

// RequestModel persists service requests. The root and version
// identifiers share one sequence; uniqueness of root_id and number is
// enforced by the database so concurrent mints cannot collide.
type RequestModel struct {
	ID                   uint    `gorm:"primaryKey"`
	RootID               uint    `gorm:"uniqueIndex;not null"`
	VersionID            *uint   `gorm:"uniqueIndex"`
	Number               string  `gorm:"uniqueIndex;size:50;not null"`
	PublicServicesNumber string  `gorm:"size:50"`
	SourceName           string  `gorm:"size:100"`
	SourceCode           string  `gorm:"size:20"`
	CreatorName          string  `gorm:"size:200"`
	IncidentSign         string  `gorm:"size:10;index"`
	ParentRootID         *uint   `gorm:"index"`
	ParentNumber         string  `gorm:"size:50"`
	Comments             string  `gorm:"type:text"`
	Description          string  `gorm:"size:1000;not null"`
	Question             string  `gorm:"type:text"`
	Urgency              string  `gorm:"size:20;not null;index"`
	Status               string  `gorm:"size:30;not null;index"`
	AddressID            uint    `gorm:"not null;index"`
	Entrance             *uint
	Floor                *uint
	Apartment            *uint
	ExecutorID           uint   `gorm:"not null;index"`
	DefectID             uint   `gorm:"not null;index"`
	UserID               uint   `gorm:"not null;index"`
	PaymentCategoryName  string `gorm:"size:100"`
	PaymentCategoryCode  string `gorm:"size:20"`
	CardPaymentSign      string `gorm:"size:10"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RequestModel) TableName() string {
	return "requests"
}
