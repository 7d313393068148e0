package models

// ClosingResultModel persists the closure record of a request,
// one-to-one with a request root.
type ClosingResultModel struct {
	ID                 uint   `gorm:"primaryKey"`
	RequestRootID      uint   `gorm:"uniqueIndex;not null"`
	ConsumedMaterial   string `gorm:"type:text"`
	SecurityEventsSign string `gorm:"size:10"`
	SecurityEventsTime *int64
	ActionsTaken       string `gorm:"type:text"`
	Effectiveness      string `gorm:"size:200;not null"`
	EfficiencyCode     string `gorm:"size:20"`
	BeingUnderRevision string `gorm:"size:10;index"`
	SignAlerted        string `gorm:"size:10"`
	ExecutorRefusalID  *uint
	ImplOrgRefusalID   *uint
	ClosingDate        int64 `gorm:"not null"`
}

func (ClosingResultModel) TableName() string {
	return "closing_results"
}

// RefinementModel counts rework returns per closing result.
type RefinementModel struct {
	ID              uint `gorm:"primaryKey"`
	ClosingResultID uint `gorm:"uniqueIndex;not null"`
	ReturnCount     uint `gorm:"not null;default:0"`
	LastReturnDate  *int64
}

func (RefinementModel) TableName() string {
	return "refinements"
}

// ReviewModel stores citizen assessments of completed work.
type ReviewModel struct {
	ID                    uint   `gorm:"primaryKey"`
	ClosingResultID       uint   `gorm:"uniqueIndex;not null"`
	Dt                    int64  `gorm:"not null"`
	Review                string `gorm:"type:text"`
	AssessmentQualityWork uint   `gorm:"not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
