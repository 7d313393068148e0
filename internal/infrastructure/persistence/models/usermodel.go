package models

type UserModel struct {
	ID                         uint   `gorm:"primaryKey"`
	Username                   string `gorm:"uniqueIndex;size:20;not null"`
	PasswordHash               string `gorm:"size:255;not null"`
	Position                   string `gorm:"size:100"`
	OrganizationID             *uint  `gorm:"index"`
	ImplementingOrganizationID *uint  `gorm:"index"`
	CreatedAt                  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt                  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
