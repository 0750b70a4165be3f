package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. UserID is the identity provider subject.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         string    `gorm:"type:varchar(128);not null;index"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	DocumentNumber string    `gorm:"type:varchar(32)"`
	Address        string    `gorm:"type:varchar(255)"`
	City           string    `gorm:"type:varchar(100)"`
	State          string    `gorm:"type:varchar(100)"`
	ZipCode        string    `gorm:"type:varchar(20)"`
	Phone          string    `gorm:"type:varchar(32)"`
	Email          string    `gorm:"type:varchar(255)"`
	AvatarURL      string    `gorm:"type:varchar(512)"`
	Preferences    string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
