package resumes

import (
	"time"

	"coretalents-backend/internal/domain/users"

	"gorm.io/datatypes"
)

// Resume is the quota-consuming resource. Section payloads are kept as
// JSON documents because their shape is owned by the resume editor.
type Resume struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index"`
	User   users.User

	Title      string `gorm:"not null;default:'Untitled Resume'"`
	Summary    string
	ThemeColor string `gorm:"type:varchar(10);not null;default:'#3b82f6'"`

	PersonalInfo datatypes.JSON
	Experience   datatypes.JSON
	Education    datatypes.JSON
	Projects     datatypes.JSON
	Skills       datatypes.JSON

	CreatedAt time.Time
	UpdatedAt time.Time
}
