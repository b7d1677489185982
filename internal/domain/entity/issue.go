package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Issue is a reported room problem (plumbing, AC, ...). Rooms under repair
// are flagged by setting the room status to maintenance.
type Issue struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	RoomID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"room_id"`
	ReportedByID *uuid.UUID       `gorm:"type:uuid" json:"reported_by_id,omitempty"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	Priority     string           `gorm:"size:20;default:'normal'" json:"priority"`
	Status       enum.IssueStatus `gorm:"size:20;not null;default:'open';index" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	Room       Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	ReportedBy *User `gorm:"foreignKey:ReportedByID" json:"reported_by,omitempty"`
}

// BeforeCreate generates a UUID before creating a new issue
func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Issue model
func (Issue) TableName() string {
	return "issues"
}
