package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadershipMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Position   string    `gorm:"size:100;not null" json:"position"`
	ProfilePic *string   `gorm:"type:text" json:"profilePic,omitempty"`
	Bio        *string   `gorm:"type:text" json:"bio,omitempty"`
	Order      int       `gorm:"column:display_order;default:0;index" json:"order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (l *LeadershipMember) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID, err = uuid.NewV7()
	}
	return
}
