package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Teacher struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Role        string    `gorm:"size:50;not null" json:"role"`
	Nickname    *string   `gorm:"size:50" json:"nickname,omitempty"`
	Subject     *string   `gorm:"size:100" json:"subject,omitempty"`
	Gender      *string   `gorm:"size:10" json:"gender,omitempty"`
	Phone       *string   `gorm:"size:30" json:"phone,omitempty"`
	Whatsapp    *string   `gorm:"size:30" json:"whatsapp,omitempty"`
	Email       *string   `gorm:"size:100" json:"email,omitempty"`
	ProfilePic  *string   `gorm:"type:text" json:"profilePic,omitempty"`
	Bio         *string   `gorm:"type:text" json:"bio,omitempty"`
	Body        *string   `gorm:"type:text" json:"body,omitempty"`
	ContactInfo *string   `gorm:"type:text" json:"contactInfo,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID, err = uuid.NewV7()
	}
	return
}
