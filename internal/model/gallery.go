package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ImageURL  string    `gorm:"type:text;not null" json:"imageUrl"`
	Caption   *string   `gorm:"size:200" json:"caption,omitempty"`
	Order     int       `gorm:"column:display_order;default:0;index" json:"order"`
	Category  *string   `gorm:"size:50;index" json:"category,omitempty"`
	Type      *string   `gorm:"size:10;index" json:"type,omitempty"` // 'photo' or 'video'
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (g *GalleryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID, err = uuid.NewV7()
	}
	return
}
