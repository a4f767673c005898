package model

import "time"

// Setting is one row of the flat key/value store backing the editable site
// pages. Keys are namespaced by page, e.g. "home.title".
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
