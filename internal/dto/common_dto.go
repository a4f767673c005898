package dto

import "github.com/google/uuid"

// ListQuery is the shared query-string contract for every paginated list.
type ListQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Category  string `form:"category"`
	Type      string `form:"type"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// Normalize applies the list defaults: page 1, the per-resource default
// limit, newest first.
func (q *ListQuery) Normalize(defaultLimit int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "desc"
	}
}

func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type ReorderItem struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1,dive"`
}

type SearchQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit"`
}
