package repository

// ListParams carries normalized pagination/filter/sort values down to the
// store. SortBy must already be a whitelisted column name; count and page
// queries apply the identical filter set.
type ListParams struct {
	Offset    int
	Limit     int
	SortBy    string
	SortOrder string
	Category  string
	Type      string
}

func (p ListParams) OrderClause() string {
	order := p.SortOrder
	if order != "asc" {
		order = "desc"
	}
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	return sortBy + " " + order
}
