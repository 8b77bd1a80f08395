package dto

type CategoryFilters struct {
	ParentID *string // Nil means ignore, empty string means root categories
}

type CategoryView struct {
	ID          string  `json:"id"`
	ParentID    *string `json:"parentId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}
