package dto

// Bartender is the DTO representation of a roster entry.
type Bartender struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
	Order    int    `json:"order"`
}

// BartenderRequest creates or updates a roster entry.
type BartenderRequest struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	IsActive *bool   `json:"is_active"`
	Order    *int    `json:"order"`
}
