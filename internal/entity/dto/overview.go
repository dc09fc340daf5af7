package dto

// Overview is the landing payload listing everything on the bar.
type Overview struct {
	Participants []Participant   `json:"participants"`
	Inventory    []InventoryItem `json:"inventory"`
	Recipes      []Recipe        `json:"recipes"`
	Events       []Event         `json:"events"`
	Bartenders   []Bartender     `json:"bartenders"`
	Categories   []string        `json:"categories"`
}
