package converter

import (
	"time"

	"homebar/internal/entity/db"
	"homebar/internal/entity/dto"
)

// ParticipantToDTO converts db.Participant to dto.Participant.
func ParticipantToDTO(p *db.Participant) dto.Participant {
	if p == nil {
		return dto.Participant{}
	}
	return dto.Participant{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// ParticipantsToDTOs converts a slice of db.Participant to dto.Participant.
func ParticipantsToDTOs(participants []db.Participant) []dto.Participant {
	dtos := make([]dto.Participant, len(participants))
	for i, p := range participants {
		dtos[i] = ParticipantToDTO(&p)
	}
	return dtos
}

// InventoryItemToDTO converts db.InventoryItem to dto.InventoryItem.
func InventoryItemToDTO(item *db.InventoryItem) dto.InventoryItem {
	if item == nil {
		return dto.InventoryItem{}
	}
	return dto.InventoryItem{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		UpdatedAt: item.UpdatedAt,
	}
}

// InventoryItemsToDTOs converts a slice of db.InventoryItem to dto.InventoryItem.
func InventoryItemsToDTOs(items []db.InventoryItem) []dto.InventoryItem {
	dtos := make([]dto.InventoryItem, len(items))
	for i, item := range items {
		dtos[i] = InventoryItemToDTO(&item)
	}
	return dtos
}

// RecipeToDTO 将 db.Recipe 转换为 dto.Recipe。
// photoURL 用于将存储路径转换为公开 URL。
func RecipeToDTO(r *db.Recipe, photoURL func(path string) string) dto.Recipe {
	if r == nil {
		return dto.Recipe{}
	}
	items := make([]dto.RecipeIngredient, len(r.Items))
	for i, item := range r.Items {
		items[i] = dto.RecipeIngredient{Name: item.Name, Amount: item.Amount, Unit: item.Unit}
	}

	recipe := dto.Recipe{
		ID:           r.ID,
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		IsGenerated:  r.IsGenerated,
		RecipeType:   r.RecipeType,
		Items:        items,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.PhotoPath != "" && photoURL != nil {
		recipe.PhotoURL = photoURL(r.PhotoPath)
	}
	return recipe
}

// RecipesToDTOs converts a slice of db.Recipe to dto.Recipe.
func RecipesToDTOs(recipes []db.Recipe, photoURL func(path string) string) []dto.Recipe {
	dtos := make([]dto.Recipe, len(recipes))
	for i, r := range recipes {
		dtos[i] = RecipeToDTO(&r, photoURL)
	}
	return dtos
}

// EventToDTO converts db.Event to dto.Event, rendering the date as
// YYYY-MM-DD.
func EventToDTO(e *db.Event) dto.Event {
	if e == nil {
		return dto.Event{}
	}
	menu := make([]dto.RecipeSummary, len(e.Recipes))
	for i, r := range e.Recipes {
		menu[i] = dto.RecipeSummary{ID: r.ID, Name: r.Name, RecipeType: r.RecipeType}
	}

	event := dto.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Recipes:     menu,
		CreatedAt:   e.CreatedAt,
	}
	if date := time.Time(e.Date); !date.IsZero() {
		event.Date = date.Format(dto.DateLayout)
	}
	return event
}

// EventsToDTOs converts a slice of db.Event to dto.Event.
func EventsToDTOs(events []db.Event) []dto.Event {
	dtos := make([]dto.Event, len(events))
	for i, e := range events {
		dtos[i] = EventToDTO(&e)
	}
	return dtos
}

// ConsumptionToDTO converts db.Consumption to dto.Consumption.
func ConsumptionToDTO(c *db.Consumption) dto.Consumption {
	if c == nil {
		return dto.Consumption{}
	}
	consumption := dto.Consumption{
		ID:            c.ID,
		ParticipantID: c.ParticipantID,
		DrinkName:     c.DrinkName,
		Timestamp:     c.Timestamp,
		EventID:       c.EventID,
		RecipeID:      c.RecipeID,
	}
	if c.Participant != nil {
		consumption.ParticipantName = c.Participant.Name
	}
	return consumption
}

// ConsumptionsToDTOs converts a slice of db.Consumption to dto.Consumption.
func ConsumptionsToDTOs(consumptions []db.Consumption) []dto.Consumption {
	dtos := make([]dto.Consumption, len(consumptions))
	for i, c := range consumptions {
		dtos[i] = ConsumptionToDTO(&c)
	}
	return dtos
}

// BartenderToDTO converts db.Bartender to dto.Bartender.
func BartenderToDTO(b *db.Bartender) dto.Bartender {
	if b == nil {
		return dto.Bartender{}
	}
	return dto.Bartender{
		ID:       b.ID,
		Name:     b.Name,
		Title:    b.Title,
		IsActive: b.IsActive,
		Order:    b.Order,
	}
}

// BartendersToDTOs converts a slice of db.Bartender to dto.Bartender.
func BartendersToDTOs(bartenders []db.Bartender) []dto.Bartender {
	dtos := make([]dto.Bartender, len(bartenders))
	for i, b := range bartenders {
		dtos[i] = BartenderToDTO(&b)
	}
	return dtos
}

// SuggestionRecordToDTO converts db.SuggestionRecord to dto.SuggestionRecord.
func SuggestionRecordToDTO(r *db.SuggestionRecord) dto.SuggestionRecord {
	if r == nil {
		return dto.SuggestionRecord{}
	}
	record := dto.SuggestionRecord{
		ID:         r.ID,
		Kind:       r.Kind,
		Provider:   r.Provider,
		Model:      r.Model,
		Request:    r.Request,
		Reply:      r.Reply,
		Fallback:   r.Fallback,
		EventID:    r.EventID,
		Error:      r.ErrorMessage,
		DurationMs: r.DurationMs,
		CreatedAt:  r.CreatedAt,
	}
	if len(r.Payload) > 0 {
		record.Payload = []byte(r.Payload)
	}
	return record
}

// SuggestionRecordsToDTOs converts a slice of db.SuggestionRecord to dto.SuggestionRecord.
func SuggestionRecordsToDTOs(records []db.SuggestionRecord) []dto.SuggestionRecord {
	dtos := make([]dto.SuggestionRecord, len(records))
	for i, r := range records {
		dtos[i] = SuggestionRecordToDTO(&r)
	}
	return dtos
}
