package sql_test

import (
	"errors"
	"time"

	"homebar/internal/entity"
	"homebar/internal/model/sql"

	"go.openly.dev/pointy"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (s *RepositorySuite) createParticipant(name string) *entity.DbParticipant {
	p := &entity.DbParticipant{Name: name}
	s.Require().NoError(s.repo.CreateParticipant(s.ctx, p))
	return p
}

func (s *RepositorySuite) createEvent(name string) *entity.DbEvent {
	e := &entity.DbEvent{Name: name, Date: datatypes.Date(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))}
	s.Require().NoError(s.repo.CreateEvent(s.ctx, e))
	return e
}

func (s *RepositorySuite) createRecipe(name string, items ...entity.DbRecipeIngredient) *entity.DbRecipe {
	for i := range items {
		items[i].Position = i
	}
	r := &entity.DbRecipe{
		Name:        name,
		Ingredients: entity.FormatIngredientText(items),
		RecipeType:  "classic",
		Items:       items,
	}
	s.Require().NoError(s.repo.CreateRecipe(s.ctx, r, 0))
	return r
}

func (s *RepositorySuite) TestNilRepository() {
	var repo *sql.GormRepository
	_, err := repo.ListParticipants(s.ctx)
	s.EqualError(err, "repository not initialised")
}

func (s *RepositorySuite) TestParticipantLifecycle() {
	alice := s.createParticipant("Alice")

	s.Require().NoError(s.repo.UpdateParticipant(s.ctx, alice.ID, entity.ParticipantUpdates{Name: pointy.String("Alicia")}))
	got, err := s.repo.GetParticipant(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal("Alicia", got.Name)

	err = s.repo.UpdateParticipant(s.ctx, 999, entity.ParticipantUpdates{Name: pointy.String("Ghost")})
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestDeleteParticipantRemovesConsumptions() {
	alice := s.createParticipant("Alice")
	bob := s.createParticipant("Bob")
	s.Require().NoError(s.repo.CreateConsumption(s.ctx, &entity.DbConsumption{ParticipantID: alice.ID, DrinkName: "Mojito"}))
	s.Require().NoError(s.repo.CreateConsumption(s.ctx, &entity.DbConsumption{ParticipantID: bob.ID, DrinkName: "Negroni"}))

	s.Require().NoError(s.repo.DeleteParticipant(s.ctx, alice.ID))

	var remaining []entity.DbConsumption
	s.Require().NoError(s.DB.Find(&remaining).Error)
	s.Require().Len(remaining, 1)
	s.Equal(bob.ID, remaining[0].ParticipantID)

	s.True(errors.Is(s.repo.DeleteParticipant(s.ctx, alice.ID), gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestInventoryNormalisesCategory() {
	item := &entity.DbInventoryItem{Name: "Tanqueray", Category: "gin", Quantity: "1 bottle"}
	s.Require().NoError(s.repo.CreateInventoryItem(s.ctx, item))
	s.Equal("Gin", item.Category)

	s.Require().NoError(s.repo.UpdateInventoryItem(s.ctx, item.ID, entity.InventoryUpdates{Category: pointy.String("absinthe")}))
	got, err := s.repo.GetInventoryItem(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal("Other", got.Category)

	s.Require().NoError(s.repo.DeleteInventoryItem(s.ctx, item.ID))
	s.True(errors.Is(s.repo.DeleteInventoryItem(s.ctx, item.ID), gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestCreateRecipeAttachesToEvent() {
	event := s.createEvent("Spring Party")
	recipe := &entity.DbRecipe{
		Name:       "Gimlet",
		RecipeType: "classic",
		Items:      []entity.DbRecipeIngredient{{Name: "Gin", Amount: 60, Unit: "ml"}},
	}

	s.Require().NoError(s.repo.CreateRecipe(s.ctx, recipe, event.ID))

	got, err := s.repo.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Recipes, 1)
	s.Equal("Gimlet", got.Recipes[0].Name)
	s.Require().Len(got.Recipes[0].Items, 1)

	orphan := &entity.DbRecipe{Name: "Lonely", RecipeType: "classic"}
	s.Require().NoError(s.repo.CreateRecipe(s.ctx, orphan, 404))
	s.NotZero(orphan.ID)
}

func (s *RepositorySuite) TestReplaceRecipeSwapsIngredientSet() {
	recipe := s.createRecipe("Martini",
		entity.DbRecipeIngredient{Name: "Gin", Amount: 60, Unit: "ml"},
		entity.DbRecipeIngredient{Name: "Dry Vermouth", Amount: 10, Unit: "ml"},
	)
	oldIDs := []uint{recipe.Items[0].ID, recipe.Items[1].ID}

	err := s.repo.ReplaceRecipe(s.ctx, recipe.ID,
		entity.RecipeUpdates{Ingredients: pointy.String("Gin 45 ml")},
		[]entity.DbRecipeIngredient{{Name: "Gin", Amount: 45, Unit: "ml"}},
	)
	s.Require().NoError(err)

	got, err := s.repo.GetRecipe(s.ctx, recipe.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Items, 1)
	s.Equal("Gin", got.Items[0].Name)
	s.Equal(45.0, got.Items[0].Amount)
	s.Equal("ml", got.Items[0].Unit)
	s.NotContains(oldIDs, got.Items[0].ID)
	s.Equal("Gin 45 ml", got.Ingredients)

	var count int64
	s.Require().NoError(s.DB.Model(&entity.DbRecipeIngredient{}).Where("id IN ?", oldIDs).Count(&count).Error)
	s.Zero(count)
}

func (s *RepositorySuite) TestReplaceRecipeMissing() {
	err := s.repo.ReplaceRecipe(s.ctx, 42, entity.RecipeUpdates{}, []entity.DbRecipeIngredient{{Name: "Gin"}})
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	var count int64
	s.Require().NoError(s.DB.Model(&entity.DbRecipeIngredient{}).Count(&count).Error)
	s.Zero(count)
}

func (s *RepositorySuite) TestDeleteRecipeCascades() {
	event := s.createEvent("Spring Party")
	alice := s.createParticipant("Alice")
	recipe := s.createRecipe("Mojito",
		entity.DbRecipeIngredient{Name: "White Rum", Amount: 45, Unit: "ml"},
		entity.DbRecipeIngredient{Name: "Mint", Unit: "leaf"},
	)
	s.Require().NoError(s.repo.AddRecipeToEvent(s.ctx, event.ID, recipe.ID))
	consumption := &entity.DbConsumption{ParticipantID: alice.ID, DrinkName: "Mojito", EventID: &event.ID, RecipeID: &recipe.ID}
	s.Require().NoError(s.repo.CreateConsumption(s.ctx, consumption))

	s.Require().NoError(s.repo.DeleteRecipe(s.ctx, recipe.ID))

	var items int64
	s.Require().NoError(s.DB.Model(&entity.DbRecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&items).Error)
	s.Zero(items)

	var links int64
	s.Require().NoError(s.DB.Model(&entity.DbEventRecipe{}).Count(&links).Error)
	s.Zero(links)

	got, err := s.repo.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Empty(got.Recipes)

	logged, err := s.repo.ListEventConsumptions(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Require().Len(logged, 1)
	s.Nil(logged[0].RecipeID)
	s.Equal("Mojito", logged[0].DrinkName)

	s.True(errors.Is(s.repo.DeleteRecipe(s.ctx, recipe.ID), gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestFindRecipeIDByName() {
	first := s.createRecipe("Negroni")
	s.createRecipe("Negroni")

	id, err := s.repo.FindRecipeIDByName(s.ctx, "Negroni")
	s.Require().NoError(err)
	s.Require().NotNil(id)
	s.Equal(first.ID, *id)

	id, err = s.repo.FindRecipeIDByName(s.ctx, "negroni ")
	s.Require().NoError(err)
	s.Nil(id)
}

func (s *RepositorySuite) TestEventMenuLinks() {
	event := s.createEvent("Spring Party")
	recipe := s.createRecipe("Paloma")

	s.Require().NoError(s.repo.AddRecipeToEvent(s.ctx, event.ID, recipe.ID))
	s.Require().NoError(s.repo.AddRecipeToEvent(s.ctx, event.ID, recipe.ID))

	got, err := s.repo.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Len(got.Recipes, 1)

	s.True(errors.Is(s.repo.AddRecipeToEvent(s.ctx, event.ID, 999), gorm.ErrRecordNotFound))
	s.True(errors.Is(s.repo.AddRecipeToEvent(s.ctx, 999, recipe.ID), gorm.ErrRecordNotFound))

	s.Require().NoError(s.repo.RemoveRecipeFromEvent(s.ctx, event.ID, recipe.ID))
	s.True(errors.Is(s.repo.RemoveRecipeFromEvent(s.ctx, event.ID, recipe.ID), gorm.ErrRecordNotFound))

	_, err = s.repo.GetRecipe(s.ctx, recipe.ID)
	s.NoError(err)
}

func (s *RepositorySuite) TestEventDefaultsAndDelete() {
	event := &entity.DbEvent{Date: datatypes.Date(time.Now())}
	s.Require().NoError(s.repo.CreateEvent(s.ctx, event))

	got, err := s.repo.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Equal("weekend gathering", got.Name)

	alice := s.createParticipant("Alice")
	s.Require().NoError(s.repo.CreateConsumption(s.ctx, &entity.DbConsumption{ParticipantID: alice.ID, DrinkName: "Sour", EventID: &event.ID}))

	s.Require().NoError(s.repo.DeleteEvent(s.ctx, event.ID))
	_, err = s.repo.GetEvent(s.ctx, event.ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	var consumption entity.DbConsumption
	s.Require().NoError(s.DB.First(&consumption).Error)
	s.Nil(consumption.EventID)
}

func (s *RepositorySuite) TestListEventsNewestFirst() {
	older := &entity.DbEvent{Name: "Old", Date: datatypes.Date(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))}
	newer := &entity.DbEvent{Name: "New", Date: datatypes.Date(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))}
	s.Require().NoError(s.repo.CreateEvent(s.ctx, older))
	s.Require().NoError(s.repo.CreateEvent(s.ctx, newer))

	events, err := s.repo.ListEvents(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("New", events[0].Name)
	s.Equal("Old", events[1].Name)
}

func (s *RepositorySuite) TestCreateConsumptionRequiresParticipant() {
	err := s.repo.CreateConsumption(s.ctx, &entity.DbConsumption{ParticipantID: 77, DrinkName: "Sour"})
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestListEventConsumptionsInInsertionOrder() {
	event := s.createEvent("Spring Party")
	alice := s.createParticipant("Alice")
	bob := s.createParticipant("Bob")
	for _, row := range []struct {
		participant uint
		drink       string
	}{{alice.ID, "Mojito"}, {bob.ID, "Gin Tonic"}, {alice.ID, "Mojito"}} {
		s.Require().NoError(s.repo.CreateConsumption(s.ctx, &entity.DbConsumption{ParticipantID: row.participant, DrinkName: row.drink, EventID: &event.ID}))
	}
	s.Require().NoError(s.repo.CreateConsumption(s.ctx, &entity.DbConsumption{ParticipantID: bob.ID, DrinkName: "Water"}))

	logged, err := s.repo.ListEventConsumptions(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Require().Len(logged, 3)
	s.Equal("Mojito", logged[0].DrinkName)
	s.Equal("Gin Tonic", logged[1].DrinkName)
	s.Require().NotNil(logged[1].Participant)
	s.Equal("Bob", logged[1].Participant.Name)
	s.False(logged[0].Timestamp.IsZero())
}

func (s *RepositorySuite) TestListConsumptionsPaginates() {
	alice := s.createParticipant("Alice")
	bob := s.createParticipant("Bob")
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.repo.CreateConsumption(s.ctx, &entity.DbConsumption{ParticipantID: alice.ID, DrinkName: "Sour"}))
	}
	s.Require().NoError(s.repo.CreateConsumption(s.ctx, &entity.DbConsumption{ParticipantID: bob.ID, DrinkName: "Fizz"}))

	params := &entity.ConsumptionQuery{ParticipantID: alice.ID}
	params.Page = 2
	params.PageSize = 2
	rows, meta, err := s.repo.ListConsumptions(s.ctx, params)
	s.Require().NoError(err)
	s.Len(rows, 2)
	s.Equal(int64(5), meta.Total)
	s.Equal(int64(2), meta.Page)

	all, meta, err := s.repo.ListConsumptions(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all, 6)
	s.Equal(int64(6), meta.Total)
}

func (s *RepositorySuite) TestBartenderRoster() {
	s.Require().NoError(s.repo.CreateBartender(s.ctx, &entity.DbBartender{Name: "Kai", Title: "Head Bartender", Order: 2, IsActive: true}))
	s.Require().NoError(s.repo.CreateBartender(s.ctx, &entity.DbBartender{Name: "Mei", Title: "Bartender", Order: 1, IsActive: true}))
	retired := &entity.DbBartender{Name: "Old Tom", Title: "Bartender", IsActive: false}
	s.Require().NoError(s.repo.CreateBartender(s.ctx, retired))

	active, err := s.repo.ListBartenders(s.ctx, false)
	s.Require().NoError(err)
	s.Require().Len(active, 2)
	s.Equal("Mei", active[0].Name)
	s.Equal("Kai", active[1].Name)

	s.Require().NoError(s.repo.UpdateBartender(s.ctx, retired.ID, entity.BartenderUpdates{IsActive: pointy.Bool(true), Order: pointy.Int(0)}))
	active, err = s.repo.ListBartenders(s.ctx, false)
	s.Require().NoError(err)
	s.Require().Len(active, 3)
	s.Equal("Old Tom", active[0].Name)

	s.Require().NoError(s.repo.DeleteBartender(s.ctx, retired.ID))
	all, err := s.repo.ListBartenders(s.ctx, true)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *RepositorySuite) TestSuggestionRecords() {
	event := s.createEvent("Spring Party")
	s.Require().NoError(s.repo.CreateSuggestionRecord(s.ctx, &entity.DbSuggestionRecord{Kind: "cocktail", Request: "something sour"}))
	s.Require().NoError(s.repo.CreateSuggestionRecord(s.ctx, &entity.DbSuggestionRecord{Kind: "narrative", EventID: &event.ID, Payload: datatypes.JSON(`{"title":"Recap"}`)}))

	params := &entity.SuggestionRecordQuery{Kind: "narrative"}
	records, meta, err := s.repo.ListSuggestionRecords(s.ctx, params)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(int64(1), meta.Total)
	s.JSONEq(`{"title":"Recap"}`, string(records[0].Payload))
}
