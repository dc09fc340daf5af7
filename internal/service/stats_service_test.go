package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"homebar/internal/entity"
	"homebar/internal/entity/dto"
	"homebar/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type barFixture struct {
	event      entity.DbEvent
	alice, bob entity.DbParticipant
}

// seedSpringParty logs Alice/Mojito twice and Bob/Gin Tonic once. Mojito is a
// structured recipe, Gin Tonic a free-text drink.
func seedSpringParty(t *testing.T, ctx context.Context, svc *ConsumptionService, recipes *RecipeService) barFixture {
	t.Helper()
	repo := svc.repo

	fx := barFixture{
		event: entity.DbEvent{Name: "Spring Party", Date: datatypes.Date(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC))},
		alice: entity.DbParticipant{Name: "Alice"},
		bob:   entity.DbParticipant{Name: "Bob"},
	}
	require.NoError(t, repo.CreateEvent(ctx, &fx.event))
	require.NoError(t, repo.CreateParticipant(ctx, &fx.alice))
	require.NoError(t, repo.CreateParticipant(ctx, &fx.bob))

	_, err := recipes.Save(ctx, dto.RecipeSaveRequest{
		Name: "Mojito",
		Items: []dto.IngredientInput{
			{Name: "White Rum", Amount: "50", Unit: "ml"},
			{Name: "Mint", Amount: "", Unit: "leaves"},
			{Name: "Lime Juice", Amount: "25", Unit: "ml"},
		},
	})
	require.NoError(t, err)

	for _, row := range []struct {
		who   uint
		drink string
	}{
		{fx.alice.ID, "Mojito"},
		{fx.alice.ID, "Mojito"},
		{fx.bob.ID, "Gin Tonic"},
	} {
		_, err := svc.LogDrink(ctx, dto.ConsumptionRequest{ParticipantID: row.who, DrinkName: row.drink, EventID: fx.event.ID})
		require.NoError(t, err)
	}
	return fx
}

func TestEventStatsSpringParty(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	fx := seedSpringParty(t, ctx, NewConsumptionService(repo), NewRecipeService(repo, nil))

	result, err := NewStatsService(repo).EventStats(ctx, fx.event.ID)
	require.NoError(t, err)

	s := result.Summary
	assert.Equal(t, 3, s.TotalDrinks)
	assert.Equal(t, []stats.DrinkCount{{Name: "Mojito", Count: 2}, {Name: "Gin Tonic", Count: 1}}, s.TopDrinks)
	assert.Equal(t, []stats.IngredientUsage{
		{Name: "White Rum", Unit: "ml", Amount: 100},
		{Name: "Lime Juice", Unit: "ml", Amount: 50},
	}, s.IngredientUsage)

	raw, err := json.Marshal(s.ByParticipant)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Alice":{"count":2,"drinks":["Mojito","Mojito"]},"Bob":{"count":1,"drinks":["Gin Tonic"]}}`, string(raw))

	digest := result.Digest()
	assert.Contains(t, digest, "Event: Spring Party (2024-04-20)")
	assert.Contains(t, digest, "MVP: Alice")
}

func TestEventStatsEmptyAndMissing(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	svc := NewStatsService(repo)

	event := entity.DbEvent{Name: "Quiet Night"}
	require.NoError(t, repo.CreateEvent(ctx, &event))

	result, err := svc.EventStats(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.TotalDrinks)
	assert.Empty(t, result.Summary.TopDrinks)
	assert.Empty(t, result.Summary.IngredientUsage)

	_, err = svc.EventStats(ctx, event.ID+100)
	assert.True(t, IsNotFound(err))
}

func TestEventStatsIgnoresOtherEvents(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	logs := NewConsumptionService(repo)
	fx := seedSpringParty(t, ctx, logs, NewRecipeService(repo, nil))

	other := entity.DbEvent{Name: "Other"}
	require.NoError(t, repo.CreateEvent(ctx, &other))
	_, err := logs.LogDrink(ctx, dto.ConsumptionRequest{ParticipantID: fx.bob.ID, DrinkName: "Mojito", EventID: other.ID})
	require.NoError(t, err)

	result, err := NewStatsService(repo).EventStats(ctx, fx.event.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.TotalDrinks)

	result, err = NewStatsService(repo).EventStats(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.TotalDrinks)
	assert.Equal(t, []stats.IngredientUsage{
		{Name: "White Rum", Unit: "ml", Amount: 50},
		{Name: "Lime Juice", Unit: "ml", Amount: 25},
	}, result.Summary.IngredientUsage)
}
