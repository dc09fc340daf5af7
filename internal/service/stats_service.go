package service

import (
	"context"
	"time"

	"homebar/internal/entity"
	"homebar/internal/model"
	"homebar/internal/stats"
)

// EventStats is an event together with its computed summary.
type EventStats struct {
	Event   *entity.DbEvent
	Summary stats.Summary
}

// Digest renders the plain-text recap of the summary.
func (e EventStats) Digest() string {
	return stats.Digest(e.Event.Name, time.Time(e.Event.Date), e.Summary)
}

// StatsService 聚会统计服务，每次请求都从饮用记录重新计算
type StatsService struct {
	repo model.Repository
}

// NewStatsService 创建统计服务实例
func NewStatsService(repo model.Repository) *StatsService {
	return &StatsService{repo: repo}
}

// EventStats loads an event's consumptions and aggregates them. A missing
// event is reported as not found.
func (s *StatsService) EventStats(ctx context.Context, eventID uint) (*EventStats, error) {
	event, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	consumptions, err := s.repo.ListEventConsumptions(ctx, eventID)
	if err != nil {
		return nil, err
	}

	drinks := make([]stats.Drink, 0, len(consumptions))
	recipeIDs := make([]uint, 0)
	seen := make(map[uint]struct{})
	for _, c := range consumptions {
		drink := stats.Drink{Name: c.DrinkName, RecipeID: c.RecipeID}
		if c.Participant != nil {
			drink.Participant = c.Participant.Name
		}
		drinks = append(drinks, drink)

		if c.RecipeID != nil {
			if _, ok := seen[*c.RecipeID]; !ok {
				seen[*c.RecipeID] = struct{}{}
				recipeIDs = append(recipeIDs, *c.RecipeID)
			}
		}
	}

	recipes := make(map[uint][]stats.Ingredient, len(recipeIDs))
	if len(recipeIDs) > 0 {
		rows, err := s.repo.FindRecipesByIDs(ctx, recipeIDs)
		if err != nil {
			return nil, err
		}
		for _, recipe := range rows {
			ingredients := make([]stats.Ingredient, 0, len(recipe.Items))
			for _, item := range recipe.Items {
				ingredients = append(ingredients, stats.Ingredient{Name: item.Name, Amount: item.Amount, Unit: item.Unit})
			}
			recipes[recipe.ID] = ingredients
		}
	}

	return &EventStats{Event: event, Summary: stats.Compute(drinks, recipes)}, nil
}
