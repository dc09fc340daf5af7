package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"homebar/internal/entity"
	"homebar/internal/llm"
	"homebar/internal/metrics"
	"homebar/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// SuggestionService 调酒建议服务，组装库存与酒单上下文、调用网关并记录历史
type SuggestionService struct {
	repo    model.Repository
	gateway *llm.Gateway
	stats   *StatsService
	metrics *metrics.Metrics
}

// NewSuggestionService 创建建议服务实例，metrics 可为 nil
func NewSuggestionService(repo model.Repository, gateway *llm.Gateway, statsSvc *StatsService, m *metrics.Metrics) *SuggestionService {
	if statsSvc == nil {
		statsSvc = NewStatsService(repo)
	}
	return &SuggestionService{
		repo:    repo,
		gateway: gateway,
		stats:   statsSvc,
		metrics: m,
	}
}

// Suggest answers a free-text request against the current inventory.
func (s *SuggestionService) Suggest(ctx context.Context, request string) (llm.Response, error) {
	inventory, err := s.inventoryLines(ctx)
	if err != nil {
		return llm.Response{}, err
	}
	resp := s.gateway.Suggest(ctx, inventory, request)
	s.record(ctx, resp, nil)
	return resp, nil
}

// Omakase picks a drink for the mood and weather.
func (s *SuggestionService) Omakase(ctx context.Context, mood, weather string) (llm.Response, error) {
	inventory, err := s.inventoryLines(ctx)
	if err != nil {
		return llm.Response{}, err
	}
	resp := s.gateway.Omakase(ctx, inventory, mood, weather)
	s.record(ctx, resp, nil)
	return resp, nil
}

// Recommend picks one drink from an event's menu, or from the whole recipe
// book when the menu is empty. A missing event is reported as not found.
func (s *SuggestionService) Recommend(ctx context.Context, eventID uint, request string) (llm.Response, error) {
	event, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return llm.Response{}, err
	}

	recipes := event.Recipes
	if len(recipes) == 0 {
		recipes, err = s.repo.ListRecipes(ctx)
		if err != nil {
			return llm.Response{}, err
		}
	}

	candidates := make([]llm.Candidate, 0, len(recipes))
	for _, recipe := range recipes {
		candidates = append(candidates, llm.Candidate{Name: recipe.Name, Ingredients: recipe.Ingredients})
	}

	resp := s.gateway.Recommend(ctx, candidates, request)
	s.record(ctx, resp, &event.ID)
	return resp, nil
}

// Summarize writes a narrative recap of an event from its statistics digest.
func (s *SuggestionService) Summarize(ctx context.Context, eventID uint) (llm.Response, *EventStats, error) {
	eventStats, err := s.stats.EventStats(ctx, eventID)
	if err != nil {
		return llm.Response{}, nil, err
	}
	resp := s.gateway.Narrate(ctx, eventStats.Digest())
	s.record(ctx, resp, &eventStats.Event.ID)
	return resp, eventStats, nil
}

// inventoryLines formats the inventory as "name (category)" lines.
func (s *SuggestionService) inventoryLines(ctx context.Context) ([]string, error) {
	items, err := s.repo.ListInventoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", name, item.Category))
	}
	return lines, nil
}

// record stores the call in the suggestion history and updates metrics. A
// failed write is logged and never fails the request.
func (s *SuggestionService) record(ctx context.Context, resp llm.Response, eventID *uint) {
	s.metrics.RecordSuggestion(string(resp.Kind), resp.Outcome(), resp.Duration)

	row := entity.DbSuggestionRecord{
		Kind:         string(resp.Kind),
		Provider:     resp.Provider,
		Model:        resp.Model,
		Request:      resp.Prompt,
		Reply:        resp.Raw,
		Fallback:     resp.Fallback,
		EventID:      eventID,
		ErrorMessage: resp.Error,
		DurationMs:   resp.Duration.Milliseconds(),
	}
	if resp.Payload != nil {
		if raw, err := json.Marshal(resp.Payload); err == nil {
			row.Payload = datatypes.JSON(raw)
		}
	}

	if err := s.repo.CreateSuggestionRecord(ctx, &row); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"kind":    resp.Kind,
			"outcome": resp.Outcome(),
		}).Warn("suggestion_record_failed")
	}
}
