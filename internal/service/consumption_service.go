package service

import (
	"context"
	"strings"

	"homebar/internal/entity"
	"homebar/internal/entity/dto"
	"homebar/internal/model"

	"github.com/sirupsen/logrus"
)

// ConsumptionService 饮用记录服务
type ConsumptionService struct {
	repo model.Repository
}

// NewConsumptionService 创建饮用记录服务实例
func NewConsumptionService(repo model.Repository) *ConsumptionService {
	return &ConsumptionService{repo: repo}
}

// LogDrink records one drink. The recipe link is resolved once, by exact
// name, and a failed lookup only leaves the link empty. A missing participant
// or drink name, or an unknown participant, records nothing.
func (s *ConsumptionService) LogDrink(ctx context.Context, req dto.ConsumptionRequest) (*entity.DbConsumption, error) {
	drinkName := strings.TrimSpace(req.DrinkName)
	if req.ParticipantID == 0 || drinkName == "" {
		return nil, ErrNoChange
	}

	consumption := entity.DbConsumption{
		ParticipantID: req.ParticipantID,
		DrinkName:     drinkName,
	}
	if req.EventID != 0 {
		eventID := req.EventID
		consumption.EventID = &eventID
	}

	recipeID, err := s.repo.FindRecipeIDByName(ctx, drinkName)
	if err != nil {
		logrus.WithError(err).WithField("drink_name", drinkName).Warn("recipe_lookup_failed")
	} else {
		consumption.RecipeID = recipeID
	}

	if err := s.repo.CreateConsumption(ctx, &consumption); err != nil {
		return nil, noChangeIfMissing(err)
	}

	logrus.WithFields(logrus.Fields{
		"consumption_id": consumption.ID,
		"participant_id": consumption.ParticipantID,
		"event_id":       req.EventID,
		"recipe_linked":  consumption.RecipeID != nil,
	}).Info("drink_logged")
	return &consumption, nil
}
