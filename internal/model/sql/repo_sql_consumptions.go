package sql

import (
	"context"
	"fmt"
	"time"

	"homebar/internal/entity"

	"gorm.io/gorm"
)

// CreateConsumption logs a drink. The participant must exist; event and
// recipe links are stored as given.
func (r *GormRepository) CreateConsumption(ctx context.Context, consumption *entity.DbConsumption) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if consumption == nil {
		return fmt.Errorf("consumption is nil")
	}
	if consumption.Timestamp.IsZero() {
		consumption.Timestamp = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var participant entity.DbParticipant
		if err := tx.First(&participant, consumption.ParticipantID).Error; err != nil {
			return err
		}
		if err := tx.Omit("Participant", "Event", "Recipe").Create(consumption).Error; err != nil {
			return err
		}
		consumption.Participant = &participant
		return nil
	})
}

// ListEventConsumptions returns an event's consumptions in insertion order.
func (r *GormRepository) ListEventConsumptions(ctx context.Context, eventID uint) ([]entity.DbConsumption, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var consumptions []entity.DbConsumption
	if err := r.db.WithContext(ctx).
		Preload("Participant").
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&consumptions).Error; err != nil {
		return nil, err
	}
	return consumptions, nil
}

// ListConsumptions returns a paginated slice of the consumption log, newest
// first.
func (r *GormRepository) ListConsumptions(ctx context.Context, params *entity.ConsumptionQuery) ([]entity.DbConsumption, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, errNotInitialised
	}

	query := r.db.WithContext(ctx).Model(&entity.DbConsumption{})
	var base *entity.BaseParams
	if params != nil {
		if params.EventID > 0 {
			query = query.Where("event_id = ?", params.EventID)
		}
		if params.ParticipantID > 0 {
			query = query.Where("participant_id = ?", params.ParticipantID)
		}
		base = &params.BaseParams
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, nil, err
	}

	paged, page, pageSize := paginate(query, base)

	var consumptions []entity.DbConsumption
	if err := paged.Preload("Participant").Order("timestamp DESC, id DESC").Find(&consumptions).Error; err != nil {
		return nil, nil, err
	}
	return consumptions, r.calculatePagination(totalCount, page, pageSize), nil
}

// DeleteConsumption removes a logged drink by ID.
func (r *GormRepository) DeleteConsumption(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid consumption id")
	}

	result := r.db.WithContext(ctx).Delete(&entity.DbConsumption{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
