package sql

import (
	"context"
	"fmt"

	"homebar/internal/entity"

	"gorm.io/gorm"
)

// CreateParticipant inserts a new participant.
func (r *GormRepository) CreateParticipant(ctx context.Context, participant *entity.DbParticipant) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if participant == nil {
		return fmt.Errorf("participant is nil")
	}
	return r.db.WithContext(ctx).Create(participant).Error
}

// UpdateParticipant renames a participant.
func (r *GormRepository) UpdateParticipant(ctx context.Context, id uint, updates entity.ParticipantUpdates) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid participant id")
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbParticipant{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetParticipant loads a participant by ID.
func (r *GormRepository) GetParticipant(ctx context.Context, id uint) (*entity.DbParticipant, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var participant entity.DbParticipant
	if err := r.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// ListParticipants returns every participant in creation order.
func (r *GormRepository) ListParticipants(ctx context.Context) ([]entity.DbParticipant, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var participants []entity.DbParticipant
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// DeleteParticipant removes a participant together with their consumption log.
func (r *GormRepository) DeleteParticipant(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid participant id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("participant_id = ?", id).Delete(&entity.DbConsumption{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.DbParticipant{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
