package sql

import (
	"context"
	"fmt"
	"strings"

	"homebar/internal/entity"
)

// CreateSuggestionRecord stores one gateway call.
func (r *GormRepository) CreateSuggestionRecord(ctx context.Context, record *entity.DbSuggestionRecord) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if record == nil {
		return fmt.Errorf("record is nil")
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// ListSuggestionRecords retrieves paginated gateway calls, newest first.
func (r *GormRepository) ListSuggestionRecords(ctx context.Context, params *entity.SuggestionRecordQuery) ([]entity.DbSuggestionRecord, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, errNotInitialised
	}

	query := r.db.WithContext(ctx).Model(&entity.DbSuggestionRecord{})
	var base *entity.BaseParams
	if params != nil {
		if kind := strings.TrimSpace(params.Kind); kind != "" {
			query = query.Where("kind = ?", kind)
		}
		if params.EventID > 0 {
			query = query.Where("event_id = ?", params.EventID)
		}
		base = &params.BaseParams
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, nil, err
	}

	paged, page, pageSize := paginate(query, base)

	var records []entity.DbSuggestionRecord
	if err := paged.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, nil, err
	}
	return records, r.calculatePagination(totalCount, page, pageSize), nil
}
