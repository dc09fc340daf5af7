package sql

import (
	"fmt"

	"homebar/internal/entity"

	"gorm.io/gorm"
)

var errNotInitialised = fmt.Errorf("repository not initialised")

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// DB exposes the underlying handle for maintenance commands.
func (r *GormRepository) DB() *gorm.DB {
	if r == nil {
		return nil
	}
	return r.db
}

// calculatePagination calculates pagination metrics
func (r *GormRepository) calculatePagination(totalCount int64, page, pageSize int) *entity.Meta {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}

	return &entity.Meta{
		Total:    totalCount,
		Page:     int64(page),
		PageSize: int64(pageSize),
	}
}

// paginate applies offset/limit for the given params and returns the
// effective page and page size.
func paginate(query *gorm.DB, params *entity.BaseParams) (*gorm.DB, int, int) {
	page := 1
	pageSize := 20
	if params != nil {
		params.Normalize()
		page = int(params.Page)
		pageSize = int(params.PageSize)
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Offset(offset).Limit(pageSize), page, pageSize
}
