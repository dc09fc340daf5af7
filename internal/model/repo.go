package model

import (
	"context"

	"homebar/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 参与者
	CreateParticipant(ctx context.Context, participant *entity.DbParticipant) error
	UpdateParticipant(ctx context.Context, id uint, updates entity.ParticipantUpdates) error
	GetParticipant(ctx context.Context, id uint) (*entity.DbParticipant, error)
	ListParticipants(ctx context.Context) ([]entity.DbParticipant, error)
	DeleteParticipant(ctx context.Context, id uint) error

	// 库存
	CreateInventoryItem(ctx context.Context, item *entity.DbInventoryItem) error
	UpdateInventoryItem(ctx context.Context, id uint, updates entity.InventoryUpdates) error
	GetInventoryItem(ctx context.Context, id uint) (*entity.DbInventoryItem, error)
	ListInventoryItems(ctx context.Context) ([]entity.DbInventoryItem, error)
	DeleteInventoryItem(ctx context.Context, id uint) error

	// 配方
	CreateRecipe(ctx context.Context, recipe *entity.DbRecipe, eventID uint) error
	UpdateRecipe(ctx context.Context, id uint, updates entity.RecipeUpdates) error
	ReplaceRecipe(ctx context.Context, id uint, updates entity.RecipeUpdates, items []entity.DbRecipeIngredient) error
	GetRecipe(ctx context.Context, id uint) (*entity.DbRecipe, error)
	ListRecipes(ctx context.Context) ([]entity.DbRecipe, error)
	FindRecipesByIDs(ctx context.Context, ids []uint) ([]entity.DbRecipe, error)
	FindRecipeIDByName(ctx context.Context, name string) (*uint, error)
	SetRecipePhoto(ctx context.Context, id uint, photoPath string) error
	DeleteRecipe(ctx context.Context, id uint) error

	// 聚会
	CreateEvent(ctx context.Context, event *entity.DbEvent) error
	UpdateEvent(ctx context.Context, id uint, updates entity.EventUpdates) error
	GetEvent(ctx context.Context, id uint) (*entity.DbEvent, error)
	ListEvents(ctx context.Context) ([]entity.DbEvent, error)
	DeleteEvent(ctx context.Context, id uint) error
	AddRecipeToEvent(ctx context.Context, eventID, recipeID uint) error
	RemoveRecipeFromEvent(ctx context.Context, eventID, recipeID uint) error

	// 饮用记录
	CreateConsumption(ctx context.Context, consumption *entity.DbConsumption) error
	ListEventConsumptions(ctx context.Context, eventID uint) ([]entity.DbConsumption, error)
	ListConsumptions(ctx context.Context, params *entity.ConsumptionQuery) ([]entity.DbConsumption, *entity.Meta, error)
	DeleteConsumption(ctx context.Context, id uint) error

	// 调酒师
	CreateBartender(ctx context.Context, bartender *entity.DbBartender) error
	UpdateBartender(ctx context.Context, id uint, updates entity.BartenderUpdates) error
	ListBartenders(ctx context.Context, includeInactive bool) ([]entity.DbBartender, error)
	DeleteBartender(ctx context.Context, id uint) error

	// 建议记录
	CreateSuggestionRecord(ctx context.Context, record *entity.DbSuggestionRecord) error
	ListSuggestionRecords(ctx context.Context, params *entity.SuggestionRecordQuery) ([]entity.DbSuggestionRecord, *entity.Meta, error)
}
