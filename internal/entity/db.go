package entity

// Re-export persistence and common types so callers outside the entity tree
// can keep a single import.

import (
	"homebar/internal/entity/common"
	"homebar/internal/entity/db"
)

// Type aliases for common types
type Response = common.Response
type ResponseItems = common.ResponseItems
type Meta = common.Meta
type BaseParams = common.BaseParams

// Type aliases for database models
type DbParticipant = db.Participant
type DbInventoryItem = db.InventoryItem
type DbRecipe = db.Recipe
type DbRecipeIngredient = db.RecipeIngredient
type DbEvent = db.Event
type DbEventRecipe = db.EventRecipe
type DbConsumption = db.Consumption
type DbBartender = db.Bartender
type DbSuggestionRecord = db.SuggestionRecord
