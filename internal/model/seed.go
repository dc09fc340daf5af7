package model

import (
	"context"
	"fmt"
	"os"
	"strings"

	"homebar/internal/entity"
	"homebar/internal/entity/db"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// SeedData is the layout of a seed YAML file.
type SeedData struct {
	Participants []string        `yaml:"participants"`
	Inventory    []inventorySeed `yaml:"inventory"`
	Recipes      []recipeSeed    `yaml:"recipes"`
	Bartenders   []bartenderSeed `yaml:"bartenders"`
}

type inventorySeed struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Quantity string `yaml:"quantity"`
}

type recipeSeed struct {
	Name         string           `yaml:"name"`
	Type         string           `yaml:"type"`
	Instructions string           `yaml:"instructions"`
	Ingredients  []ingredientSeed `yaml:"ingredients"`
}

type ingredientSeed struct {
	Name   string  `yaml:"name"`
	Amount float64 `yaml:"amount"`
	Unit   string  `yaml:"unit"`
}

type bartenderSeed struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Order    int    `yaml:"order"`
	Inactive bool   `yaml:"inactive"`
}

// SeedResult counts the rows a seed run created.
type SeedResult struct {
	Participants int
	Inventory    int
	Recipes      int
	Bartenders   int
}

// LoadSeedFile parses a seed YAML file.
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed parses seed YAML content.
func ParseSeed(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// ApplySeed creates every seeded row whose name does not exist yet, so
// running it twice is harmless.
func ApplySeed(ctx context.Context, repo Repository, data *SeedData) (SeedResult, error) {
	var result SeedResult
	if repo == nil || data == nil {
		return result, nil
	}

	participants, err := repo.ListParticipants(ctx)
	if err != nil {
		return result, err
	}
	known := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		known[p.Name] = struct{}{}
	}
	for _, name := range data.Participants {
		name = strings.TrimSpace(name)
		if _, ok := known[name]; ok || name == "" {
			continue
		}
		if err := repo.CreateParticipant(ctx, &entity.DbParticipant{Name: name}); err != nil {
			return result, fmt.Errorf("seed participant %q: %w", name, err)
		}
		known[name] = struct{}{}
		result.Participants++
	}

	items, err := repo.ListInventoryItems(ctx)
	if err != nil {
		return result, err
	}
	known = make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.Name] = struct{}{}
	}
	for _, seed := range data.Inventory {
		name := strings.TrimSpace(seed.Name)
		if _, ok := known[name]; ok || name == "" {
			continue
		}
		item := entity.DbInventoryItem{Name: name, Category: seed.Category, Quantity: seed.Quantity}
		if err := repo.CreateInventoryItem(ctx, &item); err != nil {
			return result, fmt.Errorf("seed inventory %q: %w", name, err)
		}
		known[name] = struct{}{}
		result.Inventory++
	}

	for _, seed := range data.Recipes {
		name := strings.TrimSpace(seed.Name)
		if name == "" {
			continue
		}
		existing, err := repo.FindRecipeIDByName(ctx, name)
		if err != nil {
			return result, err
		}
		if existing != nil {
			continue
		}
		recipe := recipeFromSeed(seed)
		if err := repo.CreateRecipe(ctx, &recipe, 0); err != nil {
			return result, fmt.Errorf("seed recipe %q: %w", name, err)
		}
		result.Recipes++
	}

	bartenders, err := repo.ListBartenders(ctx, true)
	if err != nil {
		return result, err
	}
	known = make(map[string]struct{}, len(bartenders))
	for _, b := range bartenders {
		known[b.Name] = struct{}{}
	}
	for _, seed := range data.Bartenders {
		name := strings.TrimSpace(seed.Name)
		if _, ok := known[name]; ok || name == "" {
			continue
		}
		title := strings.TrimSpace(seed.Title)
		if title == "" {
			title = db.DefaultBartenderTitle
		}
		bartender := entity.DbBartender{Name: name, Title: title, Order: seed.Order, IsActive: !seed.Inactive}
		if err := repo.CreateBartender(ctx, &bartender); err != nil {
			return result, fmt.Errorf("seed bartender %q: %w", name, err)
		}
		known[name] = struct{}{}
		result.Bartenders++
	}

	logrus.WithFields(logrus.Fields{
		"participants": result.Participants,
		"inventory":    result.Inventory,
		"recipes":      result.Recipes,
		"bartenders":   result.Bartenders,
	}).Info("seed_applied")
	return result, nil
}

func recipeFromSeed(seed recipeSeed) entity.DbRecipe {
	items := make([]entity.DbRecipeIngredient, 0, len(seed.Ingredients))
	for _, ing := range seed.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		unit := strings.TrimSpace(ing.Unit)
		if unit == "" {
			unit = db.DefaultIngredientUnit
		}
		items = append(items, entity.DbRecipeIngredient{
			Position: len(items),
			Name:     name,
			Amount:   ing.Amount,
			Unit:     unit,
		})
	}

	return entity.DbRecipe{
		Name:         strings.TrimSpace(seed.Name),
		Ingredients:  entity.FormatIngredientText(items),
		Instructions: seed.Instructions,
		RecipeType:   entity.NormalizeRecipeType(seed.Type),
		Items:        items,
	}
}
