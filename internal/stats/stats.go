// Package stats aggregates an event's consumption log into per-event
// summaries. Everything here is pure computation over a snapshot.
package stats

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Drink is one consumption row as seen by the aggregator.
type Drink struct {
	Participant string
	Name        string
	RecipeID    *uint
}

// Ingredient is one structured ingredient line of a recipe.
type Ingredient struct {
	Name   string
	Amount float64
	Unit   string
}

// ParticipantTally counts the drinks of one participant name.
type ParticipantTally struct {
	Name   string   `json:"-"`
	Count  int      `json:"count"`
	Drinks []string `json:"drinks"`
}

// Tallies keeps participants in first-seen order.
type Tallies []ParticipantTally

// MarshalJSON renders the tallies as an object keyed by participant name,
// preserving first-seen order.
func (t Tallies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tally := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(tally.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(tally)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DrinkCount is one entry of the popularity ranking.
type DrinkCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// IngredientUsage is the accumulated amount of one ingredient in one unit.
type IngredientUsage struct {
	Name   string  `json:"name"`
	Unit   string  `json:"unit"`
	Amount float64 `json:"amount"`
}

// Summary is the per-event aggregate.
type Summary struct {
	TotalDrinks     int               `json:"total_drinks"`
	ByParticipant   Tallies           `json:"by_participant"`
	DrinkCounts     map[string]int    `json:"drink_counts"`
	TopDrinks       []DrinkCount      `json:"top_drinks"`
	IngredientUsage []IngredientUsage `json:"ingredient_usage"`
}

type usageKey struct {
	name string
	unit string
}

// Compute aggregates drinks, which must be in insertion order. recipes maps a
// recipe id to its structured ingredients; drinks without a resolved recipe
// only count toward the drink statistics.
func Compute(drinks []Drink, recipes map[uint][]Ingredient) Summary {
	summary := Summary{
		TotalDrinks:     len(drinks),
		ByParticipant:   Tallies{},
		DrinkCounts:     map[string]int{},
		TopDrinks:       []DrinkCount{},
		IngredientUsage: []IngredientUsage{},
	}

	participantIndex := make(map[string]int)
	drinkIndex := make(map[string]int)
	usageIndex := make(map[usageKey]int)

	for _, drink := range drinks {
		idx, ok := participantIndex[drink.Participant]
		if !ok {
			idx = len(summary.ByParticipant)
			participantIndex[drink.Participant] = idx
			summary.ByParticipant = append(summary.ByParticipant, ParticipantTally{Name: drink.Participant, Drinks: []string{}})
		}
		summary.ByParticipant[idx].Count++
		summary.ByParticipant[idx].Drinks = append(summary.ByParticipant[idx].Drinks, drink.Name)

		summary.DrinkCounts[drink.Name]++
		if pos, seen := drinkIndex[drink.Name]; seen {
			summary.TopDrinks[pos].Count++
		} else {
			drinkIndex[drink.Name] = len(summary.TopDrinks)
			summary.TopDrinks = append(summary.TopDrinks, DrinkCount{Name: drink.Name, Count: 1})
		}

		if drink.RecipeID == nil {
			continue
		}
		for _, ingredient := range recipes[*drink.RecipeID] {
			if ingredient.Amount == 0 {
				continue
			}
			key := usageKey{name: ingredient.Name, unit: ingredient.Unit}
			if pos, seen := usageIndex[key]; seen {
				summary.IngredientUsage[pos].Amount += ingredient.Amount
				continue
			}
			usageIndex[key] = len(summary.IngredientUsage)
			summary.IngredientUsage = append(summary.IngredientUsage, IngredientUsage{
				Name:   ingredient.Name,
				Unit:   ingredient.Unit,
				Amount: ingredient.Amount,
			})
		}
	}

	slices.SortStableFunc(summary.TopDrinks, func(a, b DrinkCount) int {
		return b.Count - a.Count
	})
	slices.SortStableFunc(summary.IngredientUsage, func(a, b IngredientUsage) int {
		switch {
		case a.Amount > b.Amount:
			return -1
		case a.Amount < b.Amount:
			return 1
		default:
			return 0
		}
	})

	return summary
}

// participant looks up the tally for a display name.
func (s Summary) participant(name string) (ParticipantTally, bool) {
	for _, tally := range s.ByParticipant {
		if tally.Name == name {
			return tally, true
		}
	}
	return ParticipantTally{}, false
}

// MVP returns the participant with the most drinks. The first name seen wins
// a tie.
func (s Summary) MVP() (ParticipantTally, bool) {
	var best ParticipantTally
	found := false
	for _, tally := range s.ByParticipant {
		if !found || tally.Count > best.Count {
			best = tally
			found = true
		}
	}
	return best, found
}
