package llm

import (
	"bytes"
	"encoding/json"
	"strings"

	"homebar/internal/entity"
	"homebar/internal/entity/db"
)

// stripCodeFence removes a surrounding markdown code fence such as ```json.
func stripCodeFence(reply string) string {
	text := strings.TrimSpace(reply)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// lenientAmount accepts a number or a numeric string. Anything else decodes
// to 0.
type lenientAmount float64

func (a *lenientAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = lenientAmount(entity.ParseAmount(s))
		return nil
	}
	*a = lenientAmount(entity.ParseAmount(string(data)))
	return nil
}

type wireIngredient struct {
	Name   string        `json:"name"`
	Amount lenientAmount `json:"amount"`
	Unit   string        `json:"unit"`
}

type wireCocktail struct {
	Name          string           `json:"name"`
	Ingredients   []wireIngredient `json:"ingredients"`
	Instructions  string           `json:"instructions"`
	Commentary    string           `json:"commentary"`
	ClosingRemark string           `json:"closing_remark"`
}

func (w wireCocktail) cocktail() Cocktail {
	ingredients := make([]Ingredient, 0, len(w.Ingredients))
	for _, ing := range w.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		unit := strings.TrimSpace(ing.Unit)
		if unit == "" {
			unit = db.DefaultIngredientUnit
		}
		ingredients = append(ingredients, Ingredient{Name: name, Amount: float64(ing.Amount), Unit: unit})
	}
	return Cocktail{
		Name:         strings.TrimSpace(w.Name),
		Ingredients:  ingredients,
		Instructions: w.Instructions,
		Commentary:   w.Commentary,
	}
}

func decodeCocktail(reply string) (wireCocktail, bool) {
	var wire wireCocktail
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &wire); err != nil {
		return wireCocktail{}, false
	}
	if strings.TrimSpace(wire.Name) == "" {
		return wireCocktail{}, false
	}
	return wire, true
}

func degradedCocktail(reply string) Cocktail {
	return Cocktail{
		Name:         ParseFailureName,
		Ingredients:  []Ingredient{},
		Instructions: reply,
	}
}

// parseCocktail decodes a cocktail reply. ok is false when the reply was not
// usable; the returned payload then carries the raw reply.
func parseCocktail(reply string) (Payload, bool) {
	wire, ok := decodeCocktail(reply)
	if !ok {
		return degradedCocktail(reply), false
	}
	return wire.cocktail(), true
}

func parseOmakase(reply string) (Payload, bool) {
	wire, ok := decodeCocktail(reply)
	if !ok {
		return Omakase{Cocktail: degradedCocktail(reply)}, false
	}
	return Omakase{Cocktail: wire.cocktail(), ClosingRemark: wire.ClosingRemark}, true
}

func parseRecommendation(reply string) (Payload, bool) {
	text := stripCodeFence(reply)

	var wrapped RecommendationResult
	if err := json.Unmarshal([]byte(text), &wrapped); err == nil && strings.TrimSpace(wrapped.Recommendation.Name) != "" {
		wrapped.Recommendation.Name = strings.TrimSpace(wrapped.Recommendation.Name)
		return wrapped, true
	}

	// Some models drop the wrapper object.
	var flat Recommendation
	if err := json.Unmarshal([]byte(text), &flat); err == nil && strings.TrimSpace(flat.Name) != "" {
		flat.Name = strings.TrimSpace(flat.Name)
		return RecommendationResult{Recommendation: flat}, true
	}

	return RecommendationResult{Recommendation: Recommendation{
		Name:         ParseFailureName,
		Presentation: reply,
	}}, false
}

func parseNarrative(reply string) (Payload, bool) {
	var narrative Narrative
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &narrative); err != nil || strings.TrimSpace(narrative.Text) == "" {
		return Narrative{Title: ParseFailureName, Text: reply}, false
	}
	narrative.Title = strings.TrimSpace(narrative.Title)
	return narrative, true
}
