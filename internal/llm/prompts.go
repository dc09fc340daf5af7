package llm

import (
	"fmt"
	"strings"
)

const systemPersona = "You are a professional home bartender. You answer with a single JSON object and nothing else."

const cocktailShape = `{"name": string, "ingredients": [{"name": string, "amount": number, "unit": string}], "instructions": string, "commentary": string}`

func inventoryText(inventory []string) string {
	if len(inventory) == 0 {
		return "(nothing in stock)"
	}
	return strings.Join(inventory, ", ")
}

func cocktailPrompt(inventory []string, request string) string {
	request = strings.TrimSpace(request)
	if request == "" {
		request = "surprise me"
	}
	return fmt.Sprintf(`My home bar currently stocks: %s.
The guest asks for: %s.
Suggest one cocktail that can be made from the stock. If a classic is out of reach, propose a creative alternative.
Amounts are numbers; put the unit (ml, dash, piece...) in "unit".
Reply with JSON in exactly this shape: %s`, inventoryText(inventory), request, cocktailShape)
}

func omakasePrompt(inventory []string, mood, weather string) string {
	return fmt.Sprintf(`My home bar currently stocks: %s.
The guest feels: %s. The weather today: %s.
Pick one cocktail for this moment, bartender's choice, and close with a short remark to the guest.
Amounts are numbers; put the unit in "unit".
Reply with JSON in exactly this shape: {"name": string, "ingredients": [{"name": string, "amount": number, "unit": string}], "instructions": string, "commentary": string, "closing_remark": string}`,
		inventoryText(inventory), orUnknown(mood), orUnknown(weather))
}

func recommendationPrompt(candidates []Candidate, request string) string {
	var menu strings.Builder
	for _, c := range candidates {
		menu.WriteString("- ")
		menu.WriteString(c.Name)
		if ingredients := strings.TrimSpace(strings.ReplaceAll(c.Ingredients, "\n", ", ")); ingredients != "" {
			menu.WriteString(": ")
			menu.WriteString(ingredients)
		}
		menu.WriteString("\n")
	}
	request = strings.TrimSpace(request)
	if request == "" {
		request = "whatever suits them best"
	}
	return fmt.Sprintf(`Tonight's menu:
%sThe guest asks for: %s.
Recommend exactly one drink from the menu, like a sommelier would.
Reply with JSON in exactly this shape: {"recommendation": {"name": string, "presentation": string, "tasting_notes": string, "pairing_reason": string, "service_tip": string}}`,
		menu.String(), request)
}

func narrativePrompt(digest string) string {
	return fmt.Sprintf(`Here are the statistics of a home bar gathering:
%s
Write a short, warm recap of the evening for the guests. Mention the most active drinker and the favourite drinks.
Reply with JSON in exactly this shape: {"title": string, "text": string}`, strings.TrimSpace(digest))
}

func orUnknown(value string) string {
	if value = strings.TrimSpace(value); value == "" {
		return "not specified"
	}
	return value
}
