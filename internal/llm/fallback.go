package llm

import "strings"

const placeholderNotice = "No language model credential is configured, so this is a canned suggestion."

func placeholderCocktail() Cocktail {
	return Cocktail{
		Name: "Gin & Tonic",
		Ingredients: []Ingredient{
			{Name: "Gin", Amount: 45, Unit: "ml"},
			{Name: "Tonic Water", Amount: 120, Unit: "ml"},
			{Name: "Lime Wedge", Amount: 1, Unit: "piece"},
		},
		Instructions: "1. Fill a highball glass with ice.\n2. Pour in the gin.\n3. Top slowly with tonic water.\n4. Stir gently, squeeze the lime wedge and drop it in.",
		Commentary:   placeholderNotice,
	}
}

func placeholderOmakase() Omakase {
	return Omakase{
		Cocktail:      placeholderCocktail(),
		ClosingRemark: "Cheers, and enjoy the evening.",
	}
}

func placeholderRecommendation(candidates []Candidate) RecommendationResult {
	name := "House Highball"
	for _, c := range candidates {
		if trimmed := strings.TrimSpace(c.Name); trimmed != "" {
			name = trimmed
			break
		}
	}
	return RecommendationResult{Recommendation: Recommendation{
		Name:          name,
		Presentation:  "Served chilled in the glass it is usually poured in.",
		TastingNotes:  "Balanced and easy drinking.",
		PairingReason: "It is first on tonight's menu.",
		ServiceTip:    placeholderNotice,
	}}
}

func placeholderNarrative(digest string) Narrative {
	return Narrative{
		Title: "Event recap",
		Text:  strings.TrimSpace(digest),
	}
}
