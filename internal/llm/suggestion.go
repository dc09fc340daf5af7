package llm

import "time"

// Kind discriminates the suggestion payload variants.
type Kind string

const (
	KindCocktail       Kind = "cocktail"
	KindOmakase        Kind = "omakase"
	KindRecommendation Kind = "recommendation"
	KindNarrative      Kind = "narrative"
)

// ParseFailureName replaces the drink or title name when the model reply
// could not be decoded.
const ParseFailureName = "Parse Error"

// Outcome labels for how a suggestion was produced.
const (
	OutcomeLive           = "live"
	OutcomeFallback       = "fallback"
	OutcomeParseError     = "parse_error"
	OutcomeTransportError = "transport_error"
)

// Payload is one of Cocktail, Omakase, RecommendationResult or Narrative.
type Payload interface {
	Kind() Kind
}

type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Cocktail is the free-text request result.
type Cocktail struct {
	Name         string       `json:"name"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
	Commentary   string       `json:"commentary"`
}

func (Cocktail) Kind() Kind { return KindCocktail }

// Omakase is the mood and weather result.
type Omakase struct {
	Cocktail
	ClosingRemark string `json:"closing_remark"`
}

func (Omakase) Kind() Kind { return KindOmakase }

type Recommendation struct {
	Name          string `json:"name"`
	Presentation  string `json:"presentation"`
	TastingNotes  string `json:"tasting_notes"`
	PairingReason string `json:"pairing_reason"`
	ServiceTip    string `json:"service_tip"`
}

// RecommendationResult wraps a pick from an event menu.
type RecommendationResult struct {
	Recommendation Recommendation `json:"recommendation"`
}

func (RecommendationResult) Kind() Kind { return KindRecommendation }

// Narrative is a short recap written from an event digest.
type Narrative struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (Narrative) Kind() Kind { return KindNarrative }

// Candidate is a menu recipe offered to the recommendation mode.
type Candidate struct {
	Name        string
	Ingredients string
}

// Response is what every gateway call returns. Transport failures leave
// Payload nil and set Error.
type Response struct {
	Kind     Kind    `json:"kind"`
	Payload  Payload `json:"payload,omitempty"`
	Fallback bool    `json:"fallback"`
	Degraded bool    `json:"degraded,omitempty"`
	Error    string  `json:"error,omitempty"`

	Prompt   string        `json:"-"`
	Raw      string        `json:"-"`
	Provider string        `json:"-"`
	Model    string        `json:"-"`
	Duration time.Duration `json:"-"`
}

// Outcome reports how the response was produced.
func (r Response) Outcome() string {
	switch {
	case r.Error != "":
		return OutcomeTransportError
	case r.Fallback:
		return OutcomeFallback
	case r.Degraded:
		return OutcomeParseError
	default:
		return OutcomeLive
	}
}
