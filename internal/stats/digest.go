package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Digest renders a plain-text recap of an event summary, used as the prompt
// material for a narrative summary.
func Digest(eventName string, date time.Time, s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s", eventName)
	if !date.IsZero() {
		fmt.Fprintf(&b, " (%s)", date.Format("2006-01-02"))
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total drinks: %d\n", s.TotalDrinks)

	if s.TotalDrinks == 0 {
		b.WriteString("Nobody logged a drink.\n")
		return b.String()
	}

	if mvp, ok := s.MVP(); ok {
		fmt.Fprintf(&b, "MVP: %s (%d drinks)\n", mvp.Name, mvp.Count)
	}

	top := make([]string, 0, len(s.TopDrinks))
	for _, drink := range s.TopDrinks {
		top = append(top, fmt.Sprintf("%s x%d", drink.Name, drink.Count))
	}
	fmt.Fprintf(&b, "Top drinks: %s\n", strings.Join(top, ", "))

	b.WriteString("By participant:\n")
	for _, tally := range s.ByParticipant {
		fmt.Fprintf(&b, "- %s: %s\n", tally.Name, strings.Join(tally.Drinks, ", "))
	}

	if len(s.IngredientUsage) > 0 {
		usage := make([]string, 0, len(s.IngredientUsage))
		for _, item := range s.IngredientUsage {
			usage = append(usage, fmt.Sprintf("%s %s %s", item.Name, strconv.FormatFloat(item.Amount, 'f', -1, 64), item.Unit))
		}
		fmt.Fprintf(&b, "Ingredients poured: %s\n", strings.Join(usage, ", "))
	}
	return b.String()
}
