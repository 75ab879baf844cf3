package prompt

import (
	"voice-ai-agent/internal/model"
	"voice-ai-agent/pkg/gemini"
)

// Build assembles the generation contents from session history plus the new
// user turn, under a character budget. History is walked most-recent-first:
// each message is clipped to the budget, accounted as clipped length plus a
// fixed overhead, and inclusion stops once the running total would exceed the
// budget. The selection is returned in chronological order with the new user
// message appended last — always included, even when the budget is exhausted.
//
// Pure function of its inputs; deterministic.
func Build(history []model.Message, userText string, budget int) []gemini.Content {
	var picked []gemini.Content
	total := 0

	for i := len(history) - 1; i >= 0; i-- {
		content := clipRunes(history[i].Content, budget)
		cost := len([]rune(content)) + partOverhead
		if total+cost > budget {
			break
		}
		picked = append(picked, gemini.Content{
			Role:  MapRole(history[i].Role),
			Parts: []gemini.Part{{Text: content}},
		})
		total += cost
	}

	for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
		picked[i], picked[j] = picked[j], picked[i]
	}

	return append(picked, gemini.Content{
		Role:  gemini.RoleUser,
		Parts: []gemini.Part{{Text: userText}},
	})
}

// MapRole translates history roles into the role tokens the generation
// backend expects for its own prior turns. Unknown roles pass through; an
// empty role defaults to user.
func MapRole(role string) string {
	switch role {
	case model.RoleAssistant:
		return gemini.RoleModel
	case model.RoleUser, "":
		return gemini.RoleUser
	default:
		return role
	}
}

// clipRunes truncates s to at most max runes.
func clipRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
