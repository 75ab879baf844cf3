package model

// Message roles as stored in session history and exposed over the API.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversational turn entry.
// History within a session is chronological and append-only; trimming drops
// the oldest entries but never reorders.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
