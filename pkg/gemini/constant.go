package gemini

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-1.5-flash"

	// DefaultAPIURL is the Gemini Generative Language API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1"

	// Role tokens the Gemini API expects for conversation contents.
	RoleUser  = "user"
	RoleModel = "model"
)
