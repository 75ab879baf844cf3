package usecase

// SystemInstructions is the fixed system prompt sent with every generation
// call.
const SystemInstructions = "Instructions:\n" +
	"You are a friendly, knowledgeable Personal AI Assistant. " +
	"Always answer in a concise and clear way while keeping your response under 2800 characters. " +
	"Prioritize being helpful, approachable, and accurate. Use short paragraphs and bullet points where possible. " +
	"If a question could have a long answer, summarize key points instead of writing in full detail. " +
	"Avoid unnecessary repetition or filler text.\n"

// FallbackMessage is the fixed reply substituted when a vendor call fails.
const FallbackMessage = "I'm having trouble connecting right now. Please try again later."

// PlaceholderAudioURL is the inert audio reference returned when even the
// fallback clip cannot be synthesized. Clients are expected to handle it.
const PlaceholderAudioURL = "about:blank"

// Ellipsis is appended to replies truncated at the TTS character limit.
const Ellipsis = "..."
