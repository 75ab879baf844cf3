package murf

// DefaultAPIURL is the Murf REST API endpoint.
const DefaultAPIURL = "https://api.murf.ai/v1"
