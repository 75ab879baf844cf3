package murf

type generateRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

type generateResponse struct {
	AudioFile string `json:"audioFile"`
}
