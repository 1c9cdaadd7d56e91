package domain

const ReplyContext = "reply"

// GenerationRequest is the body posted to the reply generator.
type GenerationRequest struct {
	Zone          Zone    `json:"zone"`
	Emotion       Emotion `json:"emotion"`
	Context       string  `json:"context"`
	Content       string  `json:"content"`
	EmotionalTone string  `json:"emotional_tone"`
	WhisperType   string  `json:"whisper_type"`
}

type GenerationResult struct {
	Content string
}

func NewGenerationRequest(job Job, target Whisper) GenerationRequest {
	emotion := job.Emotion
	if emotion == "" {
		emotion = target.Emotion
	}
	return GenerationRequest{
		Zone:          job.Zone,
		Emotion:       emotion,
		Context:       ReplyContext,
		Content:       target.Content,
		EmotionalTone: EmotionalTone(emotion),
		WhisperType:   WhisperType(target.Content, emotion),
	}
}
