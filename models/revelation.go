package models

// QuizAnswers holds the visitor's quiz responses. Only name, birth date
// and birth place are required by the quiz; the rest enrich the prompt
// when present.
type QuizAnswers struct {
	Name             string `json:"name"`
	BirthDate        string `json:"birthDate"`
	BirthPlace       string `json:"birthPlace"`
	BirthTime        string `json:"birthTime,omitempty"`
	PersonalityTrait string `json:"personalityTrait,omitempty"`
	BiggestDream     string `json:"biggestDream,omitempty"`
	LifeLesson       string `json:"lifeLesson,omitempty"`
}

// IsEmpty reports whether no answer was provided at all
func (a QuizAnswers) IsEmpty() bool {
	return a == QuizAnswers{}
}

// GenerateRequest is the request body for the generation endpoints
// Example: {"answers": {"name": "Clara", "birthDate": "15 mai 1990", "birthPlace": "Paris"}}
type GenerateRequest struct {
	Answers QuizAnswers `json:"answers"`
}

// GenerationPlan is the JSON object the "architect" model returns: a
// client-facing description of the artwork plus the technical prompt the
// image model will execute
type GenerationPlan struct {
	ClientDescription string `json:"client_description"`
	ImagePrompt       string `json:"image_prompt"`
}

// TextResponse is the response of the text generation endpoint
type TextResponse struct {
	Text string `json:"text"`
}

// ImageResponse is the response of the image generation endpoint
type ImageResponse struct {
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}

// RevelationResponse is the response of the combined generation endpoint
type RevelationResponse struct {
	Text        string `json:"text"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}

// RevelationPreview carries the raw artifacts of a test generation for
// the HTML preview page
type RevelationPreview struct {
	Description string
	ImagePrompt string
	ImagePNG    []byte
}
