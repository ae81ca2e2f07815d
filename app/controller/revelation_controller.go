package controller

import (
	"encoding/base64"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"soul-studio-art/models"
	"soul-studio-art/service"
)

// RevelationController handles HTTP requests for the generation pipeline
type RevelationController struct {
	revelationService service.RevelationServiceInterface
}

// NewRevelationController creates a new RevelationController
func NewRevelationController(revelationService service.RevelationServiceInterface) *RevelationController {
	return &RevelationController{
		revelationService: revelationService,
	}
}

// GenerateText handles POST /api/revelation/text
// Example request: {"answers": {"name": "Clara", "birthDate": "15 mai 1990", "birthPlace": "Paris"}}
// Example response: {"text": "Chère Clara, ..."}
func (c *RevelationController) GenerateText(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GenerateText: Received %s request to %s", r.Method, r.URL.Path)

	answers, ok := c.decodeAnswers(w, r)
	if !ok {
		return
	}

	text, err := c.revelationService.GenerateText(r.Context(), answers)
	if err != nil {
		log.Printf("❌ GenerateText: generation failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "text generation failed")
		return
	}

	writeJSON(w, http.StatusOK, models.TextResponse{Text: text})
}

// GenerateImage handles POST /api/revelation/image
// Generates the artwork, stores it in the blob store and returns its
// public URL plus the client-facing description
func (c *RevelationController) GenerateImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GenerateImage: Received %s request to %s", r.Method, r.URL.Path)

	answers, ok := c.decodeAnswers(w, r)
	if !ok {
		return
	}

	image, err := c.revelationService.GenerateImageAsset(r.Context(), answers)
	if err != nil {
		log.Printf("❌ GenerateImage: generation failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "image generation failed")
		return
	}

	writeJSON(w, http.StatusOK, image)
}

// GenerateRevelation handles POST /api/revelation
// Runs text and image generation concurrently; both halves must succeed
func (c *RevelationController) GenerateRevelation(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GenerateRevelation: Received %s request to %s", r.Method, r.URL.Path)

	answers, ok := c.decodeAnswers(w, r)
	if !ok {
		return
	}

	revelation, err := c.revelationService.GenerateRevelation(r.Context(), answers)
	if err != nil {
		log.Printf("❌ GenerateRevelation: generation failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "revelation generation failed")
		return
	}

	writeJSON(w, http.StatusOK, revelation)
}

// decodeAnswers reads and validates the generation request body; on
// failure it writes the error response and returns ok=false
func (c *RevelationController) decodeAnswers(w http.ResponseWriter, r *http.Request) (models.QuizAnswers, bool) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
		return models.QuizAnswers{}, false
	}

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ decodeAnswers: Failed to decode request body: %v", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return models.QuizAnswers{}, false
	}
	defer r.Body.Close()

	if req.Answers.IsEmpty() {
		writeJSONError(w, http.StatusBadRequest, "quiz answers are required")
		return models.QuizAnswers{}, false
	}

	return req.Answers, true
}

// previewTemplate renders a test generation as a plain HTML page
var previewTemplate = template.Must(template.New("preview").Parse(`<html>
<head>
  <title>Test de Génération</title>
  <style>
    body { font-family: sans-serif; padding: 2rem; display: flex; gap: 2rem; align-items: flex-start; background-color: #f0f2f5; color: #333; }
    img { max-width: 512px; height: auto; border: 1px solid #ccc; border-radius: 8px; }
    div { max-width: 512px; }
    h2 { color: #5A31F4; border-bottom: 2px solid #5A31F4; padding-bottom: 0.5rem; }
    p { background: #fff; padding: 1rem; border-radius: 8px; line-height: 1.6; }
    code { background: #e0e0e0; padding: 1rem; border-radius: 8px; display: block; white-space: pre-wrap; }
  </style>
</head>
<body>
  <div>
    <h2>Image Générée :</h2>
    <img src="data:image/png;base64,{{.ImageBase64}}" alt="Image générée" />
  </div>
  <div>
    <h2>Description pour le Client :</h2>
    <p>{{.Description}}</p>
    <h2>Prompt Technique utilisé pour l'Image :</h2>
    <code>{{.ImagePrompt}}</code>
  </div>
</body>
</html>`))

// Preview handles GET /api/revelation/preview
// Debug page: runs the image pipeline with query-param overrides and
// renders the result inline, without touching the blob store
func (c *RevelationController) Preview(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Preview: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}

	query := r.URL.Query()
	answers := models.QuizAnswers{
		Name:             queryDefault(query.Get("name"), "Clara"),
		BirthDate:        queryDefault(query.Get("birthDate"), "15 mai 1990"),
		BirthPlace:       queryDefault(query.Get("birthPlace"), "Paris"),
		PersonalityTrait: queryDefault(query.Get("personalityTrait"), "Créative"),
		BiggestDream:     queryDefault(query.Get("biggestDream"), "Voyager"),
	}

	preview, err := c.revelationService.GeneratePreview(r.Context(), answers)
	if err != nil {
		log.Printf("❌ Preview: generation failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "preview generation failed")
		return
	}

	data := struct {
		ImageBase64 string
		Description string
		ImagePrompt string
	}{
		ImageBase64: base64.StdEncoding.EncodeToString(preview.ImagePNG),
		Description: preview.Description,
		ImagePrompt: preview.ImagePrompt,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := previewTemplate.Execute(w, data); err != nil {
		log.Printf("❌ Preview: Error rendering template: %v", err)
	}
}

func queryDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
