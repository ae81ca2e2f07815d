package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"soul-studio-art/models"

	"google.golang.org/genai"
)

// negativeImagePrompt keeps faces, figures and borders out of the
// generated artwork; the designs are abstract astral geometry only
const negativeImagePrompt = "visage, portrait, figure humaine, personne, silhouette, corps, yeux, photo-réaliste, bordure, cadre, marge"

// imagePromptSuffix is appended to every architect-produced prompt
const imagePromptSuffix = ". Œuvre plein cadre, sans bordure (full bleed). Rendu élégant et sophistiqué."

// GeminiService generates revelation text, image plans and artwork
// through the Gemini and Imagen models
type GeminiService struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// NewGeminiService creates a new GeminiService instance
func NewGeminiService(ctx context.Context, apiKey, textModel, imageModel string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiService{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// Ensure GeminiService implements GeminiServiceInterface
var _ GeminiServiceInterface = (*GeminiService)(nil)

// GenerateRevelationText produces the personalized revelation prose from
// the quiz answers
func (gs *GeminiService) GenerateRevelationText(ctx context.Context, answers models.QuizAnswers) (string, error) {
	prompt := BuildTextPrompt(answers)

	resp, err := gs.client.Models.GenerateContent(ctx, gs.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini text generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty revelation")
	}

	log.Printf("✅ GenerateRevelationText: generated %d characters for name=%s", len(text), answers.Name)
	return text, nil
}

// GenerateImagePlan asks the "architect" model for a client-facing
// description and the technical prompt the image model will execute
func (gs *GeminiService) GenerateImagePlan(ctx context.Context, answers models.QuizAnswers) (*models.GenerationPlan, error) {
	prompt := BuildArchitectPrompt(answers)

	resp, err := gs.client.Models.GenerateContent(ctx, gs.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini plan generation failed: %w", err)
	}

	plan, err := ParseGenerationPlan([]byte(resp.Text()))
	if err != nil {
		return nil, err
	}

	log.Printf("✅ GenerateImagePlan: plan ready for name=%s", answers.Name)
	return plan, nil
}

// GenerateImage renders the artwork for a plan prompt and returns the
// PNG bytes
func (gs *GeminiService) GenerateImage(ctx context.Context, imagePrompt string) ([]byte, error) {
	finalPrompt := imagePrompt + imagePromptSuffix

	resp, err := gs.client.Models.GenerateImages(ctx, gs.imageModel, finalPrompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
		NegativePrompt: negativeImagePrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("imagen generation failed: %w", err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, fmt.Errorf("imagen returned no image")
	}

	imageBytes := resp.GeneratedImages[0].Image.ImageBytes
	log.Printf("✅ GenerateImage: received %d bytes from %s", len(imageBytes), gs.imageModel)
	return imageBytes, nil
}

// BuildTextPrompt assembles the revelation prompt from the quiz answers.
// Optional answers are only included when provided.
func BuildTextPrompt(answers models.QuizAnswers) string {
	var b strings.Builder

	b.WriteString("Créez une \"Révélation Céleste\" personnalisée pour une personne.\n")
	b.WriteString("Informations de la personne :\n")
	b.WriteString("- Prénom : " + orUnspecified(answers.Name) + "\n")
	b.WriteString("- Date de naissance : " + orUnspecified(answers.BirthDate) + "\n")
	b.WriteString("- Lieu de naissance : " + orUnspecified(answers.BirthPlace) + "\n")
	if answers.BirthTime != "" {
		b.WriteString("- Heure de naissance : " + answers.BirthTime + "\n")
	}
	if answers.PersonalityTrait != "" {
		b.WriteString("- Trait de personnalité : " + answers.PersonalityTrait + "\n")
	}
	if answers.BiggestDream != "" {
		b.WriteString("- Plus grand rêve : " + answers.BiggestDream + "\n")
	}
	if answers.LifeLesson != "" {
		b.WriteString("- Plus grande leçon de vie : " + answers.LifeLesson + "\n")
	}
	b.WriteString("\nUtilisez ces informations pour offrir une interprétation profonde et personnelle.\n")
	b.WriteString("Le texte doit être inspiré par l'astrologie et la spiritualité.\n")
	b.WriteString("Adoptez un ton inspirant et poétique, dans le style \"Soul Studio Art\".\n")
	b.WriteString("Le texte doit être une révélation unique, d'environ 250 mots, et très personnalisé.\n")

	return b.String()
}

// BuildArchitectPrompt asks for a JSON object holding a poetic
// description of the artwork plus the technical image prompt
func BuildArchitectPrompt(answers models.QuizAnswers) string {
	var b strings.Builder

	b.WriteString("Tu es un directeur artistique et un poète symboliste. En te basant sur les informations suivantes :\n")
	b.WriteString("- Prénom : " + orUnspecified(answers.Name) + "\n")
	b.WriteString("- Date de naissance : " + orUnspecified(answers.BirthDate) + "\n")
	if answers.PersonalityTrait != "" {
		b.WriteString("- Trait de personnalité : " + answers.PersonalityTrait + "\n")
	}
	if answers.BiggestDream != "" {
		b.WriteString("- Plus grand rêve : " + answers.BiggestDream + "\n")
	}
	b.WriteString("Ta mission est de produire deux choses distinctes sous forme d'objet JSON :\n")
	b.WriteString("1. client_description : Une description poétique de 2-3 phrases qui explique les symboles visuels d'une œuvre d'art imaginaire.\n")
	b.WriteString("2. image_prompt : Un prompt technique et visuel, en anglais, pour générer cette image, en te concentrant sur des motifs de géométrie astrale complexe, des nébuleuses et des symboles.\n")
	b.WriteString("Réponds UNIQUEMENT avec un objet JSON valide au format : { \"client_description\": \"...\", \"image_prompt\": \"...\" }\n")

	return b.String()
}

// ParseGenerationPlan decodes and validates the architect model's JSON
// output
func ParseGenerationPlan(raw []byte) (*models.GenerationPlan, error) {
	var plan models.GenerationPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode generation plan: %w", err)
	}
	if plan.ImagePrompt == "" {
		return nil, fmt.Errorf("generation plan is missing image_prompt")
	}
	if plan.ClientDescription == "" {
		return nil, fmt.Errorf("generation plan is missing client_description")
	}
	return &plan, nil
}

func orUnspecified(value string) string {
	if value == "" {
		return "Non spécifié"
	}
	return value
}
