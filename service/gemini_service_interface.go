package service

import (
	"context"

	"soul-studio-art/models"
)

// GeminiServiceInterface defines the contract for generative model calls
type GeminiServiceInterface interface {
	GenerateRevelationText(ctx context.Context, answers models.QuizAnswers) (string, error)
	GenerateImagePlan(ctx context.Context, answers models.QuizAnswers) (*models.GenerationPlan, error)
	GenerateImage(ctx context.Context, imagePrompt string) ([]byte, error)
}
