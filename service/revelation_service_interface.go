package service

import (
	"context"

	"soul-studio-art/models"
)

// RevelationServiceInterface defines the contract for the generation pipeline
type RevelationServiceInterface interface {
	GenerateText(ctx context.Context, answers models.QuizAnswers) (string, error)
	GenerateImageAsset(ctx context.Context, answers models.QuizAnswers) (*models.ImageResponse, error)
	// GenerateRevelation produces text and image concurrently; it fails
	// as a whole if either half fails
	GenerateRevelation(ctx context.Context, answers models.QuizAnswers) (*models.RevelationResponse, error)
	GeneratePreview(ctx context.Context, answers models.QuizAnswers) (*models.RevelationPreview, error)
}
