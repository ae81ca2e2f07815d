package service

import (
	"context"
	"fmt"
	"log"

	"soul-studio-art/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RevelationService orchestrates the generation pipeline: revelation
// text from Gemini, artwork through the architect/artist two-step, and
// storage of the artwork in the blob store
type RevelationService struct {
	gemini GeminiServiceInterface
	drive  DriveServiceInterface
}

// NewRevelationService creates a new RevelationService instance
func NewRevelationService(gemini GeminiServiceInterface, drive DriveServiceInterface) *RevelationService {
	return &RevelationService{
		gemini: gemini,
		drive:  drive,
	}
}

// Ensure RevelationService implements RevelationServiceInterface
var _ RevelationServiceInterface = (*RevelationService)(nil)

// GenerateText produces the revelation prose only
func (rs *RevelationService) GenerateText(ctx context.Context, answers models.QuizAnswers) (string, error) {
	return rs.gemini.GenerateRevelationText(ctx, answers)
}

// GenerateImageAsset runs the two-step image pipeline and stores the
// result: architect plan, artist render, print preparation, blob upload.
// The filename gets a random UUID because no order exists yet when the
// image is generated.
func (rs *RevelationService) GenerateImageAsset(ctx context.Context, answers models.QuizAnswers) (*models.ImageResponse, error) {
	plan, err := rs.gemini.GenerateImagePlan(ctx, answers)
	if err != nil {
		return nil, err
	}

	imageBytes, err := rs.gemini.GenerateImage(ctx, plan.ImagePrompt)
	if err != nil {
		return nil, err
	}

	prepared, err := PrepareArtwork(imageBytes)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("revelation-%s.png", uuid.New().String())
	imageURL, err := rs.drive.UploadImage(filename, prepared)
	if err != nil {
		return nil, err
	}

	return &models.ImageResponse{
		ImageURL:    imageURL,
		Description: plan.ClientDescription,
	}, nil
}

// GenerateRevelation runs text and image generation concurrently. The
// two calls are independent, but both must succeed: a revelation with a
// missing half is never returned.
func (rs *RevelationService) GenerateRevelation(ctx context.Context, answers models.QuizAnswers) (*models.RevelationResponse, error) {
	var text string
	var image *models.ImageResponse

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		text, err = rs.GenerateText(gctx, answers)
		return err
	})

	g.Go(func() error {
		var err error
		image, err = rs.GenerateImageAsset(gctx, answers)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("❌ GenerateRevelation: generation failed for name=%s: %v", answers.Name, err)
		return nil, err
	}

	return &models.RevelationResponse{
		Text:        text,
		ImageURL:    image.ImageURL,
		Description: image.Description,
	}, nil
}

// GeneratePreview runs the image pipeline without uploading, returning
// the raw artifacts for the HTML preview page
func (rs *RevelationService) GeneratePreview(ctx context.Context, answers models.QuizAnswers) (*models.RevelationPreview, error) {
	plan, err := rs.gemini.GenerateImagePlan(ctx, answers)
	if err != nil {
		return nil, err
	}

	imageBytes, err := rs.gemini.GenerateImage(ctx, plan.ImagePrompt)
	if err != nil {
		return nil, err
	}

	return &models.RevelationPreview{
		Description: plan.ClientDescription,
		ImagePrompt: plan.ImagePrompt,
		ImagePNG:    imageBytes,
	}, nil
}
