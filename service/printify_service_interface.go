package service

import (
	"context"

	"soul-studio-art/models"
)

// PrintifyServiceInterface defines the contract for Printify API operations
type PrintifyServiceInterface interface {
	// SubmitOrder performs one submission attempt and classifies the
	// result. A transport-level error (including timeout) is returned as
	// err and must be treated as a failed submission.
	SubmitOrder(ctx context.Context, order *models.PrintifyOrderRequest) (*models.SubmitResult, error)
	GetProduct(ctx context.Context, productID string) (*models.ProductSummary, error)
	ListShops(ctx context.Context) ([]models.PrintifyShop, error)
}
