package repository

import (
	"context"

	"soul-studio-art/models"
)

// FulfillmentRepositoryInterface defines the contract for the
// fulfillment audit trail. The table is diagnostic only: the Printify
// external id, not this table, is the idempotency guard.
type FulfillmentRepositoryInterface interface {
	Insert(ctx context.Context, record *models.FulfillmentRecord) error
	ListRecent(ctx context.Context, limit int) ([]models.FulfillmentRecord, error)
}
