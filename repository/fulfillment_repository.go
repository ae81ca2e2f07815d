package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"soul-studio-art/db"
	"soul-studio-art/models"
)

// FulfillmentRepository handles database operations for the fulfillment
// audit trail
type FulfillmentRepository struct{}

// NewFulfillmentRepository creates a new FulfillmentRepository
func NewFulfillmentRepository() *FulfillmentRepository {
	return &FulfillmentRepository{}
}

// Ensure FulfillmentRepository implements FulfillmentRepositoryInterface
var _ FulfillmentRepositoryInterface = (*FulfillmentRepository)(nil)

// Insert records the outcome of one webhook invocation that reached the
// submitter
func (r *FulfillmentRepository) Insert(ctx context.Context, record *models.FulfillmentRecord) error {
	log.Printf("📦 Insert: recording fulfillment shopify_order_id=%d outcome=%s", record.ShopifyOrderID, record.Outcome)

	query := `
		INSERT INTO fulfillments (shopify_order_id, order_number, external_id, outcome, printify_order_id, error_detail)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := db.DB.QueryRowContext(ctx, query,
		record.ShopifyOrderID,
		record.OrderNumber,
		record.ExternalID,
		record.Outcome,
		sql.NullString{String: record.PrintifyOrderID, Valid: record.PrintifyOrderID != ""},
		sql.NullString{String: record.ErrorDetail, Valid: record.ErrorDetail != ""},
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		log.Printf("❌ Insert: Error recording fulfillment: %v", err)
		return fmt.Errorf("failed to insert fulfillment record: %w", err)
	}

	return nil
}

// ListRecent returns the most recent fulfillment records, newest first
func (r *FulfillmentRepository) ListRecent(ctx context.Context, limit int) ([]models.FulfillmentRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, shopify_order_id, order_number, external_id, outcome, printify_order_id, error_detail, created_at
		FROM fulfillments
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := db.DB.QueryContext(ctx, query, limit)
	if err != nil {
		log.Printf("❌ ListRecent: Error listing fulfillments: %v", err)
		return nil, fmt.Errorf("failed to list fulfillments: %w", err)
	}
	defer rows.Close()

	var records []models.FulfillmentRecord
	for rows.Next() {
		var record models.FulfillmentRecord
		var printifyOrderID, errorDetail sql.NullString

		if err := rows.Scan(
			&record.ID,
			&record.ShopifyOrderID,
			&record.OrderNumber,
			&record.ExternalID,
			&record.Outcome,
			&printifyOrderID,
			&errorDetail,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fulfillment record: %w", err)
		}

		if printifyOrderID.Valid {
			record.PrintifyOrderID = printifyOrderID.String
		}
		if errorDetail.Valid {
			record.ErrorDetail = errorDetail.String
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fulfillment records: %w", err)
	}

	return records, nil
}
