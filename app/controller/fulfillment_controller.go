package controller

import (
	"log"
	"net/http"
	"strconv"

	"soul-studio-art/models"
	"soul-studio-art/repository"
)

// FulfillmentController exposes the fulfillment audit trail
type FulfillmentController struct {
	fulfillmentRepo repository.FulfillmentRepositoryInterface // nil when no database is configured
}

// NewFulfillmentController creates a new FulfillmentController
func NewFulfillmentController(fulfillmentRepo repository.FulfillmentRepositoryInterface) *FulfillmentController {
	return &FulfillmentController{
		fulfillmentRepo: fulfillmentRepo,
	}
}

// ListFulfillments handles GET /admin/fulfillments?limit=50
// Example response:
// {
//   "fulfillments": [
//     {
//       "id": 1,
//       "shopifyOrderId": 12345,
//       "orderNumber": 1001,
//       "externalId": "shopify-order-12345",
//       "outcome": "created",
//       "printifyOrderId": "pfy_abc",
//       "createdAt": "2024-01-15T10:30:00Z"
//     }
//   ]
// }
func (c *FulfillmentController) ListFulfillments(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListFulfillments: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}

	if c.fulfillmentRepo == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "fulfillment audit trail requires a configured database")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSONError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := c.fulfillmentRepo.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("❌ ListFulfillments: Error listing fulfillments: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to list fulfillments")
		return
	}

	writeJSON(w, http.StatusOK, models.FulfillmentListResponse{Fulfillments: records})
}
