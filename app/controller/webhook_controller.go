package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"soul-studio-art/models"
	"soul-studio-art/repository"
	"soul-studio-art/service"
)

// shopifySignatureHeader carries the base64 HMAC-SHA256 of the raw body
const shopifySignatureHeader = "X-Shopify-Hmac-Sha256"

// maxWebhookBody bounds how much of an inbound webhook body is read
const maxWebhookBody = 2 << 20

// WebhookController handles inbound Shopify webhooks
type WebhookController struct {
	webhookSecret   string
	printifyService service.PrintifyServiceInterface
	fulfillmentRepo repository.FulfillmentRepositoryInterface // nil when no database is configured
}

// NewWebhookController creates a new WebhookController
func NewWebhookController(webhookSecret string, printifyService service.PrintifyServiceInterface, fulfillmentRepo repository.FulfillmentRepositoryInterface) *WebhookController {
	return &WebhookController{
		webhookSecret:   webhookSecret,
		printifyService: printifyService,
		fulfillmentRepo: fulfillmentRepo,
	}
}

// HandleOrderCreated handles POST /webhooks/orders
//
// Pipeline: verify the HMAC signature over the raw body, extract
// personalized line items, build the Printify payload, submit once, and
// classify the result. A Printify "external id already exists" rejection
// is reported as success so Shopify's redelivery does not keep retrying
// an order that was already placed.
func (c *WebhookController) HandleOrderCreated(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 HandleOrderCreated: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
		return
	}

	// The signature covers the exact raw bytes Shopify sent, so the body
	// must be read before any JSON decoding
	body, err := readLimitedBody(r, maxWebhookBody)
	if err != nil {
		log.Printf("❌ HandleOrderCreated: Failed to read request body: %v", err)
		writeJSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	signature := r.Header.Get(shopifySignatureHeader)
	if !service.VerifyWebhookSignature(body, signature, c.webhookSecret) {
		// Covers missing secret, missing header and mismatch alike; the
		// response never says which
		log.Printf("❌ HandleOrderCreated: webhook signature verification failed")
		writeJSONError(w, http.StatusUnauthorized, "webhook signature verification failed")
		return
	}

	var order models.ShopifyOrder
	if err := json.Unmarshal(body, &order); err != nil {
		log.Printf("❌ HandleOrderCreated: Failed to decode order payload: %v", err)
		writeJSONError(w, http.StatusBadRequest, "invalid order payload")
		return
	}

	log.Printf("📋 HandleOrderCreated: processing order id=%d number=%d with %d line items", order.ID, order.OrderNumber, len(order.LineItems))

	items, skipped := service.ExtractPersonalizedItems(order.LineItems)
	if len(items) == 0 {
		if len(skipped) > 0 {
			// Customization was attempted but nothing is fulfillable;
			// this is a checkout-data defect, not a missing-order case
			log.Printf("❌ HandleOrderCreated: order number=%d has only malformed customization data: %+v", order.OrderNumber, skipped)
			writeJSONError(w, http.StatusBadRequest, "customization data is incomplete or malformed")
			return
		}
		log.Printf("✅ HandleOrderCreated: order number=%d has no personalized items, nothing to fulfill", order.OrderNumber)
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "order has no personalized items, nothing to fulfill",
		})
		return
	}

	request := service.BuildFulfillmentRequest(&order, items)

	result, err := c.printifyService.SubmitOrder(r.Context(), request)
	if err != nil {
		// Transport failure, including timeout: classification is
		// unknown, so fail closed and let Shopify redeliver
		log.Printf("❌ HandleOrderCreated: Printify submission failed for external_id=%s: %v", request.ExternalID, err)
		result = &models.SubmitResult{
			Outcome:     models.OutcomeFailed,
			ErrorDetail: "printify request failed",
		}
	}

	c.recordFulfillment(r, &order, request.ExternalID, result)

	switch result.Outcome {
	case models.OutcomeCreated:
		log.Printf("✅ HandleOrderCreated: Printify order created for order number=%d", order.OrderNumber)
		writeJSON(w, http.StatusOK, map[string]string{
			"message":         "printify order created",
			"printifyOrderId": result.PrintifyOrderID,
		})
	case models.OutcomeAlreadyExists:
		log.Printf("✅ HandleOrderCreated: order number=%d was already submitted, idempotent no-op", order.OrderNumber)
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "printify order already exists",
		})
	default:
		writeJSONError(w, http.StatusInternalServerError, "printify order creation failed")
	}
}

// recordFulfillment writes the audit row when a repository is wired. An
// audit failure is logged but never affects the webhook response.
func (c *WebhookController) recordFulfillment(r *http.Request, order *models.ShopifyOrder, externalID string, result *models.SubmitResult) {
	if c.fulfillmentRepo == nil {
		return
	}

	record := &models.FulfillmentRecord{
		ShopifyOrderID:  order.ID,
		OrderNumber:     order.OrderNumber,
		ExternalID:      externalID,
		Outcome:         string(result.Outcome),
		PrintifyOrderID: result.PrintifyOrderID,
		ErrorDetail:     result.ErrorDetail,
	}

	if err := c.fulfillmentRepo.Insert(r.Context(), record); err != nil {
		log.Printf("⚠️ HandleOrderCreated: failed to record fulfillment audit row: %v", err)
	}
}
