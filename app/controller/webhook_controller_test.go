package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"soul-studio-art/models"
	"soul-studio-art/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-webhook-secret"

type stubPrintify struct {
	submits int
	lastReq *models.PrintifyOrderRequest
	result  *models.SubmitResult
	err     error
}

func (s *stubPrintify) SubmitOrder(ctx context.Context, order *models.PrintifyOrderRequest) (*models.SubmitResult, error) {
	s.submits++
	s.lastReq = order
	return s.result, s.err
}

func (s *stubPrintify) GetProduct(ctx context.Context, productID string) (*models.ProductSummary, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubPrintify) ListShops(ctx context.Context) ([]models.PrintifyShop, error) {
	return nil, fmt.Errorf("not implemented")
}

type stubFulfillmentRepo struct {
	inserted []models.FulfillmentRecord
	err      error
}

func (s *stubFulfillmentRepo) Insert(ctx context.Context, record *models.FulfillmentRecord) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, *record)
	return nil
}

func (s *stubFulfillmentRepo) ListRecent(ctx context.Context, limit int) ([]models.FulfillmentRecord, error) {
	return s.inserted, nil
}

func personalizedOrderBody(t *testing.T) []byte {
	t.Helper()
	order := models.ShopifyOrder{
		ID:           12345,
		OrderNumber:  1001,
		ContactEmail: "clara@example.com",
		LineItems: []models.ShopifyLineItem{
			{
				SKU:      "CANVAS-30",
				Quantity: 2,
				Properties: []models.LineProperty{
					{Name: service.PropertyImageURL, Value: "https://x/img.png"},
					{Name: service.PropertyVariantID, Value: "111"},
					{Name: service.PropertyBlueprintID, Value: "222"},
					{Name: service.PropertyProviderID, Value: "333"},
				},
			},
		},
		ShippingAddress: &models.ShippingAddress{
			FirstName:   "Clara",
			LastName:    "Martin",
			Address1:    "1 rue de la Paix",
			City:        "Paris",
			CountryCode: "FR",
			Zip:         "75002",
		},
	}
	body, err := json.Marshal(order)
	require.NoError(t, err)
	return body
}

func signedRequest(t *testing.T, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", bytes.NewReader(body))
	req.Header.Set("X-Shopify-Hmac-Sha256", service.ComputeWebhookSignature(body, testSecret))
	return req
}

func newWebhookController(printify *stubPrintify) *WebhookController {
	return NewWebhookController(testSecret, printify, nil)
}

func TestHandleOrderCreatedRejectsNonPost(t *testing.T) {
	printify := &stubPrintify{}
	c := newWebhookController(printify)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, httptest.NewRequest(http.MethodGet, "/webhooks/orders", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Zero(t, printify.submits)
}

func TestHandleOrderCreatedRejectsMissingSignature(t *testing.T) {
	printify := &stubPrintify{}
	c := newWebhookController(printify)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", bytes.NewReader(personalizedOrderBody(t)))
	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, printify.submits)
}

func TestHandleOrderCreatedRejectsBadSignature(t *testing.T) {
	printify := &stubPrintify{}
	c := newWebhookController(printify)

	body := personalizedOrderBody(t)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", bytes.NewReader(body))
	req.Header.Set("X-Shopify-Hmac-Sha256", service.ComputeWebhookSignature(body, "wrong-secret"))
	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, printify.submits)
}

func TestHandleOrderCreatedRejectsWhenSecretUnconfigured(t *testing.T) {
	printify := &stubPrintify{}
	c := NewWebhookController("", printify, nil)

	body := personalizedOrderBody(t)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", bytes.NewReader(body))
	req.Header.Set("X-Shopify-Hmac-Sha256", service.ComputeWebhookSignature(body, ""))
	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleOrderCreatedRejectsMalformedJSON(t *testing.T) {
	printify := &stubPrintify{}
	c := newWebhookController(printify)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, signedRequest(t, []byte(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, printify.submits)
}

func TestHandleOrderCreatedNothingToFulfill(t *testing.T) {
	printify := &stubPrintify{}
	c := newWebhookController(printify)

	body, err := json.Marshal(models.ShopifyOrder{
		ID:          999,
		OrderNumber: 1002,
		LineItems: []models.ShopifyLineItem{
			{SKU: "MUG-01", Quantity: 1},
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, signedRequest(t, body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, printify.submits, "no partner call when there is nothing to fulfill")
}

func TestHandleOrderCreatedAllCustomizationMalformed(t *testing.T) {
	printify := &stubPrintify{}
	c := newWebhookController(printify)

	body, err := json.Marshal(models.ShopifyOrder{
		ID:          999,
		OrderNumber: 1003,
		LineItems: []models.ShopifyLineItem{
			{
				SKU:      "CANVAS-30",
				Quantity: 1,
				Properties: []models.LineProperty{
					{Name: service.PropertyImageURL, Value: "https://x/img.png"},
					// identifiers missing
				},
			},
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, signedRequest(t, body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, printify.submits)
}

func TestHandleOrderCreatedSubmitsOrder(t *testing.T) {
	printify := &stubPrintify{result: &models.SubmitResult{Outcome: models.OutcomeCreated, PrintifyOrderID: "pfy_1"}}
	repo := &stubFulfillmentRepo{}
	c := NewWebhookController(testSecret, printify, repo)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, signedRequest(t, personalizedOrderBody(t)))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, printify.submits)
	assert.Equal(t, "shopify-order-12345", printify.lastReq.ExternalID)
	require.Len(t, printify.lastReq.LineItems, 1)
	assert.Equal(t, 111, printify.lastReq.LineItems[0].VariantID)
	assert.Equal(t, "https://x/img.png", printify.lastReq.LineItems[0].PrintAreas.Front[0].Src)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pfy_1", resp["printifyOrderId"])

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "created", repo.inserted[0].Outcome)
	assert.Equal(t, int64(12345), repo.inserted[0].ShopifyOrderID)
}

func TestHandleOrderCreatedDuplicateIsSuccess(t *testing.T) {
	printify := &stubPrintify{result: &models.SubmitResult{Outcome: models.OutcomeAlreadyExists}}
	c := newWebhookController(printify)

	// Same order delivered twice: both deliveries answer 200
	first := httptest.NewRecorder()
	c.HandleOrderCreated(first, signedRequest(t, personalizedOrderBody(t)))
	second := httptest.NewRecorder()
	c.HandleOrderCreated(second, signedRequest(t, personalizedOrderBody(t)))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	// Correlation id is identical across deliveries, so Printify sees one order
	assert.Equal(t, "shopify-order-12345", printify.lastReq.ExternalID)
}

func TestHandleOrderCreatedPartnerFailure(t *testing.T) {
	printify := &stubPrintify{result: &models.SubmitResult{Outcome: models.OutcomeFailed, ErrorDetail: "bad variant"}}
	repo := &stubFulfillmentRepo{}
	c := NewWebhookController(testSecret, printify, repo)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, signedRequest(t, personalizedOrderBody(t)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "failed", repo.inserted[0].Outcome)
}

func TestHandleOrderCreatedTransportErrorFailsClosed(t *testing.T) {
	printify := &stubPrintify{err: fmt.Errorf("connection timed out")}
	c := newWebhookController(printify)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, signedRequest(t, personalizedOrderBody(t)))

	// Unknown outcome is never reported as success
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleOrderCreatedAuditFailureDoesNotAffectResponse(t *testing.T) {
	printify := &stubPrintify{result: &models.SubmitResult{Outcome: models.OutcomeCreated, PrintifyOrderID: "pfy_1"}}
	repo := &stubFulfillmentRepo{err: fmt.Errorf("db down")}
	c := NewWebhookController(testSecret, printify, repo)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, signedRequest(t, personalizedOrderBody(t)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleOrderCreatedMixedLineItems(t *testing.T) {
	printify := &stubPrintify{result: &models.SubmitResult{Outcome: models.OutcomeCreated, PrintifyOrderID: "pfy_1"}}
	c := newWebhookController(printify)

	order := models.ShopifyOrder{
		ID:          777,
		OrderNumber: 1004,
		LineItems: []models.ShopifyLineItem{
			{SKU: "MUG-01", Quantity: 1}, // regular product
			{
				SKU:      "CANVAS-30",
				Quantity: 1,
				Properties: []models.LineProperty{
					{Name: service.PropertyImageURL, Value: "https://x/a.png"},
					{Name: service.PropertyVariantID, Value: "1"},
					{Name: service.PropertyBlueprintID, Value: "2"},
					{Name: service.PropertyProviderID, Value: "3"},
				},
			},
			{
				SKU:      "CANVAS-40",
				Quantity: 1,
				Properties: []models.LineProperty{
					{Name: service.PropertyImageURL, Value: "https://x/b.png"},
					// incomplete bundle: excluded, but the order still goes through
				},
			},
		},
	}
	body, err := json.Marshal(order)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c.HandleOrderCreated(rec, signedRequest(t, body))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, printify.submits)
	require.Len(t, printify.lastReq.LineItems, 1)
	assert.Equal(t, "https://x/a.png", printify.lastReq.LineItems[0].PrintAreas.Front[0].Src)
}
