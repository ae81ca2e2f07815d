package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"soul-studio-art/models"
)

// submitTimeout bounds every outbound Printify call. A timed-out
// submission is classified as failed, never as a duplicate: there is no
// way to know whether Printify accepted it, and Shopify's redelivery
// plus the external id guard resolve the ambiguity on the next attempt.
const submitTimeout = 15 * time.Second

// Printify error codes recognized as "this external id was already
// submitted". Classification lives in this one table so a Printify API
// change is a one-line fix, not a hunt through string checks.
var duplicateErrorCodes = map[int]bool{
	8150: true,
}

const duplicateReasonFragment = "already exists"

// PrintifyService calls the Printify REST API
type PrintifyService struct {
	apiKey     string
	shopID     string
	baseURL    string
	httpClient *http.Client
}

// NewPrintifyService creates a new PrintifyService instance.
// baseURL is configurable so tests can point at a local server.
func NewPrintifyService(apiKey, shopID, baseURL string) *PrintifyService {
	return &PrintifyService{
		apiKey:  apiKey,
		shopID:  shopID,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: submitTimeout,
		},
	}
}

// Ensure PrintifyService implements PrintifyServiceInterface
var _ PrintifyServiceInterface = (*PrintifyService)(nil)

// SubmitOrder performs a single submission attempt against Printify's
// orders endpoint and classifies the response. It never retries: Shopify
// owns the redelivery policy, and one guard check per call keeps the
// idempotency story simple.
func (ps *PrintifyService) SubmitOrder(ctx context.Context, order *models.PrintifyOrderRequest) (*models.SubmitResult, error) {
	if ps.apiKey == "" || ps.shopID == "" {
		return nil, fmt.Errorf("printify credentials are not configured")
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal printify order: %w", err)
	}

	url := fmt.Sprintf("%s/shops/%s/orders.json", ps.baseURL, ps.shopID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build printify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ps.apiKey)

	resp, err := ps.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("printify request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read printify response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var created models.PrintifyOrderResponse
		if err := json.Unmarshal(body, &created); err != nil {
			log.Printf("⚠️ SubmitOrder: order accepted but response body unreadable: %v", err)
		}
		log.Printf("✅ SubmitOrder: Printify order created external_id=%s printify_id=%s", order.ExternalID, created.ID)
		return &models.SubmitResult{
			Outcome:         models.OutcomeCreated,
			PrintifyOrderID: created.ID,
		}, nil
	}

	outcome, detail := classifyErrorBody(resp.StatusCode, body)
	if outcome == models.OutcomeAlreadyExists {
		log.Printf("✅ SubmitOrder: Printify already has external_id=%s, treating redelivery as success", order.ExternalID)
	} else {
		// Full partner body goes to server logs only; callers get a
		// short machine-readable detail
		log.Printf("❌ SubmitOrder: Printify rejected external_id=%s status=%d body=%s", order.ExternalID, resp.StatusCode, string(body))
	}

	return &models.SubmitResult{
		Outcome:     outcome,
		ErrorDetail: detail,
	}, nil
}

// classifyErrorBody inspects Printify's structured error body and maps
// it to an outcome. Only the known duplicate signature becomes
// AlreadyExists; any other error, or an unparseable body, is a real
// failure.
func classifyErrorBody(status int, body []byte) (models.SubmitOutcome, string) {
	var errResp models.PrintifyErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return models.OutcomeFailed, fmt.Sprintf("printify returned status %d with unparseable body", status)
	}

	if duplicateErrorCodes[errResp.Code] || duplicateErrorCodes[errResp.Errors.Code] {
		return models.OutcomeAlreadyExists, ""
	}

	reason := strings.ToLower(errResp.Errors.Reason + " " + errResp.Message)
	if strings.Contains(reason, duplicateReasonFragment) {
		return models.OutcomeAlreadyExists, ""
	}

	detail := errResp.Errors.Reason
	if detail == "" {
		detail = errResp.Message
	}
	if detail == "" {
		detail = fmt.Sprintf("printify returned status %d", status)
	}
	return models.OutcomeFailed, detail
}

// GetProduct fetches one product from the shop and reduces it to the
// storefront view: enabled variants only, sorted by numeric title, price
// converted from cents
func (ps *PrintifyService) GetProduct(ctx context.Context, productID string) (*models.ProductSummary, error) {
	if ps.apiKey == "" || ps.shopID == "" {
		return nil, fmt.Errorf("printify credentials are not configured")
	}

	url := fmt.Sprintf("%s/shops/%s/products/%s.json", ps.baseURL, ps.shopID, productID)
	var product models.PrintifyProduct
	if err := ps.getJSON(ctx, url, &product); err != nil {
		return nil, err
	}

	variants := make([]models.VariantSummary, 0, len(product.Variants))
	for _, v := range product.Variants {
		if !v.IsEnabled {
			continue
		}
		variants = append(variants, models.VariantSummary{
			ID:    v.ID,
			Title: v.Title,
			Price: float64(v.Price) / 100,
			SKU:   v.SKU,
		})
	}

	// Variant titles are sizes like "30x40"; sort by their leading number
	sort.SliceStable(variants, func(i, j int) bool {
		return leadingInt(variants[i].Title) < leadingInt(variants[j].Title)
	})

	return &models.ProductSummary{
		Title:           product.Title,
		BlueprintID:     product.BlueprintID,
		PrintProviderID: product.PrintProviderID,
		Variants:        variants,
	}, nil
}

// ListShops lists the shops connected to the configured API key
func (ps *PrintifyService) ListShops(ctx context.Context) ([]models.PrintifyShop, error) {
	if ps.apiKey == "" {
		return nil, fmt.Errorf("printify credentials are not configured")
	}

	var shops []models.PrintifyShop
	if err := ps.getJSON(ctx, ps.baseURL+"/shops.json", &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

func (ps *PrintifyService) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build printify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+ps.apiKey)

	resp, err := ps.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("printify request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read printify response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("❌ getJSON: Printify %s returned status=%d body=%s", url, resp.StatusCode, string(body))
		return fmt.Errorf("printify returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode printify response: %w", err)
	}
	return nil
}

// leadingInt parses the integer prefix of a variant title, e.g. 30 from
// "30x40 cm". Titles without a numeric prefix sort last.
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
