package models

// PersonalizedItem is a line item reduced to the fields Printify needs.
// It is only ever derived from a ShopifyLineItem that carried a complete
// customization bundle; it is never constructed from partial data.
type PersonalizedItem struct {
	VariantID       int    `json:"variantId"`
	BlueprintID     int    `json:"blueprintId"`
	PrintProviderID int    `json:"printProviderId"`
	Quantity        int    `json:"quantity"`
	ImageURL        string `json:"imageUrl"`
}

// SkippedLineItem records a line item that carried customization
// properties but could not be fulfilled, and why
type SkippedLineItem struct {
	Index   int      `json:"index"`
	SKU     string   `json:"sku,omitempty"`
	Title   string   `json:"title,omitempty"`
	Reasons []string `json:"reasons"`
}

// SubmitOutcome classifies the result of a Printify order submission
type SubmitOutcome string

const (
	// OutcomeCreated means Printify accepted the order
	OutcomeCreated SubmitOutcome = "created"
	// OutcomeAlreadyExists means Printify rejected the order because the
	// external id was already submitted; treated as idempotent success
	OutcomeAlreadyExists SubmitOutcome = "already_exists"
	// OutcomeFailed means any other rejection, including timeouts
	OutcomeFailed SubmitOutcome = "failed"
)

// SubmitResult is the classified result of one submission attempt
type SubmitResult struct {
	Outcome         SubmitOutcome `json:"outcome"`
	PrintifyOrderID string        `json:"printifyOrderId,omitempty"`
	ErrorDetail     string        `json:"errorDetail,omitempty"`
}

// FulfillmentRecord is one audit row of a webhook invocation that
// reached the submitter
type FulfillmentRecord struct {
	ID              int64  `json:"id"`
	ShopifyOrderID  int64  `json:"shopifyOrderId"`
	OrderNumber     int64  `json:"orderNumber"`
	ExternalID      string `json:"externalId"`
	Outcome         string `json:"outcome"`
	PrintifyOrderID string `json:"printifyOrderId,omitempty"`
	ErrorDetail     string `json:"errorDetail,omitempty"`
	CreatedAt       string `json:"createdAt"`
}

// FulfillmentListResponse is the response for listing fulfillment records
type FulfillmentListResponse struct {
	Fulfillments []FulfillmentRecord `json:"fulfillments"`
}
