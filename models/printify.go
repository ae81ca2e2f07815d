package models

// PrintifyOrderRequest is the payload POSTed to Printify's orders endpoint.
// ExternalID is the idempotency key: Printify rejects a second order with
// the same external id, which is how redelivered webhooks are deduplicated.
type PrintifyOrderRequest struct {
	ExternalID               string             `json:"external_id"`
	LineItems                []PrintifyLineItem `json:"line_items"`
	ShippingMethod           int                `json:"shipping_method"`
	SendShippingNotification bool               `json:"send_shipping_notification"`
	AddressTo                PrintifyAddress    `json:"address_to"`
}

// PrintifyLineItem is one line of a Printify order
type PrintifyLineItem struct {
	VariantID       int        `json:"variant_id"`
	BlueprintID     int        `json:"blueprint_id"`
	PrintProviderID int        `json:"print_provider_id"`
	Quantity        int        `json:"quantity"`
	PrintAreas      PrintAreas `json:"print_areas"`
}

// PrintAreas holds the artwork placements per named print region.
// Only the front region is used.
type PrintAreas struct {
	Front []PrintPlacement `json:"front"`
}

// PrintPlacement positions one image inside a print area
type PrintPlacement struct {
	Src   string  `json:"src"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
	Angle float64 `json:"angle"`
}

// PrintifyAddress is the shipping destination in Printify's schema.
// No field uses omitempty: Printify has historically been inconsistent
// about absent vs empty fields, so every field is always sent.
type PrintifyAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// PrintifyOrderResponse is the success body of an order submission
type PrintifyOrderResponse struct {
	ID string `json:"id"`
}

// PrintifyErrorResponse is the structured error body Printify returns on
// a rejected request
type PrintifyErrorResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Errors  struct {
		Reason string `json:"reason"`
		Code   int    `json:"code"`
	} `json:"errors"`
}

// PrintifyProduct is the product detail returned by Printify's catalog API
type PrintifyProduct struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	BlueprintID     int               `json:"blueprint_id"`
	PrintProviderID int               `json:"print_provider_id"`
	Variants        []PrintifyVariant `json:"variants"`
}

// PrintifyVariant is one sellable variant of a Printify product.
// Price is in cents.
type PrintifyVariant struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	SKU       string `json:"sku"`
	Price     int    `json:"price"`
	IsEnabled bool   `json:"is_enabled"`
}

// PrintifyShop identifies one shop connected to a Printify account
type PrintifyShop struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	SalesChannel string `json:"sales_channel"`
}

// ProductSummary is the storefront-facing view of a Printify product
type ProductSummary struct {
	Title           string           `json:"title"`
	BlueprintID     int              `json:"blueprint_id"`
	PrintProviderID int              `json:"print_provider_id"`
	Variants        []VariantSummary `json:"variants"`
}

// VariantSummary is a variant with its price converted from cents
type VariantSummary struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	SKU   string  `json:"sku,omitempty"`
}
