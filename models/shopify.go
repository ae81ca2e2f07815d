package models

// ShopifyOrder represents the order payload Shopify sends on the
// orders/create webhook topic. Only the fields this service reads are
// declared; the rest of the payload is ignored on decode.
type ShopifyOrder struct {
	ID              int64             `json:"id"`
	OrderNumber     int64             `json:"order_number"`
	ContactEmail    string            `json:"contact_email"`
	LineItems       []ShopifyLineItem `json:"line_items"`
	ShippingAddress *ShippingAddress  `json:"shipping_address"`
}

// ShopifyLineItem is one purchased unit within a Shopify order
type ShopifyLineItem struct {
	ID         int64          `json:"id"`
	SKU        string         `json:"sku"`
	Title      string         `json:"title"`
	Quantity   int            `json:"quantity"`
	VariantID  int64          `json:"variant_id"`
	Properties []LineProperty `json:"properties"`
}

// LineProperty is one custom property attached to a line item at checkout.
// Shopify serializes properties as an array of name/value pairs.
type LineProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PropertyMap returns the line item's custom properties as a string lookup.
// Later duplicates win, matching how Shopify renders repeated properties.
func (li *ShopifyLineItem) PropertyMap() map[string]string {
	props := make(map[string]string, len(li.Properties))
	for _, p := range li.Properties {
		props[p.Name] = p.Value
	}
	return props
}

// ShippingAddress is the destination block of a Shopify order
type ShippingAddress struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	ProvinceCode string `json:"province_code"`
	CountryCode  string `json:"country_code"`
	Zip          string `json:"zip"`
	Phone        string `json:"phone"`
}
