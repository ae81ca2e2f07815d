package service

import (
	"testing"

	"soul-studio-art/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *models.ShopifyOrder {
	return &models.ShopifyOrder{
		ID:           12345,
		OrderNumber:  1001,
		ContactEmail: "clara@example.com",
		ShippingAddress: &models.ShippingAddress{
			FirstName:    "Clara",
			LastName:     "Martin",
			Address1:     "1 rue de la Paix",
			City:         "Paris",
			ProvinceCode: "IDF",
			CountryCode:  "FR",
			Zip:          "75002",
			Phone:        "+33123456789",
		},
	}
}

func sampleItems() []models.PersonalizedItem {
	return []models.PersonalizedItem{
		{
			VariantID:       111,
			BlueprintID:     222,
			PrintProviderID: 333,
			Quantity:        2,
			ImageURL:        "https://x/img.png",
		},
	}
}

func TestExternalOrderID(t *testing.T) {
	assert.Equal(t, "shopify-order-12345", ExternalOrderID(12345))
}

func TestExternalOrderIDIsPureFunctionOfOrderID(t *testing.T) {
	// Same order id with different shipping data must yield the same
	// correlation id; anything else defeats duplicate detection on
	// redelivered webhooks
	orderA := sampleOrder()
	orderB := sampleOrder()
	orderB.ShippingAddress = &models.ShippingAddress{City: "Lyon", CountryCode: "FR"}
	orderB.ContactEmail = "someone-else@example.com"

	reqA := BuildFulfillmentRequest(orderA, sampleItems())
	reqB := BuildFulfillmentRequest(orderB, sampleItems())

	assert.Equal(t, reqA.ExternalID, reqB.ExternalID)
}

func TestBuildFulfillmentRequest(t *testing.T) {
	req := BuildFulfillmentRequest(sampleOrder(), sampleItems())

	assert.Equal(t, "shopify-order-12345", req.ExternalID)
	require.Len(t, req.LineItems, 1)

	line := req.LineItems[0]
	assert.Equal(t, 111, line.VariantID)
	assert.Equal(t, 222, line.BlueprintID)
	assert.Equal(t, 333, line.PrintProviderID)
	assert.Equal(t, 2, line.Quantity)

	require.Len(t, line.PrintAreas.Front, 1)
	placement := line.PrintAreas.Front[0]
	assert.Equal(t, "https://x/img.png", placement.Src)
	assert.Equal(t, 0.5, placement.X)
	assert.Equal(t, 0.5, placement.Y)
	assert.Equal(t, 1.0, placement.Scale)
	assert.Equal(t, 0.0, placement.Angle)

	assert.False(t, req.SendShippingNotification)
	assert.Equal(t, 1, req.ShippingMethod)
}

func TestBuildFulfillmentRequestAddress(t *testing.T) {
	req := BuildFulfillmentRequest(sampleOrder(), sampleItems())

	addr := req.AddressTo
	assert.Equal(t, "Clara", addr.FirstName)
	assert.Equal(t, "Martin", addr.LastName)
	assert.Equal(t, "clara@example.com", addr.Email)
	assert.Equal(t, "FR", addr.Country)
	assert.Equal(t, "IDF", addr.Region)
	assert.Equal(t, "1 rue de la Paix", addr.Address1)
	assert.Equal(t, "Paris", addr.City)
	assert.Equal(t, "75002", addr.Zip)
	assert.Equal(t, "+33123456789", addr.Phone)
}

func TestBuildFulfillmentRequestCoercesMissingOptionalFields(t *testing.T) {
	order := sampleOrder()
	order.ShippingAddress.Address2 = ""
	order.ShippingAddress.Phone = ""

	req := BuildFulfillmentRequest(order, sampleItems())

	// Optional fields are sent with an explicit placeholder, never omitted
	assert.Equal(t, "-", req.AddressTo.Address2)
	assert.Equal(t, "-", req.AddressTo.Phone)
}

func TestBuildFulfillmentRequestNilShippingAddress(t *testing.T) {
	order := sampleOrder()
	order.ShippingAddress = nil

	req := BuildFulfillmentRequest(order, sampleItems())

	assert.Equal(t, "clara@example.com", req.AddressTo.Email)
	assert.Equal(t, "-", req.AddressTo.Address2)
	assert.Equal(t, "-", req.AddressTo.Phone)
}

func TestBuildFulfillmentRequestPreservesItemOrder(t *testing.T) {
	items := []models.PersonalizedItem{
		{VariantID: 1, BlueprintID: 10, PrintProviderID: 100, Quantity: 1, ImageURL: "https://x/a.png"},
		{VariantID: 2, BlueprintID: 20, PrintProviderID: 200, Quantity: 1, ImageURL: "https://x/b.png"},
	}

	req := BuildFulfillmentRequest(sampleOrder(), items)

	require.Len(t, req.LineItems, 2)
	assert.Equal(t, 1, req.LineItems[0].VariantID)
	assert.Equal(t, 2, req.LineItems[1].VariantID)
}
