package service

import (
	"strconv"

	"soul-studio-art/models"
)

// externalIDPrefix namespaces Shopify order ids inside Printify
const externalIDPrefix = "shopify-order-"

// placeholderField replaces optional shipping fields that arrived empty.
// Printify has rejected absent fields inconsistently in the past, so
// every field is sent with an explicit value.
const placeholderField = "-"

// Fixed placement: the artwork is centered in the front print area at
// full scale with no rotation
const (
	placementRegionX     = 0.5
	placementRegionY     = 0.5
	placementRegionScale = 1
	placementRegionAngle = 0
)

const defaultShippingMethod = 1

// ExternalOrderID derives the Printify external id from the Shopify
// order id alone. It must stay a pure function of the order id: no
// timestamp, no random suffix. Printify's duplicate detection on this
// value is the only defense against a redelivered webhook producing a
// second physical order.
func ExternalOrderID(orderID int64) string {
	return externalIDPrefix + strconv.FormatInt(orderID, 10)
}

// BuildFulfillmentRequest assembles the Printify order payload from the
// inbound order and its normalized personalized items. Pure data
// transformation; no network calls happen here.
func BuildFulfillmentRequest(order *models.ShopifyOrder, items []models.PersonalizedItem) *models.PrintifyOrderRequest {
	lineItems := make([]models.PrintifyLineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, models.PrintifyLineItem{
			VariantID:       item.VariantID,
			BlueprintID:     item.BlueprintID,
			PrintProviderID: item.PrintProviderID,
			Quantity:        item.Quantity,
			PrintAreas: models.PrintAreas{
				Front: []models.PrintPlacement{
					{
						Src:   item.ImageURL,
						X:     placementRegionX,
						Y:     placementRegionY,
						Scale: placementRegionScale,
						Angle: placementRegionAngle,
					},
				},
			},
		})
	}

	return &models.PrintifyOrderRequest{
		ExternalID:               ExternalOrderID(order.ID),
		LineItems:                lineItems,
		ShippingMethod:           defaultShippingMethod,
		SendShippingNotification: false,
		AddressTo:                buildAddress(order),
	}
}

// buildAddress maps the Shopify shipping block to Printify's schema,
// coercing empty optional fields to an explicit placeholder
func buildAddress(order *models.ShopifyOrder) models.PrintifyAddress {
	addr := models.PrintifyAddress{Email: order.ContactEmail}

	shipping := order.ShippingAddress
	if shipping == nil {
		shipping = &models.ShippingAddress{}
	}

	addr.FirstName = shipping.FirstName
	addr.LastName = shipping.LastName
	addr.Country = shipping.CountryCode
	addr.Region = shipping.ProvinceCode
	addr.Address1 = shipping.Address1
	addr.Address2 = orPlaceholder(shipping.Address2)
	addr.City = shipping.City
	addr.Zip = shipping.Zip
	addr.Phone = orPlaceholder(shipping.Phone)

	return addr
}

func orPlaceholder(value string) string {
	if value == "" {
		return placeholderField
	}
	return value
}
