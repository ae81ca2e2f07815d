package service

import (
	"fmt"
	"log"
	"strconv"

	"soul-studio-art/models"
)

// Checkout property keys recognized on a line item. A line item is
// personalized only when all four are present and the three identifiers
// parse as integers; Printify identifiers are carried per line item
// because the catalog has more than one product/blueprint.
const (
	PropertyImageURL    = "custom_image_url"
	PropertyVariantID   = "_printify_variant_id"
	PropertyBlueprintID = "_printify_blueprint_id"
	PropertyProviderID  = "_printify_provider_id"
)

var customizationKeys = []string{
	PropertyImageURL,
	PropertyVariantID,
	PropertyBlueprintID,
	PropertyProviderID,
}

// ExtractPersonalizedItems scans the order's line items for complete
// customization bundles and reduces each to a PersonalizedItem.
//
// Line items without any customization property are regular products and
// are ignored silently. Line items with a partial or malformed bundle
// are excluded and reported in the skipped list with the failing fields;
// one bad line item never aborts the rest of the order. Output preserves
// the input order.
func ExtractPersonalizedItems(items []models.ShopifyLineItem) ([]models.PersonalizedItem, []models.SkippedLineItem) {
	var personalized []models.PersonalizedItem
	var skipped []models.SkippedLineItem

	for i, item := range items {
		props := item.PropertyMap()

		if !hasCustomizationProperties(props) {
			continue
		}

		normalized, reasons := normalizeLineItem(&item, props)
		if len(reasons) > 0 {
			log.Printf("⚠️ ExtractPersonalizedItems: excluding line item index=%d sku=%s: %v", i, item.SKU, reasons)
			skipped = append(skipped, models.SkippedLineItem{
				Index:   i,
				SKU:     item.SKU,
				Title:   item.Title,
				Reasons: reasons,
			})
			continue
		}

		personalized = append(personalized, *normalized)
	}

	return personalized, skipped
}

// hasCustomizationProperties reports whether the property bag carries any
// of the recognized customization keys
func hasCustomizationProperties(props map[string]string) bool {
	for _, key := range customizationKeys {
		if props[key] != "" {
			return true
		}
	}
	return false
}

// normalizeLineItem converts one line item into a PersonalizedItem, or
// returns the list of reasons it cannot be fulfilled. It never returns a
// partially populated item.
func normalizeLineItem(item *models.ShopifyLineItem, props map[string]string) (*models.PersonalizedItem, []string) {
	var reasons []string

	imageURL := props[PropertyImageURL]
	if imageURL == "" {
		reasons = append(reasons, fmt.Sprintf("missing property %q", PropertyImageURL))
	}

	variantID, err := requireIntProperty(props, PropertyVariantID)
	if err != nil {
		reasons = append(reasons, err.Error())
	}
	blueprintID, err := requireIntProperty(props, PropertyBlueprintID)
	if err != nil {
		reasons = append(reasons, err.Error())
	}
	providerID, err := requireIntProperty(props, PropertyProviderID)
	if err != nil {
		reasons = append(reasons, err.Error())
	}

	if len(reasons) > 0 {
		return nil, reasons
	}

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return &models.PersonalizedItem{
		VariantID:       variantID,
		BlueprintID:     blueprintID,
		PrintProviderID: providerID,
		Quantity:        quantity,
		ImageURL:        imageURL,
	}, nil
}

func requireIntProperty(props map[string]string, key string) (int, error) {
	raw := props[key]
	if raw == "" {
		return 0, fmt.Errorf("missing property %q", key)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("property %q is not an integer: %q", key, raw)
	}
	return value, nil
}
