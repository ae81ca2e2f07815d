package controller

import (
	"log"
	"net/http"

	"soul-studio-art/models"
	"soul-studio-art/service"
)

// ProductController handles HTTP requests for the Printify catalog
type ProductController struct {
	printifyService service.PrintifyServiceInterface
	productID       string
}

// NewProductController creates a new ProductController
func NewProductController(printifyService service.PrintifyServiceInterface, productID string) *ProductController {
	return &ProductController{
		printifyService: printifyService,
		productID:       productID,
	}
}

// GetProducts handles GET /api/products
// Returns the configured product with its enabled variants, as a
// single-element list for the storefront
func (c *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}

	if c.productID == "" {
		writeJSONError(w, http.StatusInternalServerError, "printify product is not configured")
		return
	}

	product, err := c.printifyService.GetProduct(r.Context(), c.productID)
	if err != nil {
		log.Printf("❌ GetProducts: failed to fetch product: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch printify product")
		return
	}

	writeJSON(w, http.StatusOK, []models.ProductSummary{*product})
}

// GetShops handles GET /admin/printify/shops
// Debug endpoint used to discover the shop id for the configured API key
func (c *ProductController) GetShops(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetShops: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}

	shops, err := c.printifyService.ListShops(r.Context())
	if err != nil {
		log.Printf("❌ GetShops: failed to list shops: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to list printify shops")
		return
	}

	writeJSON(w, http.StatusOK, shops)
}
