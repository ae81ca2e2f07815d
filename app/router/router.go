package router

import (
	"net/http"

	"soul-studio-art/app/controller"
)

type Controllers struct {
	Webhook     *controller.WebhookController
	Revelation  *controller.RevelationController
	Product     *controller.ProductController
	Fulfillment *controller.FulfillmentController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Shopify order webhook
	http.HandleFunc("/webhooks/orders", controllers.Webhook.HandleOrderCreated)

	// Generation endpoints
	http.HandleFunc("/api/revelation", controllers.Revelation.GenerateRevelation)
	http.HandleFunc("/api/revelation/text", controllers.Revelation.GenerateText)
	http.HandleFunc("/api/revelation/image", controllers.Revelation.GenerateImage)
	http.HandleFunc("/api/revelation/preview", controllers.Revelation.Preview)

	// Printify catalog
	http.HandleFunc("/api/products", controllers.Product.GetProducts)

	// Admin/debug routes
	http.HandleFunc("/admin/printify/shops", controllers.Product.GetShops)
	http.HandleFunc("/admin/fulfillments", controllers.Fulfillment.ListFulfillments)
}
