package routes

import (
	"net/http"
	"time"

	"github.com/pamleeskitchen/bakehouse/app/controllers"
	"github.com/pamleeskitchen/bakehouse/app/graph"
	"github.com/pamleeskitchen/bakehouse/app/services"
	"github.com/pamleeskitchen/bakehouse/pkg/logger"
	"github.com/pamleeskitchen/bakehouse/pkg/metrics"
	"github.com/pamleeskitchen/bakehouse/pkg/middleware"
	"github.com/pamleeskitchen/bakehouse/pkg/response"
	"github.com/pamleeskitchen/bakehouse/pkg/router"
	"github.com/pamleeskitchen/bakehouse/pkg/ws"
)

// RegisterAPI mounts every route of the storefront and admin API.
func RegisterAPI(r *router.Router, orderFeed *ws.Hub) {
	authController := controllers.NewAuthController()
	catalogController := controllers.NewCatalogController()
	cartController := controllers.NewCartController()
	orderController := controllers.NewOrderController()
	contentController := controllers.NewContentController()
	adminController := controllers.NewAdminController()

	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	api := r.Group("/api")

	// Auth. Signup and login are rate limited against brute force.
	authLimit := middleware.RateLimit(10, time.Minute)
	api.Post("/auth/signup", "auth.signup", authController.Register, authLimit)
	api.Post("/auth/login", "auth.login", authController.Login, authLimit)
	api.Post("/auth/logout", "auth.logout", authController.Logout)
	api.Get("/auth/user", "auth.user", authController.Me, middleware.Auth)

	// Public catalog.
	api.Get("/products", "products.index", catalogController.Index)
	api.Get("/products/categories", "products.categories", catalogController.Categories)
	api.Get("/products/{id}", "products.show", catalogController.Show)

	// Homepage extras.
	api.Get("/specials", "specials.index", contentController.Specials)
	api.Get("/gallery", "gallery.index", contentController.Gallery)
	api.Post("/contact", "contact.submit", contentController.Contact, middleware.RateLimit(5, time.Minute))

	// Session cart.
	api.Get("/cart", "cart.show", cartController.Show)
	api.Post("/cart/items", "cart.add", cartController.AddItem)
	api.Put("/cart/items/{productId}", "cart.update", cartController.UpdateItem)
	api.Delete("/cart/items/{productId}", "cart.remove", cartController.RemoveItem)
	api.Delete("/cart", "cart.clear", cartController.Clear)

	// Checkout and order tracking. Guests can order; auth is optional.
	api.Get("/checkout/quote", "checkout.quote", orderController.Quote)
	api.Post("/orders", "orders.create", orderController.Create, middleware.OptionalAuth, middleware.RateLimit(10, time.Minute))
	api.Get("/orders/track/{orderNumber}", "orders.track", orderController.Track)
	api.Get("/orders/track/{orderNumber}/events", "orders.events", orderController.Stream)
	api.Post("/orders/{id}/cancel", "orders.cancel", orderController.Cancel)
	api.Get("/orders", "orders.history", orderController.History, middleware.Auth)

	// Read-only GraphQL over the catalog.
	if schema, err := graph.NewSchema(services.NewCatalogService(), services.NewContentService()); err == nil {
		api.Post("/graphql", "graphql", graph.Handler(schema))
	} else {
		logger.Error("graphql schema failed to build", "error", err)
	}

	// Admin panel.
	admin := api.Group("/admin", middleware.Auth, middleware.Admin)

	admin.Get("/products", "admin.products.index", adminController.Products)
	admin.Post("/products", "admin.products.create", adminController.CreateProduct)
	admin.Put("/products/{id}", "admin.products.update", adminController.UpdateProduct)
	admin.Patch("/products/{id}", "", adminController.UpdateProduct)
	admin.Patch("/products/{id}/stock", "admin.products.stock", adminController.ToggleProductStock)
	admin.Delete("/products/{id}", "admin.products.delete", adminController.DeleteProduct)

	admin.Get("/orders", "admin.orders.index", adminController.Orders)
	admin.Get("/orders/stats", "admin.orders.stats", adminController.OrderStats)
	admin.Get("/orders/{id}", "admin.orders.show", adminController.Order)
	admin.Patch("/orders/{id}/status", "admin.orders.status", adminController.UpdateOrderStatus)

	admin.Get("/specials", "admin.specials.index", adminController.Specials)
	admin.Post("/specials", "admin.specials.create", adminController.CreateSpecial)
	admin.Put("/specials/{id}", "admin.specials.update", adminController.UpdateSpecial)
	admin.Patch("/specials/{id}", "", adminController.UpdateSpecial)
	admin.Delete("/specials/{id}", "admin.specials.delete", adminController.DeleteSpecial)

	admin.Post("/gallery", "admin.gallery.create", adminController.CreateGalleryImage)
	admin.Post("/gallery/upload", "admin.gallery.upload", adminController.UploadGalleryImage)
	admin.Delete("/gallery/{id}", "admin.gallery.delete", adminController.DeleteGalleryImage)

	admin.Get("/messages", "admin.messages.index", adminController.ContactMessages)
	admin.Patch("/messages/{id}/read", "admin.messages.read", adminController.MarkMessageRead)

	admin.Get("/customers", "admin.customers.index", adminController.Customers)
	admin.Get("/customers/{id}/orders", "admin.customers.orders", adminController.CustomerOrders)

	admin.Get("/settings", "admin.settings.index", adminController.Settings)
	admin.Put("/settings", "admin.settings.update", adminController.UpdateSettings)

	// Live order feed for the admin dashboard.
	admin.Get("/orders/feed", "admin.orders.feed", func(w http.ResponseWriter, r *http.Request) {
		ws.Upgrade(w, r, orderFeed)
	})
}
