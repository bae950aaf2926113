package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rotikita/rotikita-backend/api/controllers"
	"github.com/rotikita/rotikita-backend/api/middleware"
	"github.com/rotikita/rotikita-backend/internal/cart"
	"github.com/rotikita/rotikita-backend/internal/orders"
	"github.com/rotikita/rotikita-backend/internal/settings"
	"github.com/rotikita/rotikita-backend/pkg/config"
	"github.com/rotikita/rotikita-backend/pkg/logger"
	"github.com/rotikita/rotikita-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	settingsService settings.Service,
	cartService cart.Service,
	ordersService orders.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOriginList()),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(redisClient, cfg.Checkout.IdempotencyTTL, logg))

		r.Get("/settings", controllers.SettingsFetch(settingsService, logg))

		r.Route("/cart/{cartToken}", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{lineId}", controllers.CartUpdateQuantity(cartService, logg))
			r.Delete("/items/{lineId}", controllers.CartRemoveItem(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
		})

		r.Post("/checkout/quote", controllers.CheckoutQuote(settingsService, logg))
		r.Post("/checkout", controllers.Checkout(ordersService, logg))

		r.Get("/orders/{orderNumber}", controllers.OrderTrack(ordersService, logg))
	})

	// Admin authentication fronts these routes at the gateway.
	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(redisClient, cfg.Checkout.IdempotencyTTL, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/{orderId}", controllers.AdminOrderDetail(ordersService, logg))
			r.Patch("/{orderId}/status", controllers.AdminOrderStatusPatch(ordersService, logg))
			r.Post("/bulk-delete", controllers.AdminOrdersBulkDelete(ordersService, logg))
		})
	})

	return r
}
