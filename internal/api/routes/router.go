package routes

import (
	"net/http"

	"github.com/WambuiJane/visit-stamp-rewards/internal/api/handlers"
	"github.com/WambuiJane/visit-stamp-rewards/internal/api/middleware"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler     *handlers.AuthHandler
	customerHandler *handlers.CustomerHandler
	businessHandler *handlers.BusinessHandler
	reviewHandler   *handlers.ReviewHandler

	sessions middleware.SessionResolver
	metrics  *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	businessHandler *handlers.BusinessHandler,
	reviewHandler *handlers.ReviewHandler,
	sessions middleware.SessionResolver,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		authHandler:     authHandler,
		customerHandler: customerHandler,
		businessHandler: businessHandler,
		reviewHandler:   reviewHandler,

		sessions: sessions,
		metrics:  metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/signup", r.authHandler.SignUp)
	r.mux.HandleFunc("POST /api/auth/signin", r.authHandler.SignIn)
	r.mux.HandleFunc("POST /api/auth/signout", r.authHandler.SignOut)
	r.mux.HandleFunc("GET /api/auth/session", r.authHandler.Session)

	// Customer endpoints
	r.mux.HandleFunc("POST /api/customers", r.customerHandler.Register)
	r.mux.HandleFunc("GET /api/customers/{id}/reviews", r.reviewHandler.ListCustomerReviews)

	// Business endpoints; the owner dashboard routes require a session.
	requireAuth := middleware.AuthMiddleware(r.sessions)
	r.mux.Handle("GET /api/businesses/me", requireAuth(http.HandlerFunc(r.businessHandler.GetMyBusiness)))
	r.mux.Handle("GET /api/businesses/me/stats", requireAuth(http.HandlerFunc(r.businessHandler.GetMyStats)))
	r.mux.Handle("PATCH /api/businesses/me", requireAuth(http.HandlerFunc(r.businessHandler.UpdateMyBusiness)))
	r.mux.HandleFunc("GET /api/businesses", r.businessHandler.ListBusinesses)
	r.mux.HandleFunc("GET /api/businesses/{id}", r.businessHandler.GetBusiness)
	r.mux.HandleFunc("GET /api/businesses/{id}/reviews", r.reviewHandler.ListBusinessReviews)

	// Review endpoints
	r.mux.HandleFunc("POST /api/reviews", r.reviewHandler.SubmitReview)
	r.mux.HandleFunc("GET /api/reviews/mine", r.reviewHandler.ListMyReviews)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so error responses also carry headers
	handler = middleware.CORSMiddleware(handler)

	return handler
}
