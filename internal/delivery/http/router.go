package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"happenly/internal/delivery/http/controllers"
	"happenly/internal/delivery/http/middleware"

	_ "happenly/docs"
)

// NewRouter registers every API route. Mutating event routes and the
// session routes under /auth require a bearer token.
func NewRouter(logger *slog.Logger, eventController *controllers.EventController, authController *controllers.AuthController, auth middleware.Authenticator) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(auth, logger)

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("PATCH /events/{eventID}", requireAuth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(eventController.DeleteEvent))
	mux.HandleFunc("GET /categories", eventController.ListCategories)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("POST /auth/logout", requireAuth(authController.Logout))
	mux.HandleFunc("GET /auth/me", requireAuth(authController.Me))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with CORS and request logging.
func NewHandler(logger *slog.Logger, allowedOrigins []string, router http.Handler) http.Handler {
	return middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, router))
}
