package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"alumninexus/internal/delivery/http/controllers"
	"alumninexus/internal/delivery/http/middleware"
	"alumninexus/internal/domain"
)

// RouterConfig bundles the controllers and the role gate settings.
type RouterConfig struct {
	Blogs        *controllers.BlogController
	Broadcasts   *controllers.BroadcastController
	Events       *controllers.EventController
	Auth         *controllers.AuthController
	Verifier     domain.RoleTokenVerifier
	AuthDisabled bool
}

// NewRouter initializes the HTTP router with all application routes.
// Reads are open; mutating entity routes require an admin role token.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	admin := middleware.RequireRole(cfg.Verifier, cfg.AuthDisabled, domain.RoleAdmin)
	anyRole := middleware.RequireRole(cfg.Verifier, cfg.AuthDisabled, domain.RoleStudent, domain.RoleAdmin)

	// Blogs
	mux.HandleFunc("GET /api/blogs", cfg.Blogs.ListBlogs)
	mux.HandleFunc("GET /api/blogs/{id}", cfg.Blogs.GetBlog)
	mux.HandleFunc("POST /api/blogs", admin(cfg.Blogs.CreateBlog))
	mux.HandleFunc("PUT /api/blogs/{id}", admin(cfg.Blogs.UpdateBlog))
	mux.HandleFunc("DELETE /api/blogs/{id}", admin(cfg.Blogs.DeleteBlog))

	// Broadcasts
	mux.HandleFunc("GET /api/broadcasts", cfg.Broadcasts.ListBroadcasts)
	mux.HandleFunc("GET /api/broadcasts/{id}", cfg.Broadcasts.GetBroadcast)
	mux.HandleFunc("POST /api/broadcasts", admin(cfg.Broadcasts.CreateBroadcast))
	mux.HandleFunc("PUT /api/broadcasts/{id}", admin(cfg.Broadcasts.UpdateBroadcast))
	mux.HandleFunc("DELETE /api/broadcasts/{id}", admin(cfg.Broadcasts.DeleteBroadcast))

	// Events
	mux.HandleFunc("GET /api/events", cfg.Events.ListEvents)
	mux.HandleFunc("GET /api/events/{id}", cfg.Events.GetEvent)
	mux.HandleFunc("POST /api/events", admin(cfg.Events.CreateEvent))
	mux.HandleFunc("PUT /api/events/{id}", admin(cfg.Events.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{id}", admin(cfg.Events.DeleteEvent))

	// Auth
	mux.HandleFunc("POST /api/auth/role", cfg.Auth.SelectRole)
	mux.HandleFunc("GET /api/auth/role", anyRole(cfg.Auth.CurrentRole))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
