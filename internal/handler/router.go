package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/pokedex/backend/internal/handler/events"
	"github.com/zhouzirui/pokedex/backend/internal/handler/icon"
	"github.com/zhouzirui/pokedex/backend/internal/handler/pokemon"
	"github.com/zhouzirui/pokedex/backend/internal/handler/static"
	"github.com/zhouzirui/pokedex/backend/internal/metrics"
	middlewarePkg "github.com/zhouzirui/pokedex/backend/internal/middleware"
	"github.com/zhouzirui/pokedex/backend/internal/service/catalog"
	eventService "github.com/zhouzirui/pokedex/backend/internal/service/events"
	"github.com/zhouzirui/pokedex/backend/pkg/utils"
)

// Options carries the optional pieces of the router.
type Options struct {
	StaticDir   string
	CORSOrigins []string
	// Metrics is nil when the prometheus endpoint is disabled.
	Metrics *metrics.Metrics
}

// NewRouter wires HTTP routes to core services.
func NewRouter(catalogSvc *catalog.Service, hub *eventService.Hub, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"records": catalogSvc.Count(),
		})
	})

	icon.New(catalogSvc).RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		api.Use(middlewarePkg.CORS(opts.CORSOrigins))

		pokemon.New(catalogSvc).RegisterRoutes(api)
		if hub != nil {
			events.New(hub).RegisterRoutes(api)
		}
	})

	if opts.StaticDir != "" {
		r.Get("/*", static.New(opts.StaticDir).ServeHTTP)
	}

	return r
}
