package icon

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/pokedex/backend/internal/service/catalog"
	"github.com/zhouzirui/pokedex/backend/pkg/utils"
)

// Handler serves sprite URLs.
type Handler struct {
	catalog *catalog.Service
}

// New creates an icon handler.
func New(svc *catalog.Service) *Handler {
	return &Handler{catalog: svc}
}

// RegisterRoutes mounts /icon/{name}.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/icon/{name}", h.handleIcon)
}

func (h *Handler) handleIcon(w http.ResponseWriter, r *http.Request) {
	utils.RespondText(w, http.StatusOK, h.catalog.IconURL(chi.URLParam(r, "name")))
}
