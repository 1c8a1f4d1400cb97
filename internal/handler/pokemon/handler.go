package pokemon

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/pokedex/backend/internal/service/catalog"
	"github.com/zhouzirui/pokedex/backend/pkg/utils"
)

// Handler serves the pokemon catalog endpoints.
type Handler struct {
	catalog *catalog.Service
}

// New creates a pokemon handler.
func New(svc *catalog.Service) *Handler {
	return &Handler{catalog: svc}
}

// RegisterRoutes mounts the catalog routes on r (expected to be the /api router).
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/pokemons", h.handleList)
	r.Get("/pokemons/types", h.handleTypes)
	r.Post("/pokemons/{id:[0-9]+}/toggle_selection", h.handleToggleSelection)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.List(r.Context(), r.URL.Query(), requestBaseURL(r))
	switch {
	case err == nil:
		utils.RespondJSON(w, http.StatusOK, result)
	case errors.Is(err, catalog.ErrInvalidArgument):
		utils.RespondError(w, http.StatusBadRequest, catalog.Message(err))
	case errors.Is(err, catalog.ErrOutOfRange):
		utils.RespondError(w, http.StatusNotFound, catalog.Message(err))
	default:
		log.Printf("[pokemon] list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Error sorting data: "+err.Error())
	}
}

func (h *Handler) handleToggleSelection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondEmpty(w, http.StatusNotFound)
		return
	}

	updated, err := h.catalog.ToggleSelection(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		utils.RespondEmpty(w, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[pokemon] toggle %d failed: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalog.Types(r.Context())
	if err != nil {
		log.Printf("[pokemon] types failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string][]string{"types": types})
}

// requestBaseURL rebuilds the absolute request URL without its query string.
func requestBaseURL(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return &url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path}
}
