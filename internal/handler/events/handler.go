package events

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	eventsvc "github.com/zhouzirui/pokedex/backend/internal/service/events"
	"github.com/zhouzirui/pokedex/backend/pkg/utils"
)

const (
	keepAliveInterval = 15 * time.Second
	writeWait         = 10 * time.Second
)

// Handler streams selection changes to browsers over SSE or websocket.
type Handler struct {
	hub      *eventsvc.Hub
	upgrader websocket.Upgrader
}

// New creates an events handler backed by hub.
func New(hub *eventsvc.Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the stream endpoints on the /api router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/pokemons/events", h.handleSSE)
	r.Get("/ws", h.handleWebSocket)
}

func (h *Handler) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	id, ch, cancel := h.hub.Subscribe()
	defer cancel()

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	if err := utils.SendSSEComment(w, flusher, "connected"); err != nil {
		return
	}
	log.Printf("[events] sse subscriber=%s connected", id)

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[events] sse subscriber=%s disconnected", id)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := utils.SendSSEEvent(w, flusher, event.Type, event); err != nil {
				log.Printf("[events] sse subscriber=%s write failed: %v", id, err)
				return
			}
		case <-ticker.C:
			if err := utils.SendSSEComment(w, flusher, "keep-alive"); err != nil {
				return
			}
		}
	}
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[events] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	id, ch, cancel := h.hub.Subscribe()
	defer cancel()
	log.Printf("[events] websocket subscriber=%s connected", id)

	// The client never sends data; reading only detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			log.Printf("[events] websocket subscriber=%s disconnected", id)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("[events] websocket subscriber=%s write failed: %v", id, err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
