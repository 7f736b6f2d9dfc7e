package http

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"livequiz-service/internal/app"
	"livequiz-service/internal/domain"
)

// WSHandler streams session events to websocket clients. Answers themselves
// travel over the REST API; the socket is outbound-only.
type WSHandler struct {
	service  *app.SessionService
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.SessionService, hub *Hub) *WSHandler {
	return &WSHandler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the request and forwards the session's events until the
// client disconnects. role=admin additionally receives admins-only events.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "missing sessionId", http.StatusBadRequest)
		return
	}
	admin := r.URL.Query().Get("role") == "admin"

	if _, err := h.service.GetSession(r.Context(), sessionID); err != nil {
		status, message := statusForError(err)
		http.Error(w, message, status)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	events, cancel := h.hub.Subscribe(sessionID, admin)
	defer cancel()

	// Ack first so clients know the subscription is live before any event
	// can be published for them.
	if err := conn.WriteJSON(domain.Event{Type: domain.EventSubscribed, SessionID: sessionID}); err != nil {
		log.Printf("ws write error: %v", err)
		return
	}

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for event := range events {
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	// Drain the connection; the read loop only notices disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	cancel()
	<-writerDone
}
