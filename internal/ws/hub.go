package ws

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Event is one push notification as it travels to viewers. Events are
// ephemeral: a viewer that connects after publication never sees it.
type Event struct {
	Name    string `json:"event"`
	Message string `json:"message"`
}

// Hub is a volatile best-effort fan-out. The run loop owns the subscriber
// set, so connect/disconnect and publish are serialized and a publish never
// iterates a torn view.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	clients    map[uuid.UUID]*Client
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 16),
		clients:    make(map[uuid.UUID]*Client),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.send)
			}
			return

		case client := <-h.register:
			h.clients[client.id] = client
			h.logger.Info("viewer connected", "client_id", client.id, "viewers", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
				h.logger.Info("viewer disconnected", "client_id", client.id, "viewers", len(h.clients))
			}

		case event := <-h.broadcast:
			for id, client := range h.clients {
				select {
				case client.send <- event:
				default:
					// viewer is not draining; evict it rather than stall the fan-out
					delete(h.clients, id)
					close(client.send)
					h.logger.Warn("viewer evicted, send buffer full", "client_id", id)
				}
			}
		}
	}
}

// Publish delivers event to every viewer connected at the moment the run
// loop picks it up. A failing or slow viewer never errors the publisher.
func (h *Hub) Publish(event Event) {
	h.broadcast <- event
}

func (h *Hub) Subscribe(client *Client) {
	h.register <- client
}

func (h *Hub) Unsubscribe(client *Client) {
	h.unregister <- client
}
