package message

//go:generate mockgen -source=handler.go -destination=handler_mock.go -package=message

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
)

type Dispatcher interface {
	Handle(ctx context.Context, ev chat.Event) ([]chat.Reply, error)
}

type Handler struct {
	dispatcher Dispatcher
}

func NewHandler(dispatcher Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.receive)
}

type messageRequest struct {
	UserID  int64  `json:"user_id"`
	Name    string `json:"name,omitempty"`
	Text    string `json:"text"`
	Payload string `json:"payload,omitempty"`
}

type messageResponse struct {
	Replies []chat.Reply `json:"replies"`
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.UserID == 0 {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	if req.Text == "" && req.Payload == "" {
		http.Error(w, "text or payload is required", http.StatusBadRequest)
		return
	}

	replies, err := h.dispatcher.Handle(r.Context(), chat.Event{
		UserID:  req.UserID,
		Name:    req.Name,
		Text:    req.Text,
		Payload: req.Payload,
	})
	if err != nil {
		slog.Error("failed to handle message", "error", err, "user_id", req.UserID)
		http.Error(w, "failed to handle message", http.StatusBadGateway)

		return
	}

	if replies == nil {
		replies = []chat.Reply{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(messageResponse{Replies: replies}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
