package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
)

// LogNotifier writes notifications to the log. It is used when no gateway
// callback is configured.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(l *slog.Logger) *LogNotifier {
	if l == nil {
		l = slog.Default()
	}

	return &LogNotifier{log: l}
}

func (n *LogNotifier) Notify(ctx context.Context, externalID int64, reply chat.Reply) error {
	n.log.InfoContext(ctx, "reminder notification", "user_id", externalID, "text", reply.Text)
	return nil
}

// HTTPNotifier posts notifications to the messaging gateway.
type HTTPNotifier struct {
	url    string
	token  string
	client *http.Client
}

func NewHTTPNotifier(url, token string, timeout time.Duration) *HTTPNotifier {
	return &HTTPNotifier{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

type notification struct {
	UserID  int64        `json:"user_id"`
	Replies []chat.Reply `json:"replies"`
}

func (n *HTTPNotifier) Notify(ctx context.Context, externalID int64, reply chat.Reply) error {
	body, err := json.Marshal(notification{UserID: externalID, Replies: []chat.Reply{reply}})
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("posting notification: unexpected status %d", resp.StatusCode)
	}

	return nil
}
