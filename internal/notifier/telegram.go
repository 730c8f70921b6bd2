package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vldmrch/storefront-orders/internal/config"
	"github.com/vldmrch/storefront-orders/internal/entities"
)

// Sender delivers order notifications to a fixed Telegram chat via the
// Bot API. Send reports delivery as a bool and never returns an error:
// the notification channel is best-effort by contract.
type Sender struct {
	logger  *slog.Logger
	client  *http.Client
	apiBase string
	token   string
	chatID  string
}

func NewSender(logger *slog.Logger, cfg config.Telegram) *Sender {
	return &Sender{
		logger:  logger.With(slog.String("service", "telegram")),
		client:  &http.Client{Timeout: cfg.SendTimeout},
		apiBase: cfg.APIBase,
		token:   cfg.BotToken,
		chatID:  cfg.ChatID,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

func (s *Sender) Send(ctx context.Context, order entities.Order) bool {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    s.chatID,
		Text:      FormatOrderMessage(order),
		ParseMode: "Markdown",
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode telegram message", slog.Any("error", err))
		return false
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build telegram request", slog.Any("error", err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to send telegram message",
			slog.Any("error", err), slog.String("order_id", order.ID))
		return false
	}
	defer resp.Body.Close()

	var answer sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		s.logger.ErrorContext(ctx, "failed to decode telegram response", slog.Any("error", err))
		return false
	}

	if resp.StatusCode != http.StatusOK || !answer.OK {
		s.logger.ErrorContext(ctx, "telegram api rejected message",
			slog.Int("status", resp.StatusCode),
			slog.String("description", answer.Description),
			slog.String("order_id", order.ID))
		return false
	}

	notificationsSent.Inc()
	s.logger.InfoContext(ctx, "order sent to telegram", slog.String("order_id", order.ID))
	return true
}

// FormatOrderMessage renders the fixed notification template. Absent
// optional fields render as N/A so the message shape is stable.
func FormatOrderMessage(order entities.Order) string {
	return fmt.Sprintf(`
*🔔 New Order Received!*

*Customer Details:*
📝 Name: %s
📧 Email: %s
📱 Phone: %s
🌎 Country: %s
👤 Username: %s

*Order Information:*
💳 Selected Card: %s
✅ Verification Status: %s
📬 Preferred Contact: %s
📝 Message: %s

*Order ID:* `+"`%s`"+`
*Received:* %s
`,
		orNA(order.Name), orNA(order.Email), orNA(order.Phone),
		orNA(order.Country), orNA(order.Username),
		orNA(order.SelectedCard), orNA(order.VerificationStatus),
		orNA(order.ContactMethod), orNA(order.Message),
		order.ID, order.CreatedAt.Format(time.RFC1123),
	)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
