package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

// TelegramNotifier delivers booking notices to clients and the next-day
// schedule summary to provider and driver. With no token configured it
// degrades to logging only.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, client *domain.User, b *domain.Booking, svc *domain.Service) {
	text := fmt.Sprintf(
		"*Booking received*\n\nService: %s\nDate: %s at %s\nDistrict: %s\nAmount: %.2f SAR (deposit %.2f)",
		svc.Name,
		b.BookingDate.Format("02 Jan 2006"), b.BookingTime,
		b.Location.District,
		b.Payment.Amount, b.Payment.DepositAmount,
	)
	n.send(ctx, client.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, client *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nDate: %s at %s\nRefunds, if due, are processed by the admin team.",
		b.BookingDate.Format("02 Jan 2006"), b.BookingTime,
	)
	n.send(ctx, client.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyDailySchedule(ctx context.Context, recipients []*domain.User, s *domain.Schedule, bookings []*domain.Booking) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*Schedule for %s — %s district*\n\n", s.Date.Format("02 Jan 2006"), s.District)
	for _, b := range bookings {
		fmt.Fprintf(&sb, "%s — %s, %s\n", b.BookingTime, b.Location.Address, string(b.Status))
	}
	text := sb.String()

	for _, u := range recipients {
		n.send(ctx, u.TelegramChatID, text)
	}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
