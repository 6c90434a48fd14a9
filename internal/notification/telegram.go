package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/ezores/smart-locker-project-sub001/internal/domain"
)

// TelegramNotifier posts reservation lifecycle events to the operator
// chat. Delivery is best effort and never blocks the engine.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation created*\n\n"+"Code: %s\n"+"Locker: %s\n"+"Window (UTC): %s",
		r.ReservationCode, r.LockerID, formatWindow(r),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\n"+"Code: %s\n"+"Locker: %s\n"+"Window (UTC): %s",
		r.ReservationCode, r.LockerID, formatWindow(r),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationExpired(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation expired unused*\n\n"+"Code: %s\n"+"Locker: %s\n"+"Window (UTC): %s",
		r.ReservationCode, r.LockerID, formatWindow(r),
	)
	n.send(ctx, text)
}

func formatWindow(r *domain.Reservation) string {
	return fmt.Sprintf(
		"%s - %s",
		r.StartTime.Format("02.01.2006 15:04"),
		r.EndTime.Format("02.01.2006 15:04"),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
