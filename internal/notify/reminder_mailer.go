package notify

import (
	"context"
	"fmt"
	"net/http"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"
)

// ReminderMailer implements usecase.ReminderMailer over SendGrid. Unlike the
// booking fan-out, reminders are sent synchronously by the sweep so that an
// unsent row stays unsent on failure.
type ReminderMailer struct {
	mailer *SendGridMailer
}

func NewReminderMailer(cfg config.NotifyConfig) *ReminderMailer {
	if cfg.SendGridAPIKey == "" || cfg.MailFrom == "" {
		return &ReminderMailer{}
	}
	client := &http.Client{Timeout: cfg.Timeout}
	return &ReminderMailer{mailer: NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFrom, client)}
}

func (m *ReminderMailer) SendReminder(ctx context.Context, r usecase.ReminderView) error {
	if m.mailer == nil {
		return errs.New("リマインダーメールの送信設定がありません")
	}

	subject := "【ご予約リマインダー】明日のご予約のお知らせ"
	body := fmt.Sprintf(
		"%s 様\n\n明日のご予約をお知らせいたします。\n\nメニュー: %s\n日付: %s\n時間: %s\n\nご来店をお待ちしております。",
		r.CustomerName, r.ServiceName, r.Date.String(), r.SlotTime.String(),
	)
	return m.mailer.Send(ctx, r.Email, subject, body)
}
