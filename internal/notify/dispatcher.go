package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase"
)

// Dispatcher implements usecase.BookingNotifier. Dispatch happens on a
// detached goroutine with its own deadline so the reservation response never
// waits for an external API.
type Dispatcher struct {
	channels []Channel
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewDispatcher(cfg config.NotifyConfig) *Dispatcher {
	client := &http.Client{Timeout: cfg.Timeout}

	var channels []Channel
	if cfg.SendGridAPIKey != "" && cfg.MailFrom != "" && cfg.MailTo != "" {
		channels = append(channels, &mailChannel{
			mailer: NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFrom, client),
			to:     cfg.MailTo,
		})
	}
	if cfg.LineChannelToken != "" && cfg.LineUserID != "" {
		channels = append(channels, NewLineChannel(cfg.LineChannelToken, cfg.LineUserID, client))
	}

	if len(channels) == 0 {
		slog.Info("通知チャネルが未設定のため、予約通知は送信されません")
	}

	return &Dispatcher{channels: channels, timeout: cfg.Timeout}
}

// NewDispatcherWithChannels is used by tests.
func NewDispatcherWithChannels(channels []Channel, timeout time.Duration) *Dispatcher {
	return &Dispatcher{channels: channels, timeout: timeout}
}

func (d *Dispatcher) BookingCreated(v usecase.BookingView) {
	msg := buildBookingMessage(v)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		var wg sync.WaitGroup
		for _, ch := range d.channels {
			wg.Add(1)
			go func(ch Channel) {
				defer wg.Done()
				if err := ch.Send(ctx, msg); err != nil {
					// 失敗は記録するだけ。再送はしない。
					slog.Warn("予約通知の送信に失敗しました",
						"channel", ch.Name(), "booking_id", v.ID, "error", err.Error())
				}
			}(ch)
		}
		wg.Wait()
	}()
}

// Wait blocks until all in-flight dispatches finish. Used on shutdown and in
// tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func buildBookingMessage(v usecase.BookingView) Message {
	body := fmt.Sprintf(
		"お名前: %s\n電話番号: %s\nメニュー: %s\n日付: %s\n時間: %s\n備考: %s",
		v.CustomerName, v.PhoneNumber, v.ServiceName,
		v.Date.String(), v.SlotTime.String(), v.Notes,
	)
	return Message{
		Subject: "【新規予約】" + v.Date.String() + " " + v.SlotTime.String(),
		Body:    body,
	}
}
