package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ytwatch/internal/domain/consts"
	"ytwatch/internal/logging"
)

// Client wraps the Telegram bot connection with the send retry
// policy and startup resilience from spec §4.6.
type Client struct {
	bot *tgbotapi.BotAPI
}

// NewClient starts the bot, retrying up to consts.BotStartupRetries
// times with a linearly increasing delay (attempt * BotStartupBaseDelay).
// On final failure it returns ErrBotStartupFailed.
func NewClient(token string) (*Client, error) {
	var bot *tgbotapi.BotAPI
	var err error

	for attempt := 1; attempt <= consts.BotStartupRetries; attempt++ {
		bot, err = tgbotapi.NewBotAPI(token)
		if err == nil {
			break
		}
		logging.L().Warn().Err(err).Int("attempt", attempt).Msg("telegram bot startup failed")
		if attempt == consts.BotStartupRetries {
			return nil, fmt.Errorf("%w: %v", ErrBotStartupFailed, err)
		}
		time.Sleep(time.Duration(attempt) * consts.BotStartupBaseDelay)
	}

	return &Client{bot: bot}, nil
}

// SendMessage sends a Markdown V2 text message, optionally as a
// reply, returning the sent message's id for reply-routing.
func (c *Client) SendMessage(chatID int64, text string, replyToMessageID int) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if replyToMessageID != 0 {
		msg.ReplyToMessageID = replyToMessageID
	}

	var sent tgbotapi.Message
	err := c.withRetry(func() error {
		var sendErr error
		sent, sendErr = c.bot.Send(msg)
		return sendErr
	})
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// SendVideo uploads a local video file with a Markdown V2 caption.
func (c *Client) SendVideo(chatID int64, filePath, caption string) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(filePath))
	video.Caption = caption
	video.ParseMode = tgbotapi.ModeMarkdownV2

	return c.withRetry(func() error {
		_, err := c.bot.Send(video)
		return err
	})
}

// Updates returns the long-poll update channel for the interactive
// handler (spec §4.6 Interactive handler).
func (c *Client) Updates(ctx context.Context) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	return c.bot.GetUpdatesChan(u)
}

// StopReceivingUpdates halts long-polling on shutdown.
func (c *Client) StopReceivingUpdates() {
	c.bot.StopReceivingUpdates()
}

// withRetry applies the send retry policy: up to
// consts.NotifierSendRetries attempts, a fixed consts.NotifierRetryDelay
// between them; a context cancellation is treated as non-retryable.
func (c *Client) withRetry(send func() error) error {
	var lastErr error
	for attempt := 1; attempt <= consts.NotifierSendRetries; attempt++ {
		err := send()
		if err == nil {
			return nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", errNonRetryable, err)
		}

		logging.L().Warn().Err(err).Int("attempt", attempt).Msg("telegram send failed")
		if attempt < consts.NotifierSendRetries {
			time.Sleep(consts.NotifierRetryDelay)
		}
	}
	return fmt.Errorf("telegram send failed after %d attempts: %w", consts.NotifierSendRetries, lastErr)
}
