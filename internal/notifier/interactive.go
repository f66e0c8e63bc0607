package notifier

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ytwatch/internal/logging"
)

// replyIDPattern extracts the "(id=<user_id>)" token embedded in a
// forwarded message so an admin's reply can be routed back to the
// original sender (spec §4.6 Interactive handler).
var replyIDPattern = regexp.MustCompile(`\(id=(-?\d+)\)`)

const startGreeting = "Привет! Я слежу за новыми видео отслеживаемых каналов и пришлю уведомление, как только что-то выйдет."

// RunInteractiveHandler consumes the bot's update stream and
// implements the /start greeting and the admin direct-message relay
// (spec §4.6 Interactive handler).
func RunInteractiveHandler(ctx context.Context, client *Client, admins []int64) {
	updates := client.Updates(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			handleUpdate(client, admins, update)
		}
	}
}

func handleUpdate(client *Client, admins []int64, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		if _, err := client.SendMessage(msg.Chat.ID, escapeMarkdownV2(startGreeting), 0); err != nil {
			logging.L().Error().Err(err).Msg("failed to send /start greeting")
		}

	case isAdmin(msg.From.ID, admins) && msg.ReplyToMessage != nil:
		routeAdminReply(client, admins, msg)

	default:
		relayToAdmins(client, admins, msg)
	}
}

func relayToAdmins(client *Client, admins []int64, msg *tgbotapi.Message) {
	name := senderName(msg.From)
	text := fmt.Sprintf("Сообщение от %s (id=%d):\n%s", name, msg.From.ID, msg.Text)
	escaped := escapeMarkdownV2(text)
	for _, admin := range admins {
		if _, err := client.SendMessage(admin, escaped, 0); err != nil {
			logging.L().Error().Err(err).Int64("admin_id", admin).Msg("failed to relay message to admin")
		}
	}
}

func routeAdminReply(client *Client, admins []int64, msg *tgbotapi.Message) {
	match := replyIDPattern.FindStringSubmatch(msg.ReplyToMessage.Text)
	if match == nil {
		return
	}
	targetID, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return
	}

	if _, err := client.SendMessage(targetID, escapeMarkdownV2(msg.Text), 0); err != nil {
		logging.L().Error().Err(err).Int64("user_id", targetID).Msg("failed to route reply to user")
	}

	name := senderName(msg.From)
	copyText := fmt.Sprintf("Ответ от %s пользователю (id=%d):\n%s", name, targetID, msg.Text)
	escapedCopy := escapeMarkdownV2(copyText)
	for _, admin := range admins {
		if admin == msg.From.ID {
			continue
		}
		if _, err := client.SendMessage(admin, escapedCopy, 0); err != nil {
			logging.L().Error().Err(err).Int64("admin_id", admin).Msg("failed to carbon-copy reply to admin")
		}
	}

	if _, err := client.SendMessage(msg.From.ID, escapeMarkdownV2("Ответ отправлен."), 0); err != nil {
		logging.L().Error().Err(err).Msg("failed to acknowledge admin reply")
	}
}

func senderName(from *tgbotapi.User) string {
	if from == nil {
		return "unknown"
	}
	if from.UserName != "" {
		return from.UserName
	}
	return from.FirstName
}

func isAdmin(userID int64, admins []int64) bool {
	for _, a := range admins {
		if a == userID {
			return true
		}
	}
	return false
}
