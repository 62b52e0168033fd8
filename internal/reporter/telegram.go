package reporter

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobradar/internal/digest"
)

// TelegramSink sends the digest as a single HTML message to one chat.
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	header string
	empty  string
}

func NewTelegramSink(token string, chatID int64, header, empty string) (*TelegramSink, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramSink{
		bot:    bot,
		chatID: chatID,
		header: header,
		empty:  empty,
	}, nil
}

func (s *TelegramSink) Name() string {
	return "telegram"
}

func (s *TelegramSink) Send(d digest.Digest) error {
	msg := tgbotapi.NewMessage(s.chatID, s.render(d))
	msg.ParseMode = "HTML" //use HTML for bold/links
	msg.DisableWebPagePreview = true
	_, err := s.bot.Send(msg)
	return err
}

func (s *TelegramSink) render(d digest.Digest) string {
	if len(d.Records) == 0 {
		//the empty text carries Slack mrkdwn bold markers; strip them
		return strings.ReplaceAll(s.empty, "*", "")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(fmt.Sprintf(s.header, d.Total)))
	for _, r := range d.Records {
		fmt.Fprintf(&b, "<b>%s</b>: <a href=\"%s\">%s</a>\n",
			html.EscapeString(r.Source), r.URL, html.EscapeString(r.Title))
	}
	return b.String()
}
