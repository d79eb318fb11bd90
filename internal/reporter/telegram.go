package reporter

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobradar-automation/internal/config"
	"go-jobradar-automation/internal/filter"
)

// TelegramReporter pushes accepted jobs and the run summary to a chat.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// Enabled reports whether the config carries telegram credentials; the
// reporter is optional and silently skipped otherwise.
func Enabled(cfg *config.Config) bool {
	return cfg.TelegramToken != "" && cfg.TelegramChatID != 0
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendJob(job filter.MatchedJob) error {
	text := fmt.Sprintf(
		"💼 <b>%s</b>\n🤖 Match Score: %d%%\n🏷 Priority: %s\n📅 Valid until: %s",
		html.EscapeString(job.Title),
		job.MatchScore,
		html.EscapeString(job.Priority),
		html.EscapeString(job.ValidUntil),
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendSummary(stats filter.Stats) error {
	text := fmt.Sprintf(
		"✅ Run complete: %d scraped, %d matched (%s)",
		stats.TotalScraped,
		stats.Filtered,
		html.EscapeString(stats.MatchRate),
	)
	return t.SendMessage(text)
}
