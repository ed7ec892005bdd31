package keyboard

import (
	"strings"

	"github.com/futig/blog-generator/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Builder creates inline keyboards
type Builder struct {
	formats []entity.ExportFormat
}

// NewBuilder creates a keyboard builder offering the given download formats
func NewBuilder(formats ...entity.ExportFormat) *Builder {
	return &Builder{formats: formats}
}

// ResultKeyboard offers the generated blog as a download in every format
func (b *Builder) ResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(b.formats))
	for _, f := range b.formats {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			"⬇️ "+strings.ToUpper(string(f)),
			EncodeCallback(ActionDownload, string(f)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(buttons...),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Developer Credits", EncodeCallback(ActionCredits, "toggle")),
		),
	)
}

// CreditsKeyboard holds the close button of the credits overlay
func (b *Builder) CreditsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("× Close", EncodeCallback(ActionCredits, "close")),
		),
	)
}
