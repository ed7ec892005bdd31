package telegram

import (
	"context"
	"fmt"

	"github.com/futig/blog-generator/internal/config"
	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/telegram/bot"
	"github.com/futig/blog-generator/internal/telegram/handlers"
	"github.com/futig/blog-generator/internal/telegram/keyboard"
	"go.uber.org/zap"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot authorizes the token and wires the chat handler to the usecase
func NewBot(cfg *config.TelegramConfig, sessions config.SessionConfig, usecase handlers.BlogUsecase, logger *zap.Logger) (Bot, error) {
	api, err := bot.NewAPI(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	kb := keyboard.NewBuilder(
		entity.FormatMarkdown,
		entity.FormatHTML,
		entity.FormatPDF,
		entity.FormatDOCX,
	)
	handler := handlers.NewHandler(api, usecase, kb, sessions)

	logger.Info("telegram bot initialized successfully")

	return bot.New(api, cfg, handler, logger), nil
}
