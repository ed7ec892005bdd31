package handlers

import (
	"context"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/usecase/blog"
	"github.com/futig/blog-generator/internal/view"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BlogUsecase is the subset of page session operations the bot drives
type BlogUsecase interface {
	OpenSession(ctx context.Context, id string) (string, view.State, error)
	SubmitNotify(ctx context.Context, id, prompt string, notify blog.Notify) (view.State, error)
	ToggleCredits(ctx context.Context, id string) (view.State, error)
	CloseCredits(ctx context.Context, id string) (view.State, error)
	Export(ctx context.Context, id string, format entity.ExportFormat) (*entity.ExportedDocument, error)
	Credits() []entity.Contributor
}

// Sender is the part of *tgbotapi.BotAPI the handlers talk to
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}
