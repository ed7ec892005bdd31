package page

import (
	"context"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/view"
)

type BlogUsecase interface {
	OpenSession(ctx context.Context, id string) (string, view.State, error)
	EditPrompt(ctx context.Context, id, prompt string) (view.State, error)
	Submit(ctx context.Context, id, prompt string) (view.State, error)
	ToggleCredits(ctx context.Context, id string) (view.State, error)
	CloseCredits(ctx context.Context, id string) (view.State, error)
	Export(ctx context.Context, id string, format entity.ExportFormat) (*entity.ExportedDocument, error)
	Credits() []entity.Contributor
}
