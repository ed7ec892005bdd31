package blog

import (
	"context"

	"github.com/futig/blog-generator/internal/entity"
)

type BlogUsecase interface {
	Generate(ctx context.Context, prompt string) (*entity.BlogResult, error)
}
