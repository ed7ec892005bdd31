package blog

import (
	"context"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/view"
)

type Generator interface {
	GenerateBlog(ctx context.Context, req *entity.GenerateBlogRequest) (*entity.BlogResult, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *view.Session) error
	Get(ctx context.Context, id string) (*view.Session, error)
	Delete(ctx context.Context, id string) error
}

type Exporter interface {
	Export(format entity.ExportFormat, blog *entity.BlogResult) (*entity.ExportedDocument, error)
}
