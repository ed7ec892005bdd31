package generator

import (
	"context"
	"fmt"
	"net/http"

	"github.com/futig/blog-generator/internal/config"
	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/integration/common"
	pkghttp "github.com/futig/blog-generator/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.GeneratorConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GeneratorConnectorConfig,
	logger *zap.Logger,
	opts ...pkghttp.HttpOpts,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg, logger, opts...),
		config:    cfg,
		logger:    logger,
	}
}

// generateBlogResponse keeps every field optional so a missing key can be
// told apart from an empty string.
type generateBlogResponse struct {
	GeneratedText *string `json:"generated_text"`
	Summary       *string `json:"summary"`
	Sentiment     *string `json:"sentiment"`
	Category      *string `json:"category"`
	ImageURL      *string `json:"image_url"`
}

func (r *generateBlogResponse) toEntity() (*entity.BlogResult, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"generated_text", r.GeneratedText},
		{"summary", r.Summary},
		{"sentiment", r.Sentiment},
		{"category", r.Category},
		{"image_url", r.ImageURL},
	}

	var missing []string
	for _, f := range fields {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing fields %v", entity.ErrMalformedResponse, missing)
	}

	return &entity.BlogResult{
		GeneratedText: *r.GeneratedText,
		Summary:       *r.Summary,
		Sentiment:     *r.Sentiment,
		Category:      *r.Category,
		ImageURL:      *r.ImageURL,
	}, nil
}

// GenerateBlog posts the prompt to the generation endpoint. Every failure is
// reported as entity.ErrRequestFailed wrapping the cause.
func (c *Connector) GenerateBlog(ctx context.Context, req *entity.GenerateBlogRequest) (*entity.BlogResult, error) {
	ctxzap.Info(ctx, "generating blog via generation service", zap.Int("prompt_length", len(req.Prompt)))

	var rawResp generateBlogResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, "", req, &rawResp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrRequestFailed, err)
	}

	result, err := rawResp.toEntity()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrRequestFailed, err)
	}

	ctxzap.Info(ctx, "blog generated successfully",
		zap.Int("text_length", len(result.GeneratedText)),
		zap.String("category", result.Category),
	)

	return result, nil
}
