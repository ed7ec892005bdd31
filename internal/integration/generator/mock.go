package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a canned blog after an optional delay, for local
// development without the generation service.
type MockConnector struct {
	logger *zap.Logger
	delay  time.Duration
}

func NewMockConnector(logger *zap.Logger, delay time.Duration) *MockConnector {
	return &MockConnector{
		logger: logger,
		delay:  delay,
	}
}

func (m *MockConnector) GenerateBlog(ctx context.Context, req *entity.GenerateBlogRequest) (*entity.BlogResult, error) {
	ctxzap.Info(ctx, "[MOCK] generating blog")

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", entity.ErrRequestFailed, ctx.Err())
		}
	}

	resp := &entity.BlogResult{
		GeneratedText: fmt.Sprintf("This is a mock blog post about %q. "+
			"It walks through the basics, lists a few practical tips and closes with a short outlook.", req.Prompt),
		Summary:   fmt.Sprintf("A short mock overview of %q. Useful for trying the screen locally.", req.Prompt),
		Sentiment: "Positive and informative",
		Category:  "Technology",
		ImageURL:  "https://placehold.co/512x512.png",
	}

	ctxzap.Info(ctx, "[MOCK] blog generated", zap.Int("text_length", len(resp.GeneratedText)))
	return resp, nil
}
