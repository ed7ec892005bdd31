package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/pkg/logger"
	"github.com/futig/blog-generator/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// maxRequestBody bounds the JSON body of a generation request.
const maxRequestBody = 1 << 20

type Handler struct {
	usecase BlogUsecase
}

func NewHandler(usecase BlogUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GenerateBlog handles POST /api/v1/blogs
func (h *Handler) GenerateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateBlog")

	var req entity.GenerateBlogRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctxzap.Info(ctx, "generating blog", zap.Int("prompt_length", len(req.Prompt)))

	result, err := h.usecase.Generate(ctx, req.Prompt)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "blog generated successfully", zap.String("category", result.Category))
	response.Success(w, result)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, "prompt is required", err)
	} else if errors.Is(err, entity.ErrRequestFailed) {
		h.respondError(ctx, w, http.StatusBadGateway, entity.RequestFailureMessage, err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
