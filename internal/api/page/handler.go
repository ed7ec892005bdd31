package page

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/futig/blog-generator/internal/config"
	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/pkg/logger"
	"github.com/futig/blog-generator/internal/pkg/response"
	"github.com/futig/blog-generator/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Formats offered as download links under a generated blog.
var exportFormats = []entity.ExportFormat{
	entity.FormatMarkdown,
	entity.FormatHTML,
	entity.FormatPDF,
	entity.FormatDOCX,
}

type Handler struct {
	usecase    BlogUsecase
	sessionCfg config.SessionConfig
	refresh    time.Duration
}

func NewHandler(usecase BlogUsecase, sessionCfg config.SessionConfig, refresh time.Duration) *Handler {
	return &Handler{
		usecase:    usecase,
		sessionCfg: sessionCfg,
		refresh:    refresh,
	}
}

type pageData struct {
	State          view.State
	Credits        []entity.Contributor
	Formats        []entity.ExportFormat
	RefreshSeconds int
}

// Index handles GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Index")

	id, state, err := h.openSession(ctx, w, r)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "rendering page",
		zap.String("session_id", id),
		zap.Stringer("phase", state.Phase()),
	)

	h.render(ctx, w, state)
}

// EditPrompt handles POST /prompt
func (h *Handler) EditPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "EditPrompt")

	id, _, err := h.openSession(ctx, w, r)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if _, err := h.usecase.EditPrompt(ctx, id, r.PostFormValue("prompt")); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.redirectHome(w, r)
}

// Generate handles POST /generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")

	id, _, err := h.openSession(ctx, w, r)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}
	ctx = logger.AddFields(ctx, zap.String("session_id", id))

	_, err = h.usecase.Submit(ctx, id, r.PostFormValue("prompt"))
	switch {
	case err == nil:
		ctxzap.Info(ctx, "generation started")
	case errors.Is(err, entity.ErrEmptyPrompt), errors.Is(err, entity.ErrRequestInFlight):
		// the page renders the disabled control, nothing else to report
		ctxzap.Debug(ctx, "submit ignored", zap.Error(err))
	default:
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.redirectHome(w, r)
}

// ToggleCredits handles POST /credits/toggle
func (h *Handler) ToggleCredits(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ToggleCredits")

	id, _, err := h.openSession(ctx, w, r)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if _, err := h.usecase.ToggleCredits(ctx, id); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.redirectHome(w, r)
}

// CloseCredits handles POST /credits/close
func (h *Handler) CloseCredits(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CloseCredits")

	id, _, err := h.openSession(ctx, w, r)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if _, err := h.usecase.CloseCredits(ctx, id); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.redirectHome(w, r)
}

// Export handles GET /export/{format}
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format := entity.ExportFormat(chi.URLParam(r, "format"))
	ctx := logger.AddFields(r.Context(),
		zap.String("action", "Export"),
		zap.String("format", string(format)),
	)

	id, _, err := h.openSession(ctx, w, r)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	doc, err := h.usecase.Export(ctx, id, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "blog exported", zap.Int("bytes", len(doc.Content)))
	response.Attachment(w, doc)
}

// openSession resolves the session cookie, starting a new session when the
// cookie is missing or stale.
func (h *Handler) openSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, view.State, error) {
	var current string
	if c, err := r.Cookie(h.sessionCfg.CookieName); err == nil {
		current = c.Value
	}

	id, state, err := h.usecase.OpenSession(ctx, current)
	if err != nil {
		return "", view.State{}, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.sessionCfg.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id, state, nil
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, state view.State) {
	data := pageData{
		State:          state,
		Credits:        h.usecase.Credits(),
		Formats:        exportFormats,
		RefreshSeconds: int(h.refresh.Seconds()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, data); err != nil {
		ctxzap.Error(ctx, "failed to render page", zap.Error(err))
	}
}

func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
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
	if errors.Is(err, entity.ErrNoResult) {
		h.respondError(ctx, w, http.StatusNotFound, "nothing to export yet", err)
	} else if errors.Is(err, entity.ErrSessionNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "session expired", err)
	} else if errors.Is(err, entity.ErrUnsupportedFormat) {
		h.respondError(ctx, w, http.StatusBadRequest, "unsupported export format", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
