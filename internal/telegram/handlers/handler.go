package handlers

import (
	"context"
	"errors"

	"github.com/futig/blog-generator/internal/config"
	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/pkg/logger"
	"github.com/futig/blog-generator/internal/telegram/keyboard"
	"github.com/futig/blog-generator/internal/telegram/render"
	"github.com/futig/blog-generator/internal/telegram/state"
	"github.com/futig/blog-generator/internal/view"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Message represents a normalized Telegram message
type Message struct {
	ChatID       int64
	UserID       int64
	MessageID    int
	Text         string
	Command      string
	CallbackData string
	CallbackID   string
}

// Handler hosts one blog generator screen per chat
type Handler struct {
	sender   *MessageSender
	chats    *state.Manager
	usecase  BlogUsecase
	keyboard *keyboard.Builder
}

func NewHandler(api Sender, usecase BlogUsecase, kb *keyboard.Builder, sessions config.SessionConfig) *Handler {
	return &Handler{
		sender:   NewMessageSender(api),
		chats:    state.NewManager(usecase, sessions.TTL, sessions.CleanupInterval),
		usecase:  usecase,
		keyboard: kb,
	}
}

// HandleCommand handles /start, /help and /credits
func (h *Handler) HandleCommand(ctx context.Context, msg *Message) error {
	ctx = logger.AddFields(ctx, zap.String("command", msg.Command))

	switch msg.Command {
	case "start":
		return h.sender.Send(ctx, msg.ChatID, render.MsgWelcome, nil)
	case "help":
		return h.sender.Send(ctx, msg.ChatID, render.MsgHelp, nil)
	case "credits":
		return h.toggleCredits(ctx, msg.ChatID)
	default:
		return h.sender.Send(ctx, msg.ChatID, render.ErrUnknownCommand, nil)
	}
}

// HandleText edits the chat's prompt and submits it. The outcome is sent
// when the generation call resolves.
func (h *Handler) HandleText(ctx context.Context, msg *Message) error {
	ctx = logger.WithAction(ctx, "Submit")

	id, _, err := h.chats.Session(ctx, msg.ChatID)
	if err != nil {
		return err
	}
	ctx = logger.AddFields(ctx, zap.String("session_id", id))

	// the outcome goes out only after the reply to this message
	chatID := msg.ChatID
	replied := make(chan struct{})
	defer close(replied)

	_, err = h.usecase.SubmitNotify(ctx, id, msg.Text, func(ctx context.Context, s view.State) {
		<-replied
		h.sendOutcome(ctx, chatID, s)
	})
	switch {
	case err == nil:
		ctxzap.Info(ctx, "blog generation started")
		return h.sender.Send(ctx, chatID, render.MsgGenerating, nil)
	case errors.Is(err, entity.ErrEmptyPrompt), errors.Is(err, entity.ErrRequestInFlight):
		return h.sender.Send(ctx, chatID, render.ClassifyError(err), nil)
	default:
		return err
	}
}

// HandleCallback handles download and credits buttons
func (h *Handler) HandleCallback(ctx context.Context, msg *Message) error {
	data, err := keyboard.ParseCallback(msg.CallbackData)
	if err != nil {
		ctxzap.Warn(ctx, "invalid callback data", zap.Error(err))
		h.sender.AnswerCallback(ctx, msg.CallbackID, render.ErrInvalidSelection)
		return nil
	}

	ctx = logger.AddFields(ctx,
		zap.String("callback_action", data.Action),
		zap.String("callback_value", data.Value),
	)

	switch data.Action {
	case keyboard.ActionDownload:
		h.sender.AnswerCallback(ctx, msg.CallbackID, "")
		return h.download(ctx, msg.ChatID, entity.ExportFormat(data.Value))
	case keyboard.ActionCredits:
		h.sender.AnswerCallback(ctx, msg.CallbackID, "")
		if data.Value == "close" {
			return h.closeCredits(ctx, msg.ChatID)
		}
		return h.toggleCredits(ctx, msg.ChatID)
	default:
		h.sender.AnswerCallback(ctx, msg.CallbackID, render.ErrInvalidSelection)
		return nil
	}
}

func (h *Handler) sendOutcome(ctx context.Context, chatID int64, s view.State) {
	var markup any
	if s.Result() != nil {
		markup = h.keyboard.ResultKeyboard()
	}
	_ = h.sender.Send(ctx, chatID, render.RenderOutcome(s), markup)
}

func (h *Handler) toggleCredits(ctx context.Context, chatID int64) error {
	id, _, err := h.chats.Session(ctx, chatID)
	if err != nil {
		return err
	}

	s, err := h.usecase.ToggleCredits(ctx, id)
	if err != nil {
		return err
	}

	if s.CreditsVisible() {
		return h.sender.Send(ctx, chatID, render.RenderCredits(h.usecase.Credits()), h.keyboard.CreditsKeyboard())
	}
	return h.sender.Send(ctx, chatID, render.MsgCreditsClosed, nil)
}

func (h *Handler) closeCredits(ctx context.Context, chatID int64) error {
	id, _, err := h.chats.Session(ctx, chatID)
	if err != nil {
		return err
	}

	if _, err := h.usecase.CloseCredits(ctx, id); err != nil {
		return err
	}
	return h.sender.Send(ctx, chatID, render.MsgCreditsClosed, nil)
}

func (h *Handler) download(ctx context.Context, chatID int64, format entity.ExportFormat) error {
	id, _, err := h.chats.Session(ctx, chatID)
	if err != nil {
		return err
	}

	doc, err := h.usecase.Export(ctx, id, format)
	if errors.Is(err, entity.ErrNoResult) || errors.Is(err, entity.ErrUnsupportedFormat) {
		return h.sender.Send(ctx, chatID, render.ClassifyError(err), nil)
	}
	if err != nil {
		return err
	}

	ctxzap.Info(ctx, "blog exported", zap.String("file_name", doc.FileName))
	return h.sender.SendDocument(ctx, chatID, doc)
}
