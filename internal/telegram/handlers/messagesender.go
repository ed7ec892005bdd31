package handlers

import (
	"context"
	"fmt"

	"github.com/futig/blog-generator/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MessageSender provides centralized message sending functionality
type MessageSender struct {
	api Sender
}

// NewMessageSender creates a new MessageSender
func NewMessageSender(api Sender) *MessageSender {
	return &MessageSender{api: api}
}

// Send sends a plain text message. Generated text is not valid markdown, so
// no parse mode is set.
func (s *MessageSender) Send(ctx context.Context, chatID int64, text string, markup any) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	if _, err := s.api.Send(msg); err != nil {
		ctxzap.Error(ctx, "failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		return err
	}

	return nil
}

// SendDocument uploads an exported blog
func (s *MessageSender) SendDocument(ctx context.Context, chatID int64, doc *entity.ExportedDocument) error {
	upload := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  doc.FileName,
		Bytes: doc.Content,
	})

	if _, err := s.api.Send(upload); err != nil {
		ctxzap.Error(ctx, "failed to send document",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("file_name", doc.FileName),
		)
		return fmt.Errorf("send document: %w", err)
	}

	return nil
}

// AnswerCallback acknowledges a button press
func (s *MessageSender) AnswerCallback(ctx context.Context, callbackID, text string) {
	if _, err := s.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		ctxzap.Error(ctx, "failed to answer callback",
			zap.Error(err),
			zap.String("callback_id", callbackID),
		)
	}
}
