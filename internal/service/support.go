package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/accountbot/internal/genai"
	"github.com/mmeshcher/accountbot/internal/model"
)

const (
	supportGreeting    = "Hello! I'm AccountBot Support. How can I help you with your reseller business today?"
	supportFallback    = "I'm having trouble connecting to the server. Please try again."
	supportInstruction = "You are AccountBot Support, a helpful assistant for a digital reseller dashboard. " +
		"You help users with pricing strategies, how to use the dashboard, and general troubleshooting. " +
		"Keep answers concise and professional. Do not encourage illegal acts, focus on the software functionality."

	chatOutcomeOK    = "ok"
	chatOutcomeEmpty = "empty"
	chatOutcomeError = "error"
)

var (
	// ErrEmptyMessage возвращается при отправке пустого сообщения.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrChatBusy возвращается, если предыдущее сообщение ещё ожидает ответа.
	ErrChatBusy = errors.New("previous message is still being answered")
)

func greeting(now time.Time) model.ChatMessage {
	return model.ChatMessage{
		ID:        "1",
		Role:      model.ChatRoleModel,
		Text:      supportGreeting,
		Timestamp: now,
	}
}

// SupportMessages возвращает историю чата поддержки сессии.
func (s *Service) SupportMessages(sessionID string) ([]model.ChatMessage, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return slices.Clone(sess.chat), nil
}

// SendSupportMessage добавляет сообщение пользователя в историю и запрашивает
// ответ. Ошибка собеседника не возвращается: сообщение остаётся без ответа.
// Возвращает историю после обмена.
func (s *Service) SendSupportMessage(ctx context.Context, sessionID, text string) ([]model.ChatMessage, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	sess.mu.Lock()
	if sess.chatting {
		sess.mu.Unlock()
		return nil, ErrChatBusy
	}
	sess.chatting = true
	prior := toGenaiHistory(sess.chat)
	sess.chat = append(sess.chat, model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.ChatRoleUser,
		Text:      text,
		Timestamp: s.now(),
	})
	sess.mu.Unlock()

	reply, err := s.ask(ctx, prior, text)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.chatting = false

	if err != nil {
		s.logger.Error("support chat request failed", zap.Error(err), zap.String("session_id", sess.ID))
		s.metrics.ChatRequest(chatOutcomeError)
		return slices.Clone(sess.chat), nil
	}

	if strings.TrimSpace(reply) == "" {
		reply = supportFallback
		s.metrics.ChatRequest(chatOutcomeEmpty)
	} else {
		s.metrics.ChatRequest(chatOutcomeOK)
	}

	sess.chat = append(sess.chat, model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.ChatRoleModel,
		Text:      reply,
		Timestamp: s.now(),
	})
	return slices.Clone(sess.chat), nil
}

func (s *Service) ask(ctx context.Context, history []genai.Message, text string) (string, error) {
	if s.chat == nil {
		return "", genai.ErrNotConfigured
	}
	return s.chat.Chat(ctx, supportInstruction, history, text)
}

func toGenaiHistory(msgs []model.ChatMessage) []genai.Message {
	out := make([]genai.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, genai.Message{Role: string(m.Role), Text: m.Text})
	}
	return out
}
