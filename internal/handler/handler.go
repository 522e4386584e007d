// Package handler содержит HTTP-обработчики API панели AccountBot.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mmeshcher/accountbot/internal/catalog"
	"github.com/mmeshcher/accountbot/internal/generator"
	"github.com/mmeshcher/accountbot/internal/inventory"
	"github.com/mmeshcher/accountbot/internal/metrics"
	"github.com/mmeshcher/accountbot/internal/middleware"
	"github.com/mmeshcher/accountbot/internal/model"
	"github.com/mmeshcher/accountbot/internal/repository"
	"github.com/mmeshcher/accountbot/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Login(ctx context.Context, email, password string) (*service.Session, error)
	Logout(sessionID string) error
	User(sessionID string) (*model.User, error)

	Generate(ctx context.Context, sessionID string, req generator.Request) ([]model.Account, error)
	Accounts(sessionID, query string) (service.AccountList, error)
	InventoryVersion(sessionID string) (uint64, error)
	Pause(sessionID, accountID string) (model.Account, error)
	Resume(sessionID, accountID string) (model.Account, error)
	Toggle(sessionID, accountID string) (model.Account, error)
	Revoke(sessionID, accountID string, confirmed bool) (model.Account, error)
	Notification(sessionID string) (model.Notification, bool, error)
	Dashboard(sessionID string) (service.Dashboard, error)
	LoadMoreHistory(sessionID string) (service.Dashboard, error)

	SupportMessages(sessionID string) ([]model.ChatMessage, error)
	SendSupportMessage(ctx context.Context, sessionID, text string) ([]model.ChatMessage, error)

	Billing(sessionID string) (service.Billing, error)
	Purchase(ctx context.Context, sessionID string, req service.PurchaseRequest) (model.Transaction, error)
}

// Handler реализует HTTP-обработчики API панели.
type Handler struct {
	service        Service
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	gatherer       prometheus.Gatherer
}

// NewHandler создаёт обработчик HTTP-запросов. m и gatherer могут быть nil:
// тогда метрики запросов не собираются и /metrics не регистрируется.
func NewHandler(s Service, logger *zap.Logger, auth *middleware.AuthMiddleware, m *metrics.Metrics, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		service:        s,
		logger:         logger,
		authMiddleware: auth,
		metrics:        m,
		gatherer:       gatherer,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// fail переводит ошибку сервиса в HTTP-статус. Неизвестные ошибки логируются как внутренние.
func (h *Handler) fail(w http.ResponseWriter, err error, msg string, fields ...zap.Field) {
	switch {
	case errors.Is(err, repository.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, service.ErrSessionNotFound):
		h.authMiddleware.ClearAuthCookie(w)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, inventory.ErrAccountNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, generator.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidPurchase),
		errors.Is(err, service.ErrUnknownPackage),
		errors.Is(err, service.ErrEmptyMessage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, inventory.ErrAccountRevoked),
		errors.Is(err, inventory.ErrInvalidTransition),
		errors.Is(err, service.ErrGenerationInProgress),
		errors.Is(err, service.ErrChatBusy),
		errors.Is(err, service.ErrPurchaseInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrConfirmationRequired):
		http.Error(w, err.Error(), http.StatusPreconditionRequired)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
	default:
		h.logger.Error(msg, append(fields, zap.Error(err))...)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return id, ok
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login проверяет учётные данные, открывает сессию и устанавливает cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sess, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, err, "login user error")
		return
	}

	h.authMiddleware.SetAuthCookie(w, sess.ID)
	if err := writeJSON(w, http.StatusOK, sess.User); err != nil {
		h.logger.Error("encode user", zap.Error(err))
	}
}

// Logout завершает текущую сессию и удаляет cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Logout(sid); err != nil && !errors.Is(err, service.ErrSessionNotFound) {
		h.fail(w, err, "logout error")
		return
	}

	h.authMiddleware.ClearAuthCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser возвращает пользователя текущей сессии.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	u, err := h.service.User(sid)
	if err != nil {
		h.fail(w, err, "get user error")
		return
	}

	if err := writeJSON(w, http.StatusOK, u); err != nil {
		h.logger.Error("encode user", zap.Error(err))
	}
}

type catalogResponse struct {
	Countries []catalog.Country `json:"countries"`
	Products  []catalog.Product `json:"products"`
	Durations []model.Duration  `json:"durations"`
}

// Catalog возвращает справочники для формы генерации.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{
		Countries: catalog.Countries(),
		Products:  catalog.Products(),
		Durations: model.Durations(),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("encode catalog", zap.Error(err))
	}
}

// Health сообщает, что процесс жив.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
