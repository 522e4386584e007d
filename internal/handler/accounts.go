package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/accountbot/internal/generator"
	"github.com/mmeshcher/accountbot/internal/model"
)

func etag(version uint64) string {
	return fmt.Sprintf(`W/"inv-%d"`, version)
}

// ListAccounts возвращает инвентарь сессии, отфильтрованный параметром q.
// Ответ снабжается ETag версии инвентаря; при совпадении If-None-Match отдаётся 304.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	version, err := h.service.InventoryVersion(sid)
	if err != nil {
		h.fail(w, err, "inventory version error")
		return
	}

	tag := etag(version)
	if match := r.Header.Get("If-None-Match"); match != "" && match == tag {
		w.Header().Set("ETag", tag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	list, err := h.service.Accounts(sid, r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, err, "list accounts error")
		return
	}

	w.Header().Set("ETag", etag(list.Version))
	if err := writeJSON(w, http.StatusOK, list); err != nil {
		h.logger.Error("encode accounts", zap.Error(err))
	}
}

// GenerateAccounts выпускает партию аккаунтов.
func (h *Handler) GenerateAccounts(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	batch, err := h.service.Generate(r.Context(), sid, req)
	if err != nil {
		h.fail(w, err, "generate accounts error", zap.String("service", req.Service), zap.Int("quantity", req.Quantity))
		return
	}

	if err := writeJSON(w, http.StatusCreated, batch); err != nil {
		h.logger.Error("encode accounts", zap.Error(err))
	}
}

type transitionFunc func(sessionID, accountID string) (model.Account, error)

// transition оборачивает переход жизненного цикла аккаунта из URL-параметра {id}.
func (h *Handler) transition(name string, fn transitionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := h.sessionID(w, r)
		if !ok {
			return
		}

		id := chi.URLParam(r, "id")
		a, err := fn(sid, id)
		if err != nil {
			h.fail(w, err, name+" account error", zap.String("account_id", id))
			return
		}

		if err := writeJSON(w, http.StatusOK, a); err != nil {
			h.logger.Error("encode account", zap.Error(err))
		}
	}
}

// PauseAccount приостанавливает аккаунт.
func (h *Handler) PauseAccount(w http.ResponseWriter, r *http.Request) {
	h.transition("pause", h.service.Pause)(w, r)
}

// ResumeAccount возобновляет аккаунт.
func (h *Handler) ResumeAccount(w http.ResponseWriter, r *http.Request) {
	h.transition("resume", h.service.Resume)(w, r)
}

// ToggleAccount приостанавливает или возобновляет аккаунт.
func (h *Handler) ToggleAccount(w http.ResponseWriter, r *http.Request) {
	h.transition("toggle", h.service.Toggle)(w, r)
}

type revokeRequest struct {
	Confirm bool `json:"confirm"`
}

// RevokeAccount отзывает аккаунт. Тело запроса должно содержать {"confirm": true}.
func (h *Handler) RevokeAccount(w http.ResponseWriter, r *http.Request) {
	var req revokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.transition("revoke", func(sessionID, accountID string) (model.Account, error) {
		return h.service.Revoke(sessionID, accountID, req.Confirm)
	})(w, r)
}

// Notification возвращает действующее уведомление или 204, если его нет.
func (h *Handler) Notification(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	note, ok, err := h.service.Notification(sid)
	if err != nil {
		h.fail(w, err, "notification error")
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := writeJSON(w, http.StatusOK, note); err != nil {
		h.logger.Error("encode notification", zap.Error(err))
	}
}

// Dashboard возвращает счётчики, недельный график и окно истории.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	d, err := h.service.Dashboard(sid)
	if err != nil {
		h.fail(w, err, "dashboard error")
		return
	}

	if err := writeJSON(w, http.StatusOK, d); err != nil {
		h.logger.Error("encode dashboard", zap.Error(err))
	}
}

// LoadMoreHistory расширяет окно истории на главной странице.
func (h *Handler) LoadMoreHistory(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	d, err := h.service.LoadMoreHistory(sid)
	if err != nil {
		h.fail(w, err, "load more history error")
		return
	}

	if err := writeJSON(w, http.StatusOK, d); err != nil {
		h.logger.Error("encode dashboard", zap.Error(err))
	}
}
