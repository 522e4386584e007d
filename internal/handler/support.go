package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/accountbot/internal/service"
)

type supportRequest struct {
	Text string `json:"text"`
}

// SupportMessages возвращает историю чата поддержки.
func (h *Handler) SupportMessages(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	msgs, err := h.service.SupportMessages(sid)
	if err != nil {
		h.fail(w, err, "support messages error")
		return
	}

	if err := writeJSON(w, http.StatusOK, msgs); err != nil {
		h.logger.Error("encode messages", zap.Error(err))
	}
}

// SendSupportMessage отправляет сообщение в чат поддержки и возвращает историю.
func (h *Handler) SendSupportMessage(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req supportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	msgs, err := h.service.SendSupportMessage(r.Context(), sid, req.Text)
	if err != nil {
		h.fail(w, err, "send support message error")
		return
	}

	if err := writeJSON(w, http.StatusOK, msgs); err != nil {
		h.logger.Error("encode messages", zap.Error(err))
	}
}

// Billing возвращает баланс кредитов, пакеты и историю платежей.
func (h *Handler) Billing(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	b, err := h.service.Billing(sid)
	if err != nil {
		h.fail(w, err, "billing error")
		return
	}

	if err := writeJSON(w, http.StatusOK, b); err != nil {
		h.logger.Error("encode billing", zap.Error(err))
	}
}

// Purchase покупает пакет кредитов.
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req service.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	tx, err := h.service.Purchase(r.Context(), sid, req)
	if err != nil {
		h.fail(w, err, "purchase error", zap.String("package", req.PackageID))
		return
	}

	if err := writeJSON(w, http.StatusOK, tx); err != nil {
		h.logger.Error("encode transaction", zap.Error(err))
	}
}
