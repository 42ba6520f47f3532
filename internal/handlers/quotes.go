package handlers

import (
	"net/http"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// QuotesHandler обрабатывает расчеты стоимости доставки
type QuotesHandler struct {
	shippingService domain.ShippingService
	logger          *zap.Logger
}

func NewQuotesHandler(shippingService domain.ShippingService, logger *zap.Logger) *QuotesHandler {
	return &QuotesHandler{
		shippingService: shippingService,
		logger:          logger,
	}
}

// Compare считает стоимость по всем тарифам, авторизация не нужна
func (h *QuotesHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req domain.ShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	quotes, err := h.shippingService.Compare(r.Context(), req)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		h.logger.Error("failed to compare tiers", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, quotes)
}

// Quote считает стоимость и делает расчет актуальным для пользователя
func (h *QuotesHandler) Quote(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req domain.ShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	quotation, err := h.shippingService.Quote(r.Context(), userID, req)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		h.logger.Error("failed to quote", zap.Error(err), zap.Int64("user_id", userID))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, quotation)
}

func (h *QuotesHandler) Discard(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.shippingService.DiscardQuotation(r.Context(), userID); err != nil {
		h.logger.Error("failed to discard quotation", zap.Error(err), zap.Int64("user_id", userID))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
