package handlers

import (
	"errors"
	"net/http"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ShipmentsHandler обрабатывает оплату и отслеживание отправлений
type ShipmentsHandler struct {
	shippingService domain.ShippingService
	logger          *zap.Logger
}

func NewShipmentsHandler(shippingService domain.ShippingService, logger *zap.Logger) *ShipmentsHandler {
	return &ShipmentsHandler{
		shippingService: shippingService,
		logger:          logger,
	}
}

// Create оплачивает подтвержденный пользователем расчет.
// 402 при нехватке средств, 409 если расчет устарел или не совпадает.
func (h *ShipmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var confirm domain.Confirmation
	if err := json.NewDecoder(r.Body).Decode(&confirm); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if confirm.QuotationID == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: "quotation_id is required",
			Field: "quotation_id",
		})
		return
	}

	record, err := h.shippingService.CreateShipment(r.Context(), userID, confirm)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		h.logger.Error("failed to create shipment",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("quotation_id", confirm.QuotationID),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *ShipmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	shipments, err := h.shippingService.GetShipments(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get shipments", zap.Error(err), zap.Int64("user_id", userID))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if len(shipments) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, shipments)
}

// Track публичное отслеживание по номеру
func (h *ShipmentsHandler) Track(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "trackingID")

	tracking, err := h.shippingService.Track(r.Context(), trackingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTrackingID):
			writeError(w, http.StatusBadRequest, "invalid tracking number")
		case errors.Is(err, domain.ErrShipmentNotFound):
			writeError(w, http.StatusNotFound, "shipment not found")
		default:
			h.logger.Error("failed to track shipment", zap.Error(err), zap.String("tracking_id", trackingID))
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, tracking)
}
