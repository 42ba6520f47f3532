package handlers

import (
	"errors"
	"net/http"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/utils/money"
	"github.com/goccy/go-json"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// shortfallResponse тело ответа 402
type shortfallResponse struct {
	Required  int64  `json:"required"`
	Available int64  `json:"available"`
	Shortfall int64  `json:"shortfall"`
	Message   string `json:"message"`
}

// writeDomainError отвечает на типизированные ошибки домена.
// Возвращает false, если ошибка не распознана и ответ не записан.
func writeDomainError(w http.ResponseWriter, err error) bool {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: validationErr.Error(),
			Field: validationErr.Field,
		})
		return true
	}

	var fundsErr *domain.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		writeJSON(w, http.StatusPaymentRequired, shortfallResponse{
			Required:  fundsErr.Required,
			Available: fundsErr.Available,
			Shortfall: fundsErr.Shortfall,
			Message: "Saldo tidak mencukupi. Anda memerlukan " + money.Format(fundsErr.Required) +
				" tetapi saldo Anda hanya " + money.Format(fundsErr.Available),
		})
		return true
	}

	if errors.Is(err, domain.ErrPrecondition) {
		writeError(w, http.StatusConflict, err.Error())
		return true
	}

	return false
}
