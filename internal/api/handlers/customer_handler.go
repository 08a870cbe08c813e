package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

// CustomerService defines the customer operations used by the handler.
type CustomerService interface {
	FindOrCreate(ctx context.Context, phone, name string) (*entities.Customer, error)
}

// CustomerHandler handles customer registration.
type CustomerHandler struct {
	service CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type customerRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// Register handles POST /api/customers. Registering an already-known
// phone number is a no-op returning the existing customer.
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload customerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	customer, err := h.service.FindOrCreate(r.Context(), payload.Phone, payload.Name)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, customer)
}
