package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/WambuiJane/visit-stamp-rewards/internal/api/handlers"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	apperrors "github.com/WambuiJane/visit-stamp-rewards/pkg/errors"
)

type stubCustomerService struct {
	customer *entities.Customer
	err      error

	calls []string
}

func (s *stubCustomerService) FindOrCreate(ctx context.Context, phone, name string) (*entities.Customer, error) {
	s.calls = append(s.calls, phone)
	if s.err != nil {
		return nil, s.err
	}
	return s.customer, nil
}

func TestCustomerHandler_Register_Success(t *testing.T) {
	service := &stubCustomerService{
		customer: &entities.Customer{ID: "cust-1", Phone: "+254711000001", Name: "Wanjiku"},
	}
	handler := handlers.NewCustomerHandler(service)

	body := `{"phone":"+254711000001","name":"Wanjiku"}`
	req := httptest.NewRequest("POST", "/api/customers", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"+254711000001"}, service.calls)

	var customer entities.Customer
	err := json.NewDecoder(w.Body).Decode(&customer)
	assert.NoError(t, err)
	assert.Equal(t, "cust-1", customer.ID)
}

func TestCustomerHandler_Register_InvalidPayload(t *testing.T) {
	handler := handlers.NewCustomerHandler(&stubCustomerService{})

	req := httptest.NewRequest("POST", "/api/customers", strings.NewReader("{"))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_Register_MissingPhone(t *testing.T) {
	service := &stubCustomerService{
		err: apperrors.NewValidationError("phone number is required"),
	}
	handler := handlers.NewCustomerHandler(service)

	req := httptest.NewRequest("POST", "/api/customers", strings.NewReader(`{"name":"Wanjiku"}`))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_Register_ExistingPhoneReturnsCustomer(t *testing.T) {
	// Registering an already-known phone is a read, not a conflict.
	service := &stubCustomerService{
		customer: &entities.Customer{ID: "cust-1", Phone: "+254711000001"},
	}
	handler := handlers.NewCustomerHandler(service)

	body := `{"phone":"+254711000001"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/customers", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.Register(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Len(t, service.calls, 2)
}
