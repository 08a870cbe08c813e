package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/WambuiJane/visit-stamp-rewards/internal/api/middleware"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
)

// BusinessService defines the business operations used by the handler.
type BusinessService interface {
	GetByID(ctx context.Context, id string) (*entities.Business, error)
	GetByAccount(ctx context.Context, accountID string) (*entities.Business, error)
	List(ctx context.Context, filter repositories.BusinessFilter) ([]*entities.Business, error)
	Update(ctx context.Context, business *entities.Business) error
	Stats(ctx context.Context, businessID string) (*entities.BusinessStats, error)
}

// BusinessHandler handles business browsing and the owner dashboard.
type BusinessHandler struct {
	service BusinessService
}

// NewBusinessHandler creates a new business handler.
func NewBusinessHandler(service BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// ListBusinesses handles GET /api/businesses
func (h *BusinessHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	filter := repositories.BusinessFilter{
		Search: r.URL.Query().Get("search"),
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	businesses, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, businesses)
}

// GetBusiness handles GET /api/businesses/{id}
func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "business ID is required")
		return
	}

	business, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, business)
}

// GetMyBusiness handles GET /api/businesses/me
func (h *BusinessHandler) GetMyBusiness(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	business, err := h.service.GetByAccount(r.Context(), account.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, business)
}

// GetMyStats handles GET /api/businesses/me/stats
func (h *BusinessHandler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	business, err := h.service.GetByAccount(r.Context(), account.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	stats, err := h.service.Stats(r.Context(), business.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

// UpdateMyBusiness handles PATCH /api/businesses/me
func (h *BusinessHandler) UpdateMyBusiness(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	business, err := h.service.GetByAccount(r.Context(), account.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	var payload struct {
		BusinessName            *string `json:"business_name"`
		BusinessType            *string `json:"business_type"`
		Phone                   *string `json:"phone"`
		Address                 *string `json:"address"`
		RewardDescription       *string `json:"reward_description"`
		VisitsRequiredForReward *int    `json:"visits_required_for_reward"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.BusinessName != nil {
		business.BusinessName = *payload.BusinessName
	}
	if payload.BusinessType != nil {
		business.BusinessType = *payload.BusinessType
	}
	if payload.Phone != nil {
		business.Phone = *payload.Phone
	}
	if payload.Address != nil {
		business.Address = *payload.Address
	}
	if payload.RewardDescription != nil {
		business.RewardDescription = *payload.RewardDescription
	}
	if payload.VisitsRequiredForReward != nil {
		business.VisitsRequiredForReward = *payload.VisitsRequiredForReward
	}

	if err := h.service.Update(r.Context(), business); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, business)
}
