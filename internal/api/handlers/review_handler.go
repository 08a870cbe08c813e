package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
)

const maxCommentLength = 1000

// ReviewService defines the review operations used by the handler.
type ReviewService interface {
	Submit(ctx context.Context, businessID, phone string, rating int, comment string) (*entities.Review, error)
	ListForBusiness(ctx context.Context, businessID string) ([]*entities.Review, error)
	ListForCustomer(ctx context.Context, customerID string) ([]*entities.Review, error)
	ListForPhone(ctx context.Context, phone string) ([]*entities.Review, error)
}

// ReviewHandler handles review submission and listing.
type ReviewHandler struct {
	service ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type reviewRequest struct {
	BusinessID string `json:"business_id"`
	Phone      string `json:"phone"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// SubmitReview handles POST /api/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var payload reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.Rating < 1 || payload.Rating > 5 {
		respondWithError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	payload.Comment = strings.TrimSpace(payload.Comment)
	if len(payload.Comment) > maxCommentLength {
		respondWithError(w, http.StatusBadRequest, "comment is too long")
		return
	}

	review, err := h.service.Submit(r.Context(), payload.BusinessID, payload.Phone, payload.Rating, payload.Comment)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

// ListBusinessReviews handles GET /api/businesses/{id}/reviews
func (h *ReviewHandler) ListBusinessReviews(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "business ID is required")
		return
	}

	reviews, err := h.service.ListForBusiness(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}

// ListCustomerReviews handles GET /api/customers/{id}/reviews
func (h *ReviewHandler) ListCustomerReviews(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "customer ID is required")
		return
	}

	reviews, err := h.service.ListForCustomer(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}

// ListMyReviews handles GET /api/reviews/mine. The phone query param
// identifies the customer; an unregistered phone yields an empty list.
func (h *ReviewHandler) ListMyReviews(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		respondWithError(w, http.StatusBadRequest, "phone is required")
		return
	}

	reviews, err := h.service.ListForPhone(r.Context(), phone)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}
