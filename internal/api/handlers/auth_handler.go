package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/WambuiJane/visit-stamp-rewards/internal/application/services"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/entities"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/observability"
)

// AuthService defines the auth operations used by the handler.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*entities.Account, string, error)
	SignIn(ctx context.Context, email, password string) (*entities.Account, string, error)
	Session(ctx context.Context, token string) (*entities.Account, error)
}

// BusinessRegistrar creates the business profile tied to a new account.
type BusinessRegistrar interface {
	Register(ctx context.Context, accountID string, input services.BusinessInput) (*entities.Business, error)
}

// AuthHandler handles sign-up, sign-in and session lookup.
type AuthHandler struct {
	auth      AuthService
	registrar BusinessRegistrar
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth AuthService, registrar BusinessRegistrar) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		registrar: registrar,
	}
}

type signUpRequest struct {
	Email    string                 `json:"email"`
	Password string                 `json:"password"`
	Business services.BusinessInput `json:"business"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Account  *entities.Account  `json:"account"`
	Token    string             `json:"token"`
	Business *entities.Business `json:"business,omitempty"`
}

// SignUp handles POST /api/auth/signup. Account creation and the
// business profile insert are two writes; if the second fails the
// account stays and the error is reported as-is.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var payload signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	account, token, err := h.auth.SignUp(r.Context(), payload.Email, payload.Password)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	business, err := h.registrar.Register(r.Context(), account.ID, payload.Business)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error().
			Err(err).
			Str("account_id", account.ID).
			Msg("account created but business profile insert failed")
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, authResponse{
		Account:  account,
		Token:    token,
		Business: business,
	})
}

// SignIn handles POST /api/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var payload signInRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	account, token, err := h.auth.SignIn(r.Context(), payload.Email, payload.Password)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, authResponse{
		Account: account,
		Token:   token,
	})
}

// SignOut handles POST /api/auth/signout. Sessions are stateless
// bearer tokens, so sign-out is the client discarding its token; the
// endpoint exists so the flow has an explicit end.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondWithError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	account, err := h.auth.Session(r.Context(), token)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, account)
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
