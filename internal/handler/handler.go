package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pocketly/wallet-service/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			h.log.Errorf("Failed to encode response: %v", err)
		}
	}
}

// respondError maps service errors onto HTTP statuses: validation failures
// are client errors, incomplete transfers are surfaced as bad gateway with
// the applied writes so callers know what state to re-fetch.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": validation.Reason})
		return
	}

	var partial *service.PartialFailure
	if errors.As(err, &partial) {
		h.log.Errorf("Partial write failure: %v", err)
		h.respondJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":          "transfer did not complete; refresh and review your balances",
			"applied_writes": partial.Applied,
		})
		return
	}

	h.log.Errorf("Request failed: %v", err)
	h.respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	profile, err := h.svc.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, profile)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Profile returns the authenticated user's profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profile(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, profile)
}

// UpdateProfile updates the authenticated user's profile settings
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName             string `json:"full_name"`
		AvatarURL            string `json:"avatar_url"`
		NotificationsEnabled bool   `json:"notifications_enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	profile, err := h.svc.UpdateProfile(r.Context(), req.FullName, req.AvatarURL, req.NotificationsEnabled)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, profile)
}
