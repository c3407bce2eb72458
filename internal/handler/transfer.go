package handler

import (
	"encoding/json"
	"net/http"
)

// CreateTransfer funds a goal from a wallet. On success the caller must
// re-fetch wallets, goals and transactions; on a 502 the same applies but
// the three writes may have landed only partially (see applied_writes).
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GoalID   string `json:"goal_id"`
		WalletID string `json:"wallet_id"`
		Amount   string `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.svc.FundGoal(r.Context(), req.GoalID, req.WalletID, req.Amount); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]string{"status": "committed"})
}

// Dashboard returns the derived dashboard figures
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}
