package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pocketly/wallet-service/internal/models"
)

// CreateWallet handles wallet creation
func (h *Handler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	wallet, err := h.svc.CreateWallet(r.Context(), req.Name, models.WalletKind(req.Kind))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, wallet)
}

// ListWallets lists the authenticated user's wallets
func (h *Handler) ListWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.svc.ListWallets(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, wallets)
}

// CreateGoal handles savings goal creation
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		Emoji        string `json:"emoji"`
		Color        string `json:"color"`
		TargetAmount string `json:"target_amount"`
		Deadline     string `json:"deadline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "deadline must be YYYY-MM-DD"})
			return
		}
		deadline = &parsed
	}

	goal, err := h.svc.CreateGoal(r.Context(), req.Name, req.Emoji, req.Color, req.TargetAmount, deadline)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, goal)
}

// ListGoals lists the authenticated user's goals
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListGoals(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, goals)
}

// CreateTransaction appends an income or expense entry to the ledger
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
		Amount      string `json:"amount"`
		Kind        string `json:"kind"`
		Category    string `json:"category"`
		WalletID    string `json:"wallet_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	tx, err := h.svc.RecordTransaction(r.Context(), req.Description, req.Amount, models.TransactionKind(req.Kind), req.Category, req.WalletID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, tx)
}

// ListTransactions lists the authenticated user's ledger
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.ListTransactions(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, txs)
}

// CreateInvestment handles investment creation
func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Symbol   string `json:"symbol"`
		Quantity string `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	inv, err := h.svc.CreateInvestment(r.Context(), req.Name, req.Symbol, req.Quantity)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, inv)
}

// ListInvestments lists the authenticated user's investments
func (h *Handler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.ListInvestments(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, invs)
}
