package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"trade_gateway/internal/models"
	accsvc "trade_gateway/internal/modules/accounts/service"

	"github.com/bytedance/sonic"
)

// HistoryService is the historical-trades pipeline port.
type HistoryService interface {
	HistoricalTrades(ctx context.Context, accountID, rangeSelector string, offset int) ([]models.Trade, error)
}

// AccountRegistry is the account lifecycle port.
type AccountRegistry interface {
	Register(ctx context.Context, account *models.Account) error
	Get(ctx context.Context, id string) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Deploy(ctx context.Context, id string) error
	Undeploy(ctx context.Context, id string) error
}

// Terminal is the read-only account state surface of the terminal client.
type Terminal interface {
	AccountInformation(ctx context.Context, accountID string) (models.AccountInformation, error)
	Positions(ctx context.Context, accountID string) ([]models.Position, error)
}

type Handlers struct {
	registry AccountRegistry
	history  HistoryService
	terminal Terminal
	state    *State
}

func NewHandlers(registry AccountRegistry, history HistoryService, terminal Terminal, state *State) *Handlers {
	return &Handlers{
		registry: registry,
		history:  history,
		terminal: terminal,
		state:    state,
	}
}

// Register wires the public API routes into the mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/accounts", h.observed("api.RegisterAccount", h.registerAccount))
	mux.HandleFunc("GET /api/accounts", h.observed("api.ListAccounts", h.listAccounts))
	mux.HandleFunc("GET /api/accounts/{id}", h.observed("api.GetAccount", h.getAccount))
	mux.HandleFunc("GET /api/accounts/{id}/positions", h.observed("api.Positions", h.positions))
	mux.HandleFunc("GET /api/accounts/{id}/history-trades", h.observed("api.HistoryTrades", h.historyTrades))
	mux.HandleFunc("POST /api/accounts/{id}/deploy", h.observed("api.DeployAccount", h.deployAccount))
	mux.HandleFunc("POST /api/accounts/{id}/undeploy", h.observed("api.UndeployAccount", h.undeployAccount))
}

type registerAccountRequest struct {
	ID         string            `json:"id,omitempty"`
	Login      string            `json:"login"`
	ServerName string            `json:"serverName"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

func (h *Handlers) registerAccount(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", "cannot read body")
		return
	}
	var req registerAccountRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", "invalid JSON body")
		return
	}

	account := &models.Account{
		ID:         req.ID,
		Login:      req.Login,
		ServerName: req.ServerName,
		Metadata:   req.Metadata,
	}
	if err := h.registry.Register(r.Context(), account); err != nil {
		if errors.Is(err, accsvc.ErrAccountExists) {
			writeError(w, http.StatusConflict, "Conflict", "account already registered")
			return
		}
		writeError(w, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (h *Handlers) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.registry.List(r.Context())
	if err != nil {
		writeClassified(w, err)
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *Handlers) getAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.resolveAccount(w, r)
	if !ok {
		return
	}

	info, err := h.terminal.AccountInformation(r.Context(), account.ID)
	if err != nil {
		writeClassified(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Account            *models.Account           `json:"account"`
		AccountInformation models.AccountInformation `json:"accountInformation"`
	}{account, info})
}

func (h *Handlers) positions(w http.ResponseWriter, r *http.Request) {
	account, ok := h.resolveAccount(w, r)
	if !ok {
		return
	}

	positions, err := h.terminal.Positions(r.Context(), account.ID)
	if err != nil {
		writeClassified(w, err)
		return
	}
	if positions == nil {
		positions = []models.Position{}
	}
	writeJSON(w, http.StatusOK, positions)
}

func (h *Handlers) historyTrades(w http.ResponseWriter, r *http.Request) {
	account, ok := h.resolveAccount(w, r)
	if !ok {
		return
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "BadRequest", "offset must be a non-negative integer")
			return
		}
		offset = n
	}

	trades, err := h.history.HistoricalTrades(r.Context(), account.ID, r.URL.Query().Get("range"), offset)
	if err != nil {
		writeClassified(w, err)
		return
	}
	if trades == nil {
		trades = []models.Trade{}
	}
	writeJSON(w, http.StatusOK, trades)
}

func (h *Handlers) deployAccount(w http.ResponseWriter, r *http.Request) {
	h.flipState(w, r, h.registry.Deploy)
}

func (h *Handlers) undeployAccount(w http.ResponseWriter, r *http.Request) {
	h.flipState(w, r, h.registry.Undeploy)
}

func (h *Handlers) flipState(w http.ResponseWriter, r *http.Request, flip func(context.Context, string) error) {
	id := r.PathValue("id")
	if err := flip(r.Context(), id); err != nil {
		if errors.Is(err, accsvc.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "NotFound", "account not found")
			return
		}
		writeClassified(w, err)
		return
	}
	account, err := h.registry.Get(r.Context(), id)
	if err != nil {
		writeClassified(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handlers) resolveAccount(w http.ResponseWriter, r *http.Request) (*models.Account, bool) {
	account, err := h.registry.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, accsvc.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "NotFound", "account not found")
			return nil, false
		}
		writeClassified(w, err)
		return nil, false
	}
	return account, true
}
