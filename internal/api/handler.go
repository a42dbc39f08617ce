package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/easyperl/fairbanks/internal/menu"
	"github.com/easyperl/fairbanks/internal/money"
	"github.com/easyperl/fairbanks/internal/render"
	"github.com/easyperl/fairbanks/internal/solver"
	"github.com/easyperl/fairbanks/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires solver and storage dependencies into HTTP handlers.
type Handler struct {
	solver  solver.Solver
	storage storage.Storage

	clock func() time.Time

	mu            sync.RWMutex
	menuUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(sv solver.Solver, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		solver:  sv,
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.menuUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetMenu(w http.ResponseWriter, r *http.Request) {
	_ = r
	items, err := h.storage.GetMenu()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := menuResponse{
		Items:     itemPayloads(items),
		UpdatedAt: h.currentMenuUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutMenu(w http.ResponseWriter, r *http.Request) {
	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid menu", "items must contain at least one entry")
		return
	}

	items, err := parseItems(req.Items)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid menu", err.Error())
		return
	}

	if err := h.storage.SetMenu(items); err != nil {
		if errors.Is(err, storage.ErrInvalidMenu) {
			writeError(w, http.StatusBadRequest, "Invalid menu", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markMenuUpdated()

	stored, err := h.storage.GetMenu()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := menuResponse{
		Items:     itemPayloads(stored),
		UpdatedAt: h.currentMenuUpdatedAt(),
		Message:   "Menu updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	target, err := money.Parse(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", fmt.Sprintf("target: %v", err))
		return
	}

	var items []menu.Item
	if len(req.Items) > 0 {
		items, err = parseItems(req.Items)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid items", err.Error())
			return
		}
	} else {
		items, err = h.storage.GetMenu()
		if err != nil {
			writeInternalError(w, err)
			return
		}
	}

	group := menu.Group{Target: target, Items: items}

	start := time.Now()
	combos, solveErr := h.solver.Enumerate(group.Target, group.Prices())
	elapsed := time.Since(start)

	if solveErr != nil {
		if errors.Is(solveErr, solver.ErrInvalidPrice) {
			writeError(w, http.StatusBadRequest, "Invalid items", solveErr.Error())
			return
		}
		writeInternalError(w, solveErr)
		return
	}

	result := render.Format(combos, menu.NewPriceIndex(items))

	resp := solveResponse{
		Target:            target.String(),
		Combinations:      result.Lines,
		Count:             result.Count,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	if result.Count == 0 {
		resp.Message = render.NoCombination
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentMenuUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.menuUpdatedAt
}

func (h *Handler) markMenuUpdated() {
	h.mu.Lock()
	h.menuUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// parseItems converts request payload items into menu items, validating names
// and currency strings.
func parseItems(payloads []itemPayload) ([]menu.Item, error) {
	items := make([]menu.Item, 0, len(payloads))
	for i, p := range payloads {
		if p.Name == "" {
			return nil, fmt.Errorf("item %d: name is required", i)
		}
		price, err := money.Parse(p.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d: %v", i, err)
		}
		items = append(items, menu.Item{Name: p.Name, Price: price})
	}
	return items, nil
}

func itemPayloads(items []menu.Item) []itemPayload {
	payloads := make([]itemPayload, len(items))
	for i, item := range items {
		payloads[i] = itemPayload{Name: item.Name, Price: item.Price.String()}
	}
	return payloads
}

type itemPayload struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type menuRequest struct {
	Items []itemPayload `json:"items"`
}

type solveRequest struct {
	Target string        `json:"target"`
	Items  []itemPayload `json:"items,omitempty"`
}

type solveResponse struct {
	Target            string   `json:"target"`
	Combinations      []string `json:"combinations"`
	Count             int      `json:"count"`
	Message           string   `json:"message,omitempty"`
	CalculationTimeMs int64    `json:"calculationTimeMs"`
}

type menuResponse struct {
	Items     []itemPayload `json:"items"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Message   string        `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
