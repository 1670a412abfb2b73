package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pcshop/internal/application/shop"
	"pcshop/internal/domain"
	"pcshop/internal/domain/pc"
	"pcshop/internal/infrastructure/memory"
	"pcshop/internal/observability"
	"pcshop/internal/observability/logctx"
)

// Handler is a thin transport layer over the shop core. It resolves request
// payloads to canonical domain objects and surfaces the core's errors
// verbatim: validation errors map to 400, state errors to 409, missing
// entities to 404.
type Handler struct {
	customers *memory.CustomerRegistry
	cards     *memory.CardRegistry
	factory   *pc.CustomFactory
	catalog   map[string]*pc.PresetModel
	shop      *shop.Service
}

func NewHandler(
	customers *memory.CustomerRegistry,
	cards *memory.CardRegistry,
	factory *pc.CustomFactory,
	catalog map[string]*pc.PresetModel,
	shopSvc *shop.Service,
) *Handler {
	return &Handler{
		customers: customers,
		cards:     cards,
		factory:   factory,
		catalog:   catalog,
		shop:      shopSvc,
	}
}

func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /customers", h.handleGetCustomer)
	mux.HandleFunc("POST /cards", h.handleGetCreditCard)
	mux.HandleFunc("POST /models/custom", h.handleCreateCustomModel)
	mux.HandleFunc("POST /models/custom/{name}/parts", h.handleAddPart)
	mux.HandleFunc("DELETE /models/custom/{name}/parts", h.handleRemovePart)
	mux.HandleFunc("POST /orders", h.handlePlaceOrder)
	mux.HandleFunc("POST /orders/{id}/fulfill", h.handleFulfillOrder)
	mux.HandleFunc("POST /orders/{id}/cancel", h.handleCancelOrder)
	mux.HandleFunc("GET /stats/largest-customer", h.handleLargestCustomer)
	mux.HandleFunc("GET /stats/most-ordered-model", h.handleMostOrderedModel)
	mux.HandleFunc("GET /stats/most-ordered-part", h.handleMostOrderedPart)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

type customerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type customerResponse struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *Handler) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r.Context(), r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.customers.GetCustomer(req.FirstName, req.LastName)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customerResponse{
		Name:      c.String(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
	})
}

type cardRequest struct {
	Number string    `json:"number"`
	Expiry time.Time `json:"expiry"`
	Holder string    `json:"holder"`
}

type cardResponse struct {
	Number string    `json:"number"`
	Expiry time.Time `json:"expiry"`
	Holder string    `json:"holder"`
}

func (h *Handler) handleGetCreditCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := decodeJSON(r.Context(), r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.cards.GetCreditCard(req.Number, req.Expiry, req.Holder)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cardResponse{
		Number: c.Number(),
		Expiry: c.Expiry(),
		Holder: c.Holder(),
	})
}

type customModelResponse struct {
	Name  string   `json:"name"`
	Parts []string `json:"parts"`
}

func (h *Handler) handleCreateCustomModel(w http.ResponseWriter, r *http.Request) {
	m := h.factory.New()
	writeJSON(w, http.StatusCreated, customModelResponse{
		Name:  m.ModelName(),
		Parts: m.Parts(),
	})
}

type partRequest struct {
	Part string `json:"part"`
}

func (h *Handler) handleAddPart(w http.ResponseWriter, r *http.Request) {
	m, ok := h.factory.Get(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("custom model not found"))
		return
	}

	var req partRequest
	if err := decodeJSON(r.Context(), r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	m.AddPart(req.Part)
	writeJSON(w, http.StatusOK, customModelResponse{
		Name:  m.ModelName(),
		Parts: m.Parts(),
	})
}

type removePartResponse struct {
	Removed bool     `json:"removed"`
	Parts   []string `json:"parts"`
}

func (h *Handler) handleRemovePart(w http.ResponseWriter, r *http.Request) {
	m, ok := h.factory.Get(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("custom model not found"))
		return
	}

	var req partRequest
	if err := decodeJSON(r.Context(), r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	removed := m.RemovePart(req.Part)
	writeJSON(w, http.StatusOK, removePartResponse{
		Removed: removed,
		Parts:   m.Parts(),
	})
}

type placeOrderRequest struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	CardNumber string   `json:"card_number"`
	Models     []string `json:"models"`
}

type orderResponse struct {
	OrderID  string    `json:"order_id"`
	Status   string    `json:"status"`
	PlacedAt time.Time `json:"placed_at"`
}

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decodeJSON(r.Context(), r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cust, err := h.customers.GetCustomer(req.FirstName, req.LastName)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	card, ok := h.cards.Lookup(req.CardNumber)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("credit card not registered"))
		return
	}

	models, err := h.resolveModels(req.Models)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	o, err := h.shop.PlaceOrder(r.Context(), models, cust, card)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, orderResponse{
		OrderID:  o.ID(),
		Status:   string(o.Status()),
		PlacedAt: o.PlacedAt(),
	})
}

// resolveModels maps model names to catalog presets first, then to custom
// models created through the factory.
func (h *Handler) resolveModels(names []string) ([]pc.Model, error) {
	models := make([]pc.Model, 0, len(names))
	for _, name := range names {
		if preset, ok := h.catalog[name]; ok {
			models = append(models, preset)
			continue
		}
		if custom, ok := h.factory.Get(name); ok {
			models = append(models, custom)
			continue
		}
		return nil, fmt.Errorf("%w: unknown model %q", domain.ErrValidation, name)
	}
	return models, nil
}

type fulfillResponse struct {
	OrderID        string                    `json:"order_id"`
	Status         string                    `json:"status"`
	PresetOrders   map[string]map[string]int `json:"preset_orders"`
	WarehouseParts map[string]int            `json:"warehouse_parts"`
}

func (h *Handler) handleFulfillOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.shop.Order(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("order not found"))
		return
	}

	details, err := h.shop.FulfillOrder(r.Context(), o)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, fulfillResponse{
		OrderID:        o.ID(),
		Status:         string(o.Status()),
		PresetOrders:   details.PresetOrders(),
		WarehouseParts: details.WarehouseParts(),
	})
}

func (h *Handler) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.shop.Order(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if err := h.shop.CancelOrder(r.Context(), o); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orderResponse{
		OrderID:  o.ID(),
		Status:   string(o.Status()),
		PlacedAt: o.PlacedAt(),
	})
}

type customerStatsResponse struct {
	Customer string `json:"customer"`
	Orders   int    `json:"orders"`
}

func (h *Handler) handleLargestCustomer(w http.ResponseWriter, r *http.Request) {
	stats := h.shop.LargestCustomer(r.Context())
	if stats == nil {
		writeError(w, http.StatusNotFound, errors.New("no fulfilled orders"))
		return
	}
	writeJSON(w, http.StatusOK, customerStatsResponse{
		Customer: stats.Customer.String(),
		Orders:   stats.Orders,
	})
}

type modelStatsResponse struct {
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Orders       int    `json:"orders"`
}

func (h *Handler) handleMostOrderedModel(w http.ResponseWriter, r *http.Request) {
	stats := h.shop.MostOrderedModel(r.Context())
	if stats == nil {
		writeError(w, http.StatusNotFound, errors.New("no fulfilled preset models"))
		return
	}
	writeJSON(w, http.StatusOK, modelStatsResponse{
		Model:        stats.Model.ModelName(),
		Manufacturer: stats.Model.Manufacturer(),
		Orders:       stats.Orders,
	})
}

type partsStatsResponse struct {
	Part   string `json:"part"`
	Orders int    `json:"orders"`
}

func (h *Handler) handleMostOrderedPart(w http.ResponseWriter, r *http.Request) {
	stats := h.shop.MostOrderedPart(r.Context())
	if stats == nil {
		writeError(w, http.StatusNotFound, errors.New("no fulfilled custom parts"))
		return
	}
	writeJSON(w, http.StatusOK, partsStatsResponse{
		Part:   stats.Part,
		Orders: stats.Orders,
	})
}

func decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		logctx.FromOr(ctx, observability.NopLogger()).Warn("request_decode_failed",
			observability.F("error", err.Error()),
		)
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
