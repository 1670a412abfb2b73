package httptransport_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pcshop/internal/application/shop"
	"pcshop/internal/domain/pc"
	httptransport "pcshop/internal/infrastructure/http"
	"pcshop/internal/infrastructure/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqID struct{ n int }

func (g *seqID) NewID() string {
	g.n++
	return fmt.Sprintf("order-%d", g.n)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	xps, err := pc.NewPresetModel("xps", "dell", []string{"cpu", "ram"})
	require.NoError(t, err)
	catalog := map[string]*pc.PresetModel{xps.ModelName(): xps}

	h := httptransport.NewHandler(
		memory.NewCustomerRegistry(),
		memory.NewCardRegistry(),
		pc.NewCustomFactory(),
		catalog,
		shop.NewService(&seqID{}, nil),
	)
	return h.Router()
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

func TestOrderFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/customers", map[string]string{
		"first_name": "Jane", "last_name": "Doe",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/cards", map[string]any{
		"number": "12345678",
		"expiry": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"holder": "Jane Doe",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/models/custom", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var custom struct {
		Name string `json:"name"`
	}
	decodeBody(t, rec, &custom)
	assert.Equal(t, "custom-pc-1", custom.Name)

	for _, part := range []string{"ssd", "ssd", "gpu"} {
		rec = doJSON(t, router, http.MethodPost, "/models/custom/custom-pc-1/parts", map[string]string{"part": part})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"first_name":  "jane",
		"last_name":   "doe",
		"card_number": "12345678",
		"models":      []string{"xps", "custom-pc-1"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var placed struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
	}
	decodeBody(t, rec, &placed)
	assert.Equal(t, "placed", placed.Status)

	rec = doJSON(t, router, http.MethodPost, "/orders/"+placed.OrderID+"/fulfill", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fulfilled struct {
		Status         string                    `json:"status"`
		PresetOrders   map[string]map[string]int `json:"preset_orders"`
		WarehouseParts map[string]int            `json:"warehouse_parts"`
	}
	decodeBody(t, rec, &fulfilled)
	assert.Equal(t, "fulfilled", fulfilled.Status)
	assert.Equal(t, map[string]map[string]int{"dell": {"xps": 1}}, fulfilled.PresetOrders)
	assert.Equal(t, map[string]int{"ssd": 2, "gpu": 1}, fulfilled.WarehouseParts)

	// Fulfilling twice conflicts.
	rec = doJSON(t, router, http.MethodPost, "/orders/"+placed.OrderID+"/fulfill", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/stats/largest-customer", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var customerStats struct {
		Customer string `json:"customer"`
		Orders   int    `json:"orders"`
	}
	decodeBody(t, rec, &customerStats)
	assert.Equal(t, "jane - doe", customerStats.Customer)
	assert.Equal(t, 1, customerStats.Orders)

	rec = doJSON(t, router, http.MethodGet, "/stats/most-ordered-model", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/stats/most-ordered-part", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var partStats struct {
		Part   string `json:"part"`
		Orders int    `json:"orders"`
	}
	decodeBody(t, rec, &partStats)
	assert.Equal(t, "ssd", partStats.Part)
	assert.Equal(t, 2, partStats.Orders)
}

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("validation errors map to 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/customers", map[string]string{
			"first_name": "j4ne", "last_name": "doe",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown entities map to 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/models/custom/custom-pc-9/parts", map[string]string{"part": "x"})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/orders/missing/fulfill", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty stats map to 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/stats/largest-customer", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unregistered card maps to 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
			"first_name":  "jane",
			"last_name":   "doe",
			"card_number": "00000000",
			"models":      []string{"xps"},
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
