package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratex/deposito-api/internal/application/catalog"
	"github.com/obratex/deposito-api/internal/application/lists"
	"github.com/obratex/deposito-api/internal/application/separation"
	"github.com/obratex/deposito-api/internal/application/stock"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/infrastructure/memory"
	apphttp "github.com/obratex/deposito-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta la aplicación Fiber completa sobre los repositorios en
// memoria, con el router real.
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	floorRepo := memory.NewFloorStockRepository(store)
	slotRepo := memory.NewSlotRepository(store)
	listRepo := memory.NewListRepository(store)
	buildingRepo := memory.NewBuildingRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	txRunner := memory.NewTxRunner(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ComputeStock: stock.NewComputeStockUseCase(productRepo, floorRepo, slotRepo),
		Movement:     stock.NewMovementUseCase(txRunner, productRepo),
		Lists:        lists.NewListUseCase(txRunner, listRepo, slotRepo),
		Slots:        lists.NewSlotUseCase(txRunner, slotRepo, productRepo, buildingRepo, listRepo),
		Planner:      separation.NewPlannerUseCase(productRepo, floorRepo, slotRepo),
		Products:     catalog.NewProductUseCase(productRepo, supplierRepo),
		Directory:    catalog.NewDirectoryUseCase(buildingRepo, supplierRepo),
	})
	return app, store
}

func seedProduct(t *testing.T, store *memory.Store, id string, floorQty int64) {
	t.Helper()
	require.NoError(t, memory.NewProductRepository(store).Create(&entity.Product{
		ID: id, Name: "producto " + id, UnitsPerBox: decimal.NewFromInt(10), CreatedAt: time.Now(),
	}))
	if floorQty > 0 {
		require.NoError(t, memory.NewFloorStockRepository(store).Create(&entity.FloorStockItem{
			ID: id + "-f1", ProductID: id, Lot: "L1", Tonality: "T1", Gauge: "G1",
			Quantity: decimal.NewFromInt(floorQty), CreatedAt: time.Now(),
		}))
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/stock/:productId
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStock_OK(t *testing.T) {
	app, store := buildTestApp(t)
	seedProduct(t, store, "p1", 15)

	resp := doJSON(t, app, http.MethodGet, "/api/stock/p1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "p1", body["product_id"])
	assert.Equal(t, "15", body["floor_total"], "decimal serializa como string")
	assert.Equal(t, "15", body["grand_total"])
}

func TestGetStock_ProductoInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/stock/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/stock/withdrawals
// ──────────────────────────────────────────────────────────────────────────────

func TestWithdraw_InsuficienteDevuelve422(t *testing.T) {
	app, store := buildTestApp(t)
	seedProduct(t, store, "p1", 5)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/withdrawals", fiber.Map{
		"product_id": "p1",
		"quantity":   "20",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestWithdraw_VarianteAMediasDevuelve400(t *testing.T) {
	app, store := buildTestApp(t)
	seedProduct(t, store, "p1", 5)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/withdrawals", fiber.Map{
		"product_id": "p1",
		"quantity":   "1",
		"lot":        "L1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	defer resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencia + retiro de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferYWithdraw_Ciclo(t *testing.T) {
	app, store := buildTestApp(t)
	seedProduct(t, store, "p1", 0)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/transfers", fiber.Map{
		"product_id": "p1", "quantity": "10",
		"lot": "L1", "tonality": "T1", "gauge": "G1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/stock/withdrawals", fiber.Map{
		"product_id": "p1", "quantity": "10",
		"lot": "L1", "tonality": "T1", "gauge": "G1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/stock/p1", nil)
	body := decodeBody(t, resp)
	assert.Equal(t, "0", body["grand_total"], "el ciclo completo deja el stock en cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores de listas
// ──────────────────────────────────────────────────────────────────────────────

func TestListLifecycle_ViaHTTP(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/lists/", fiber.Map{"name": "lista A"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	listID, _ := created["id"].(string)
	require.NotEmpty(t, listID)

	// Nombre duplicado
	resp = doJSON(t, app, http.MethodPost, "/api/lists/", fiber.Map{"name": "lista A"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "DUPLICATE", body["code"])

	// Finalizar dos veces: la segunda es conflicto de estado
	resp = doJSON(t, app, http.MethodPost, "/api/lists/"+listID+"/finalize", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/lists/"+listID+"/finalize", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "INVALID_STATE", body["code"])
}
