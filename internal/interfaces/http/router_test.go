package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/melo-compras/internal/application/analytics"
	"github.com/jhoicas/melo-compras/internal/application/auth"
	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/application/usecase"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/infrastructure/meloapi"
	"github.com/jhoicas/melo-compras/internal/infrastructure/pdf"
	"github.com/jhoicas/melo-compras/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/melo-compras/internal/interfaces/http"
)

// fakeMelo simula la API remota con las rutas que usan estos tests.
func fakeMelo(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"_id":"1","discriminacao":"Cimento CP-II 50kg","unidade":"SC","precoUnitario":38.9},
			{"_id":"2","discriminacao":"Areia média","unidade":"M3","precoUnitario":"120.00"}
		]`)
	})
	mux.HandleFunc("/pedidos", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[]`)
			return
		}
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		body["_id"] = "p1"
		body["numeroPedido"] = 7
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("/pedidos/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Pedido não encontrado"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func buildRouterApp(t *testing.T) *fiber.App {
	t.Helper()
	client := meloapi.NewClient(fakeMelo(t).URL, 5*time.Second, nil)
	orders := meloapi.NewOrderRepository(client)
	catalog := meloapi.NewCatalogRepository(client)
	suppliers := meloapi.NewSupplierRepository(client)
	sites := meloapi.NewSiteRepository(client)
	requests := meloapi.NewRequestRepository(client)
	editor := procurement.NewOrderEditor(orders, catalog, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(meloapi.NewAuthGateway(client), nil),
		Editor:     editor,
		Export:     procurement.NewExportUseCase(orders, suppliers, sites, pdf.NewMarotoPDFGenerator(), xlsx.NewOrdersSheet(), entity.CompanyProfile{Name: "Melo Engenharia"}, nil),
		Conversion: procurement.NewRequestConversion(requests, catalog, editor),
		SupplierUC: usecase.NewSupplierUseCase(suppliers),
		CatalogUC:  usecase.NewCatalogUseCase(catalog),
		SiteUC:     usecase.NewSiteUseCase(sites),
		EngineerUC: usecase.NewEngineerUseCase(meloapi.NewEngineerRepository(client)),
		RequestUC:  usecase.NewRequestUseCase(requests),
		UserUC:     usecase.NewUserUseCase(meloapi.NewUserRepository(client)),
		Dashboard:  appanalytics.NewDashboardUseCase(orders, requests),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, bearer string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	var out map[string]interface{}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func draftOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	o, ok := body["order"].(map[string]interface{})
	require.True(t, ok, "la respuesta debe traer order")
	return o
}

// ──────────────────────────────────────────────────────────────────────────────
// Borradores
// ──────────────────────────────────────────────────────────────────────────────

func TestDraft_FlujoCompletoConCatalogo(t *testing.T) {
	app := buildRouterApp(t)
	bearer := bearerForRole(t, "user")

	resp, body := call(t, app, http.MethodPost, "/api/pedidos/draft", bearer, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "0.00", body["grand_total_display"])
	order := draftOf(t, body)

	resp, body = call(t, app, http.MethodPost, "/api/pedidos/draft/lines", bearer, fiber.Map{"order": order})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	order = draftOf(t, body)
	require.Len(t, order["items"], 1)

	resp, body = call(t, app, http.MethodPatch, "/api/pedidos/draft/lines/0", bearer,
		fiber.Map{"order": order, "field": "quantity", "value": "3"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	order = draftOf(t, body)

	resp, body = call(t, app, http.MethodPatch, "/api/pedidos/draft/lines/0", bearer,
		fiber.Map{"order": order, "field": "description", "value": "Cimento CP-II 50kg"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "116.70", body["grand_total_display"])
	order = draftOf(t, body)
	line := order["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "SC", line["unit"])

	resp, body = call(t, app, http.MethodPut, "/api/pedidos/draft/shipping", bearer,
		fiber.Map{"order": order, "value": 3.3})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "120.00", body["grand_total_display"])
	assert.Equal(t, "3.30", body["shipping_cost_display"])
	order = draftOf(t, body)

	resp, body = call(t, app, http.MethodDelete, "/api/pedidos/draft/lines/0", bearer, fiber.Map{"order": order})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "3.30", body["grand_total_display"])
}

func TestDraft_IndiceInvalido(t *testing.T) {
	app := buildRouterApp(t)
	bearer := bearerForRole(t, "user")
	order := fiber.Map{"items": []fiber.Map{{"description": "x", "quantity": "1", "unit_price": "2"}}}

	resp, body := call(t, app, http.MethodPatch, "/api/pedidos/draft/lines/abc", bearer,
		fiber.Map{"order": order, "field": "quantity", "value": "2"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INDEX", body["code"])

	resp, body = call(t, app, http.MethodDelete, "/api/pedidos/draft/lines/5", bearer, fiber.Map{"order": order})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", body["code"])
}

func TestDraft_CampoDesconocido(t *testing.T) {
	app := buildRouterApp(t)
	order := fiber.Map{"items": []fiber.Map{{"quantity": "1", "unit_price": "2"}}}
	resp, _ := call(t, app, http.MethodPatch, "/api/pedidos/draft/lines/0", bearerForRole(t, "user"),
		fiber.Map{"order": order, "field": "line_total", "value": "999"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDraft_PDF(t *testing.T) {
	app := buildRouterApp(t)
	order := fiber.Map{"supplier_id": "f1", "site_id": "o1", "items": []fiber.Map{{"description": "Areia", "quantity": "2", "unit": "M3", "unit_price": "120"}}}
	req := httptest.NewRequest(http.MethodPost, "/api/pedidos/draft/pdf", strings.NewReader(mustJSON(t, fiber.Map{"order": order})))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerForRole(t, "user"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "pedido_novo.pdf")
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistidos y errores
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_CreateSinProveedorEsValidacion(t *testing.T) {
	app := buildRouterApp(t)
	resp, body := call(t, app, http.MethodPost, "/api/pedidos", bearerForRole(t, "user"), fiber.Map{"site_id": "o1"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	fields, _ := body["fields"].(map[string]interface{})
	assert.Equal(t, "required", fields["supplier_id"])
}

func TestOrders_CreateRecalculaAntesDeGuardar(t *testing.T) {
	app := buildRouterApp(t)
	in := fiber.Map{
		"supplier_id": "f1", "site_id": "o1", "shipping_cost": "3", "grand_total": "9999",
		"items": []fiber.Map{{"description": "Areia", "quantity": "2", "unit_price": "10.50", "line_total": "1"}},
	}
	resp, body := call(t, app, http.MethodPost, "/api/pedidos", bearerForRole(t, "user"), in)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "24.00", body["grand_total_display"])
	order := draftOf(t, body)
	assert.Equal(t, "p1", order["id"])
}

func TestOrders_GetInexistenteEs404(t *testing.T) {
	app := buildRouterApp(t)
	resp, body := call(t, app, http.MethodGet, "/api/pedidos/nao-existe", bearerForRole(t, "user"), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestOrders_ExportConFechaInvalida(t *testing.T) {
	app := buildRouterApp(t)
	resp, body := call(t, app, http.MethodGet, "/api/pedidos/export.xlsx?dataInicio=31-12-2024", bearerForRole(t, "user"), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestOrders_SinTokenEs401(t *testing.T) {
	app := buildRouterApp(t)
	resp, body := call(t, app, http.MethodGet, "/api/pedidos", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles por recurso
// ──────────────────────────────────────────────────────────────────────────────

func TestCadastros_EscrituraSoloAdmin(t *testing.T) {
	app := buildRouterApp(t)
	resp, body := call(t, app, http.MethodPost, "/api/items", bearerForRole(t, "user"), fiber.Map{"description": "Brita"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["code"])

	resp, body = call(t, app, http.MethodGet, "/api/items?q=cimento", bearerForRole(t, "user"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])
}

func TestUsuarios_SoloAdmin(t *testing.T) {
	app := buildRouterApp(t)
	resp, _ := call(t, app, http.MethodGet, "/api/users", bearerForRole(t, "engenheiro"), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMe(t *testing.T) {
	app := buildRouterApp(t)
	resp, body := call(t, app, http.MethodGet, "/api/auth/me", bearerForRole(t, "engenheiro"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "engenheiro", body["role"])
	assert.Equal(t, testUserID, body["user_id"])
}

func TestDashboard_UpstreamCaido(t *testing.T) {
	app := buildRouterApp(t)
	// /solicitacoes no existe en la API simulada: 404 remoto → 404 del recurso
	resp, body := call(t, app, http.MethodGet, "/api/dashboard/summary", bearerForRole(t, "admin"), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}
