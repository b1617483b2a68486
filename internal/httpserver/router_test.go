package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"alanshor-pos/internal/checkout"
	"alanshor-pos/internal/domain"
)

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodGet, "/readyz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMetricsDisabledByDefault(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when metrics disabled, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodGet, "/api/products?q=mie", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Products[0].ID != "7" {
		t.Fatalf("unexpected search result: %+v", resp)
	}
}

func TestCreateAndFetchProduct(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"name": "Teh Botol", "barcode": "899270110299", "category": "Minuman", "price": 5000, "stock": 40,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/products/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreateProductValidationOverHTTP(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodPost, "/api/products", map[string]interface{}{"name": "X"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestDailyReportFilter(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodGet, "/api/reports/daily?date=2024-07-03", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Rows  []domain.SalesReportRow `json:"rows"`
		Total int                     `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Rows[0].Revenue != 15000000 {
		t.Fatalf("unexpected report rows: %+v", resp)
	}
}

func TestDashboardPayload(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodGet, "/api/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Stats       domain.DashboardStats `json:"stats"`
		WeeklySales []domain.SalesPoint   `json:"weeklySales"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Stats.Transactions != 482 || len(resp.WeeklySales) != 7 {
		t.Fatalf("unexpected dashboard payload: %+v", resp)
	}
}

func TestStoreProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodPut, "/api/settings/store", map[string]string{
		"name": "Toko Baru", "address": "Jl. B", "phone": "0813",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/settings/store", nil)
	var profile domain.StoreProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.Name != "Toko Baru" {
		t.Fatalf("expected updated profile, got %+v", profile)
	}
}

func TestListCustomersSearch(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodGet, "/api/customers?q=budi", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Customers []domain.Customer `json:"customers"`
		Total     int               `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Customers[0].Name != "Budi Santoso" {
		t.Fatalf("unexpected customers: %+v", resp)
	}
}
