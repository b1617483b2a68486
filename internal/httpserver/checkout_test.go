package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"alanshor-pos/internal/checkout"
	"alanshor-pos/internal/domain"
	catalogrepo "alanshor-pos/internal/repository/catalog"
	customerrepo "alanshor-pos/internal/repository/customer"
	salesrepo "alanshor-pos/internal/repository/sales"
	settingsrepo "alanshor-pos/internal/repository/settings"
	"alanshor-pos/internal/seed"
	customersvc "alanshor-pos/internal/service/customer"
	inventorysvc "alanshor-pos/internal/service/inventory"
	reportsvc "alanshor-pos/internal/service/report"
	settingssvc "alanshor-pos/internal/service/settings"
)

type sessionView struct {
	ID      string               `json:"id"`
	Lines   []domain.LineItem    `json:"lineItems"`
	Totals  domain.Totals        `json:"totals"`
	State   domain.CheckoutState `json:"state"`
	Payment domain.PaymentState  `json:"payment"`
}

func newTestRouter(t *testing.T, opts checkout.Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)

	catalog := catalogrepo.NewMemory(seed.Products())
	mgr := checkout.NewManager(catalog, checkout.NewCalculator(0.11), opts)

	return buildRouter(logger, Deps{
		Checkout:  mgr,
		Inventory: inventorysvc.New(catalog),
		Customers: customersvc.New(customerrepo.NewMemory(seed.Customers())),
		Reports:   reportsvc.New(salesrepo.NewMemory(seed.WeeklySales(), seed.DailyReports(), seed.DashboardStats())),
		Settings:  settingssvc.New(settingsrepo.NewMemory(seed.StoreProfile(), seed.Users())),
	}, RouterOptions{})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) sessionView {
	t.Helper()
	var view sessionView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode session: %v (%s)", err, rec.Body.String())
	}
	return view
}

func openSession(t *testing.T, router *gin.Engine) sessionView {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/checkout/sessions", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("open session: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	return decodeSession(t, rec)
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t, checkout.Options{ResetDelay: 20 * time.Millisecond})
	session := openSession(t, router)
	base := "/api/checkout/sessions/" + session.ID

	// Scan the instant-noodle barcode; one unit lands in the cart.
	rec := doJSON(t, router, http.MethodPost, base+"/scan", gin.H{"barcode": "899270110207"})
	if rec.Code != http.StatusOK {
		t.Fatalf("scan: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var scanResp struct {
		Matched bool        `json:"matched"`
		Session sessionView `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &scanResp); err != nil {
		t.Fatalf("decode scan: %v", err)
	}
	if !scanResp.Matched {
		t.Fatalf("expected barcode match")
	}
	if len(scanResp.Session.Lines) != 1 || scanResp.Session.Lines[0].ProductID != "7" || scanResp.Session.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected cart after scan: %+v", scanResp.Session.Lines)
	}

	// Bump to two units and check the derived totals.
	rec = doJSON(t, router, http.MethodPut, base+"/items/7", gin.H{"quantity": 2})
	view := decodeSession(t, rec)
	if view.Totals.Subtotal != 6000 || view.Totals.Tax != 660 || view.Totals.Total != 6660 {
		t.Fatalf("unexpected totals: %+v", view.Totals)
	}

	rec = doJSON(t, router, http.MethodPost, base+"/pay", nil)
	if decodeSession(t, rec).State != domain.StatePaymentSelection {
		t.Fatalf("expected paymentSelection after pay")
	}

	rec = doJSON(t, router, http.MethodPut, base+"/payment", gin.H{"method": "cash", "cashReceived": 10000})
	view = decodeSession(t, rec)
	if view.Totals.Change != 3340 {
		t.Fatalf("expected change 3340, got %d", view.Totals.Change)
	}

	rec = doJSON(t, router, http.MethodPost, base+"/confirm", nil)
	if decodeSession(t, rec).State != domain.StateConfirmed {
		t.Fatalf("expected confirmed state")
	}

	// The success screen dismisses itself and the register is ready again.
	deadline := time.Now().Add(time.Second)
	for {
		rec = doJSON(t, router, http.MethodGet, base, nil)
		view = decodeSession(t, rec)
		if view.State == domain.StateIdle {
			if len(view.Lines) != 0 {
				t.Fatalf("expected cleared cart, got %+v", view.Lines)
			}
			if view.Payment.CashReceived != 0 || view.Payment.Method != domain.PaymentCash {
				t.Fatalf("expected payment reset, got %+v", view.Payment)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("session stuck in %s", view.State)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPayEmptyCartOverHTTP(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	session := openSession(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/checkout/sessions/"+session.ID+"/pay", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestScanUnknownBarcodeOverHTTP(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	session := openSession(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/checkout/sessions/"+session.ID+"/scan", gin.H{"barcode": "000"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var scanResp struct {
		Matched bool        `json:"matched"`
		Session sessionView `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &scanResp); err != nil {
		t.Fatalf("decode scan: %v", err)
	}
	if scanResp.Matched || len(scanResp.Session.Lines) != 0 {
		t.Fatalf("expected silent no-op, got %+v", scanResp)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	rec := doJSON(t, router, http.MethodGet, "/api/checkout/sessions/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestStrictCashConfirmOverHTTP(t *testing.T) {
	router := newTestRouter(t, checkout.Options{StrictCash: true, ResetDelay: time.Minute})
	session := openSession(t, router)
	base := "/api/checkout/sessions/" + session.ID

	doJSON(t, router, http.MethodPost, base+"/items", gin.H{"productId": "1"})
	doJSON(t, router, http.MethodPost, base+"/pay", nil)
	doJSON(t, router, http.MethodPut, base+"/payment", gin.H{"method": "cash", "cashReceived": 100})

	rec := doJSON(t, router, http.MethodPost, base+"/confirm", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Code != "insufficient_payment" {
		t.Fatalf("expected insufficient_payment code, got %q", resp.Code)
	}
}

func TestCloseSessionOverHTTP(t *testing.T) {
	router := newTestRouter(t, checkout.Options{})
	session := openSession(t, router)

	rec := doJSON(t, router, http.MethodDelete, "/api/checkout/sessions/"+session.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/checkout/sessions/"+session.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after close, got %d", rec.Code)
	}
}
