package commerce

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEndpointAppendsTokenWithAmpersand(t *testing.T) {
	c := NewClient("https://shop.example.com/index.php?route=api")

	got := c.endpoint("sale/addPackage", "tok123")
	want := "https://shop.example.com/index.php?route=api/sale/addPackage&api_token=tok123"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("bad form: %v", err)
		}
		if r.PostFormValue("username") != "shop" || r.PostFormValue("key") != "secret" {
			t.Errorf("credentials not forwarded: %v", r.PostForm)
		}
		w.Write([]byte(`{"success": "true", "api_token": "tok123"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	token, err := c.Login(context.Background(), "shop", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok123" {
		t.Fatalf("expected tok123, got %q", token)
	}
}

func TestExpiredSessionMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if _, err := c.GetCart(context.Background(), "stale"); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestBackendRejectionWith200Surfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "Produkt nicht verfügbar"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	err := c.AddProduct(context.Background(), "tok", "55", 1)
	if err == nil || !strings.Contains(err.Error(), "Produkt nicht verfügbar") {
		t.Fatalf("backend message must surface, got %v", err)
	}
}

func TestGetCartDecodesKeyedOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "sale/getCart&api_token=tok") {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"cart": {"order": {"7": {"package": "Hardal Menü", "price": "25.00", "guests": "4", "products": {}}}},
			"products": [],
			"totals": [{"title": "Total", "text": "100.00€"}]
		}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	cart, err := c.GetCart(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Order) != 1 || cart.Order[0].ID != "7" || cart.Order[0].Guests != 4 {
		t.Fatalf("keyed order not normalized: %+v", cart.Order)
	}
}

func TestGetPaymentMethodsSortedByCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"payment_methods": {
			"cod": {"title": "Barzahlung"},
			"bank_transfer": {"title": "Überweisung"}
		}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	methods, err := c.GetPaymentMethods(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(methods) != 2 || methods[0].Code != "bank_transfer" || methods[1].Code != "cod" {
		t.Fatalf("methods not sorted by code: %+v", methods)
	}
}
