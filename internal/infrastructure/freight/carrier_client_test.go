package freight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCarrierClientQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cep"); got != "01310100" {
			t.Errorf("expected cep=01310100, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"service":"SEDEX","price_cents":2590,"delivery_days":2},
			{"service":"PAC","price_cents":1490,"delivery_days":7}
		]`))
	}))
	defer server.Close()

	client := NewCarrierClient(server.URL)
	quotes, err := client.Quote(context.Background(), "01310100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if quotes[0].ServiceName != "SEDEX" || quotes[0].PriceCents != 2590 || quotes[0].DeliveryDays != 2 {
		t.Errorf("unexpected first quote: %+v", quotes[0])
	}
	if quotes[0].Index != 0 || quotes[1].Index != 1 {
		t.Errorf("expected sequential indexes, got %d and %d", quotes[0].Index, quotes[1].Index)
	}
}

func TestCarrierClientQuoteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewCarrierClient(server.URL)
	if _, err := client.Quote(context.Background(), "01310100"); err == nil {
		t.Fatal("expected error on carrier failure, got nil")
	}
}
