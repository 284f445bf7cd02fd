package viacep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/01310100/json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	addr, err := c.Lookup(context.Background(), "01310100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Street != "Avenida Paulista" || addr.District != "Bela Vista" || addr.City != "São Paulo" || addr.State != "SP" {
		t.Fatalf("unexpected address: %+v", addr)
	}
	if addr.PostalCode != "01310100" {
		t.Fatalf("expected cep echoed back, got %q", addr.PostalCode)
	}
}

func TestClient_Lookup_UnknownCEP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	addr, err := c.Lookup(context.Background(), "99999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Street != "" || addr.City != "" || addr.PostalCode != "" {
		t.Fatalf("expected zero address for unknown cep, got %+v", addr)
	}
}

func TestClient_Lookup_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Lookup(context.Background(), "01310100"); err == nil {
		t.Fatal("expected error on 500")
	}
}
