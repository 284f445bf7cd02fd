package erp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOAuthClientExchangeAuthorizationCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			t.Errorf("missing or wrong basic auth: %q/%q", user, pass)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "authorization_code" {
			t.Errorf("expected grant_type=authorization_code, got %q", got)
		}
		if got := r.PostForm.Get("code"); got != "auth-code-1" {
			t.Errorf("expected code=auth-code-1, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1","expires_in":3600,"token_type":"Bearer"}`))
	}))
	defer server.Close()

	client := NewOAuthClient(server.URL, "client-id", "client-secret", "erp")
	token, err := client.ExchangeAuthorizationCode(context.Background(), "auth-code-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.AccessToken != "at-1" || token.RefreshToken != "rt-1" || token.Provider != "erp" {
		t.Errorf("unexpected token: %+v", token)
	}
	if !token.IsActive {
		t.Error("expected token to be active")
	}
	if until := time.Until(token.ExpiresAt); until < 50*time.Minute || until > 70*time.Minute {
		t.Errorf("expected expiry roughly one hour out, got %v", until)
	}
	if !token.RefreshExpiresAt.After(token.ExpiresAt) {
		t.Error("expected refresh window to outlive the access token")
	}
}

func TestOAuthClientRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "refresh_token" {
			t.Errorf("expected grant_type=refresh_token, got %q", got)
		}
		if got := r.PostForm.Get("refresh_token"); got != "rt-1" {
			t.Errorf("expected refresh_token=rt-1, got %q", got)
		}
		w.Write([]byte(`{"access_token":"at-2","refresh_token":"rt-2","expires_in":3600,"token_type":"Bearer"}`))
	}))
	defer server.Close()

	client := NewOAuthClient(server.URL, "client-id", "client-secret", "erp")
	token, err := client.RefreshToken(context.Background(), "rt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.AccessToken != "at-2" || token.RefreshToken != "rt-2" {
		t.Errorf("unexpected token: %+v", token)
	}
}

func TestOAuthClientTokenEndpointFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewOAuthClient(server.URL, "client-id", "client-secret", "erp")
	if _, err := client.RefreshToken(context.Background(), "expired"); err == nil {
		t.Fatal("expected error on 400 from token endpoint, got nil")
	}
}
