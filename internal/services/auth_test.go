package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMagicLink(t *testing.T) {
	var gotPath, gotAPIKey, gotEmail string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		gotEmail, _ = body["email"].(string)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer provider.Close()

	client := NewAuthClient(provider.URL, "anon-key")
	if err := client.SendMagicLink(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("SendMagicLink failed: %v", err)
	}

	if gotPath != "/auth/v1/otp" {
		t.Errorf("Expected path /auth/v1/otp, got %s", gotPath)
	}
	if gotAPIKey != "anon-key" {
		t.Errorf("Expected apikey header, got %q", gotAPIKey)
	}
	if gotEmail != "user@example.com" {
		t.Errorf("Expected email forwarded, got %q", gotEmail)
	}
}

func TestSendMagicLinkProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"msg":"email rate limit exceeded"}`))
	}))
	defer provider.Close()

	client := NewAuthClient(provider.URL, "anon-key")
	if err := client.SendMagicLink(context.Background(), "user@example.com"); err == nil {
		t.Fatalf("Expected an error for a non-2xx provider response")
	}
}

func TestGetUser(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("Expected path /auth/v1/user, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("Expected bearer token forwarded, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"3f6c68ff-62ce-4c2c-a6ba-33ea0d0f2a35","email":"user@example.com"}`))
	}))
	defer provider.Close()

	client := NewAuthClient(provider.URL, "anon-key")
	user, ok, err := client.GetUser(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if !ok {
		t.Fatalf("Expected token to be accepted")
	}
	if user.ID.String() != "3f6c68ff-62ce-4c2c-a6ba-33ea0d0f2a35" {
		t.Errorf("Unexpected user id %s", user.ID)
	}
	if user.Email != "user@example.com" {
		t.Errorf("Unexpected email %s", user.Email)
	}
}

func TestGetUserRejectedToken(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer provider.Close()

	client := NewAuthClient(provider.URL, "anon-key")
	_, ok, err := client.GetUser(context.Background(), "dead-token")
	if err != nil {
		t.Fatalf("A rejected token is not an error: %v", err)
	}
	if ok {
		t.Fatalf("Expected token to be rejected")
	}
}

func TestSignOutTolerable(t *testing.T) {
	// 401 means the token is already dead, which is the state we wanted
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer provider.Close()

	client := NewAuthClient(provider.URL, "anon-key")
	if err := client.SignOut(context.Background(), "dead-token"); err != nil {
		t.Fatalf("Sign-out of a dead token should succeed, got %v", err)
	}
}

func TestSignOutProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer provider.Close()

	client := NewAuthClient(provider.URL, "anon-key")
	if err := client.SignOut(context.Background(), "tok-123"); err == nil {
		t.Fatalf("Expected an error for a 500 provider response")
	}
}
