package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ciencia-backend-go/internal/config"
	"ciencia-backend-go/internal/db"
	"ciencia-backend-go/internal/models"
	"ciencia-backend-go/internal/repo"
	"ciencia-backend-go/internal/schema"
	"ciencia-backend-go/internal/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := schema.Create(database); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	cfg := config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "ciencia-test",
		AccessTTLSeconds:  3600,
		RefreshTTLSeconds: 86400,
		MediaStoragePath:  t.TempDir(),
	}
	return NewServer(database, cfg, services.NewMetricsHub())
}

func seedAdmin(t *testing.T, s *Server, email, password string) int64 {
	t.Helper()
	hash, err := s.Tokens.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	id, err := repo.InsertAdministrator(s.DB, models.Administrator{Email: email, Password: hash})
	if err != nil {
		t.Fatalf("seed administrator: %v", err)
	}
	return id
}

func accessTokenFor(t *testing.T, s *Server, id int64, email string) string {
	t.Helper()
	token, _, err := s.Tokens.CreateAccessToken(id, email)
	if err != nil {
		t.Fatalf("create access token: %v", err)
	}
	return token
}

// doJSON drives a request through the full router so middleware and route
// wiring are exercised, not just the handler funcs.
func doJSON(t *testing.T, s *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(into); err != nil {
		t.Fatalf("decode response body: %v (body=%s)", err, rec.Body.String())
	}
}
