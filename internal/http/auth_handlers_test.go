package httpapi

import (
	"net/http"
	"testing"
)

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	id := seedAdmin(t, s, "admin@ifes.com", "senha-forte")

	rec := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "admin@ifes.com", Password: "senha-forte"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp TokenResponse
	decodeBody(t, rec, &resp)
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens in the response")
	}
	if resp.Admin.ID != id || resp.Admin.Email != "admin@ifes.com" {
		t.Errorf("unexpected admin payload: %+v", resp.Admin)
	}

	_, claims, err := s.Tokens.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims["typ"] != "access" {
		t.Errorf("unexpected typ: %v", claims["typ"])
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestServer(t)
	seedAdmin(t, s, "admin@ifes.com", "senha-forte")

	rec := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "admin@ifes.com", Password: "errada"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "nobody@ifes.com", Password: "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "", Password: ""})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	s := newTestServer(t)
	seedAdmin(t, s, "admin@ifes.com", "senha-forte")

	login := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "admin@ifes.com", Password: "senha-forte"})
	var first TokenResponse
	decodeBody(t, login, &first)

	rec := doJSON(t, s, http.MethodPost, "/api/auth/refresh", "", RefreshRequest{RefreshToken: first.RefreshToken})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var second TokenResponse
	decodeBody(t, rec, &second)
	if second.AccessToken == "" || second.RefreshToken == "" {
		t.Error("expected a fresh token pair")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	s := newTestServer(t)
	id := seedAdmin(t, s, "admin@ifes.com", "senha-forte")
	access := accessTokenFor(t, s, id, "admin@ifes.com")

	rec := doJSON(t, s, http.MethodPost, "/api/auth/refresh", "", RefreshRequest{RefreshToken: access})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for access token used as refresh, got %d", rec.Code)
	}
}

func TestMeRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/me/", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestMeReturnsCurrentAdministrator(t *testing.T) {
	s := newTestServer(t)
	id := seedAdmin(t, s, "admin@ifes.com", "senha-forte")
	token := accessTokenFor(t, s, id, "admin@ifes.com")

	rec := doJSON(t, s, http.MethodGet, "/api/me/", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var dto AdministratorDTO
	decodeBody(t, rec, &dto)
	if dto.ID != id || dto.Email != "admin@ifes.com" {
		t.Errorf("unexpected payload: %+v", dto)
	}
}

func TestChangePassword(t *testing.T) {
	s := newTestServer(t)
	id := seedAdmin(t, s, "admin@ifes.com", "senha-antiga")
	token := accessTokenFor(t, s, id, "admin@ifes.com")

	rec := doJSON(t, s, http.MethodPut, "/api/me/password", token, ChangePasswordRequest{
		CurrentPassword: "senha-antiga",
		NewPassword:     "senha-nova",
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%s)", rec.Code, rec.Body.String())
	}

	old := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "admin@ifes.com", Password: "senha-antiga"})
	if old.Code != http.StatusUnauthorized {
		t.Errorf("old password still accepted: %d", old.Code)
	}
	fresh := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "admin@ifes.com", Password: "senha-nova"})
	if fresh.Code != http.StatusOK {
		t.Errorf("new password rejected: %d", fresh.Code)
	}
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	s := newTestServer(t)
	id := seedAdmin(t, s, "admin@ifes.com", "senha-antiga")
	token := accessTokenFor(t, s, id, "admin@ifes.com")

	rec := doJSON(t, s, http.MethodPut, "/api/me/password", token, ChangePasswordRequest{
		CurrentPassword: "errada",
		NewPassword:     "senha-nova",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
