package httpapi

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/api/admin/administrators/",
		"/api/admin/experiments/",
		"/api/admin/team/",
	} {
		rec := doJSON(t, s, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestCreateAdministrator(t *testing.T) {
	s := newTestServer(t)
	id := seedAdmin(t, s, "root@ifes.com", "senha")
	token := accessTokenFor(t, s, id, "root@ifes.com")

	rec := doJSON(t, s, http.MethodPost, "/api/admin/administrators/", token, AdministratorCreateRequest{
		Email:    "novo@ifes.com",
		Password: "senha-nova",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var dto AdministratorDTO
	decodeBody(t, rec, &dto)
	if dto.Email != "novo@ifes.com" || dto.ID <= 0 {
		t.Errorf("unexpected payload: %+v", dto)
	}

	login := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "novo@ifes.com", Password: "senha-nova"})
	if login.Code != http.StatusOK {
		t.Errorf("new administrator cannot log in: %d", login.Code)
	}
}

func TestCreateAdministratorRejectsDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	id := seedAdmin(t, s, "root@ifes.com", "senha")
	token := accessTokenFor(t, s, id, "root@ifes.com")

	rec := doJSON(t, s, http.MethodPost, "/api/admin/administrators/", token, AdministratorCreateRequest{
		Email:    "root@ifes.com",
		Password: "outra",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateAdministratorKeepsPasswordWhenOmitted(t *testing.T) {
	s := newTestServer(t)
	rootID := seedAdmin(t, s, "root@ifes.com", "senha-root")
	token := accessTokenFor(t, s, rootID, "root@ifes.com")
	otherID := seedAdmin(t, s, "outro@ifes.com", "senha-original")

	rec := doJSON(t, s, http.MethodPut, fmt.Sprintf("/api/admin/administrators/%d", otherID), token, AdministratorUpdateRequest{
		Email: "renomeado@ifes.com",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	login := doJSON(t, s, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "renomeado@ifes.com", Password: "senha-original"})
	if login.Code != http.StatusOK {
		t.Errorf("original password lost on update: %d", login.Code)
	}
}

func TestDeleteAdministratorBlocksSelfDelete(t *testing.T) {
	s := newTestServer(t)
	id := seedAdmin(t, s, "root@ifes.com", "senha")
	token := accessTokenFor(t, s, id, "root@ifes.com")

	rec := doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/admin/administrators/%d", id), token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for self delete, got %d", rec.Code)
	}
}

func TestDeleteAdministrator(t *testing.T) {
	s := newTestServer(t)
	rootID := seedAdmin(t, s, "root@ifes.com", "senha")
	token := accessTokenFor(t, s, rootID, "root@ifes.com")
	otherID := seedAdmin(t, s, "outro@ifes.com", "senha")

	rec := doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/admin/administrators/%d", otherID), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	again := doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/admin/administrators/%d", otherID), token, nil)
	if again.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", again.Code)
	}
}
