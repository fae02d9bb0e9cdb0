package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slot_backend/internal/api/auth"
	"slot_backend/internal/model"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeAuth struct {
	refreshed *model.AuthData
}

func (f *fakeAuth) Register(context.Context, *model.Player) (*model.AuthData, error) {
	return &model.AuthData{AccessToken: "access", RefreshToken: "refresh", SessionID: "sid"}, nil
}

func (f *fakeAuth) Login(_ context.Context, login, password string) (*model.AuthData, error) {
	if login != "ann" || password != "pw" {
		return nil, model.ErrInvalidCredentials
	}
	return &model.AuthData{AccessToken: "access", RefreshToken: "refresh", SessionID: "sid"}, nil
}

func (f *fakeAuth) Refresh(_ context.Context, data *model.AuthData) (string, error) {
	f.refreshed = data
	if data.RefreshToken != "refresh" {
		return "", model.ErrUnauthorized
	}
	return "new-access", nil
}

func (f *fakeAuth) Logout(context.Context, string) error { return nil }

func newHandler() (*auth.Handler, *fakeAuth) {
	f := &fakeAuth{}
	return auth.NewHandler(auth.HandlerDeps{Serv: f, Log: zap.NewNop(), RefreshTTL: time.Hour}), f
}

func TestRegisterSetsCookies(t *testing.T) {
	h, _ := newHandler()

	r := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Ann","login":"ann","password":"pw"}`))
	w := httptest.NewRecorder()
	h.Register(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	cookies := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		cookies[c.Name] = c
	}
	if c := cookies["refresh_token"]; c == nil || c.Value != "refresh" || c.Path != "/auth" || !c.HttpOnly {
		t.Errorf("refresh cookie = %+v", c)
	}
	if c := cookies["session_id"]; c == nil || c.Value != "sid" || c.MaxAge != 3600 {
		t.Errorf("session cookie = %+v", c)
	}
	if !strings.Contains(w.Body.String(), `"access_token":"access"`) {
		t.Errorf("body = %s", w.Body)
	}
}

func TestLogin(t *testing.T) {
	h, _ := newHandler()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"ok", `{"login":"ann","password":"pw"}`, http.StatusOK},
		{"wrong password", `{"login":"ann","password":"x"}`, http.StatusUnauthorized},
		{"malformed", `{"login":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body)))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRefreshSources(t *testing.T) {
	h, f := newHandler()

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "sid"})
	r.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh"})
	w := httptest.NewRecorder()
	h.Refresh(w, r)
	if w.Code != http.StatusOK || f.refreshed.SessionID != "sid" {
		t.Fatalf("cookie refresh status = %d, data = %+v", w.Code, f.refreshed)
	}

	w = httptest.NewRecorder()
	h.Refresh(w, httptest.NewRequest(http.MethodPost, "/auth/refresh",
		strings.NewReader(`{"session_id":"sid","refresh_token":"forged"}`)))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("forged refresh status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("logout without token status = %d, want 401", w.Code)
	}
}
