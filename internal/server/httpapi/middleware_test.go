package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/connectly/authsvc/internal/server/auth"
)

func TestAuthenticate_MissingCookie(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := decodeBody(t, w.Result()); body["message"] != "Unauthorized" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	req.AddCookie(&http.Cookie{Name: "authToken", Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	ts := newTestServer(t)

	token, err := auth.GenerateToken("u-1", []byte("k"), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	req.AddCookie(&http.Cookie{Name: "authToken", Value: token})
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticate_WrongKey(t *testing.T) {
	ts := newTestServer(t)

	token, err := auth.GenerateToken("u-1", []byte("other-key"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	req.AddCookie(&http.Cookie{Name: "authToken", Value: token})
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSignout_ClearsCookie(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	req.AddCookie(signedCookie(t, "k"))
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["message"] != "Logged out successfully" {
		t.Fatalf("unexpected body %v", body)
	}

	cookie := authCookie(t, resp)
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("cookie must be emptied and expired, got %+v", cookie)
	}
	if cookie.Path != "/" || !cookie.HttpOnly {
		t.Fatalf("clearing cookie must match the set attributes, got %+v", cookie)
	}
}

func TestUserIDFromContext_ReachesHandler(t *testing.T) {
	ts := newTestServer(t)

	var seen string
	h := ts.srv.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(signedCookie(t, "k"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if seen != "u-1" {
		t.Fatalf("expected user id in context, got %q", seen)
	}
}
