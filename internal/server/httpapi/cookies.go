package httpapi

import "net/http"

const authCookieName = "authToken"

// setAuthCookie delivers the session token. Max-Age comes from server config
// and is deliberately independent of the token's own expiry claim. The
// Secure attribute is configurable so plain-HTTP development setups can
// still round-trip the cookie.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearAuthCookie expires the session cookie. Attributes must match the ones
// used when setting it or browsers will keep the original cookie alive.
func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}
