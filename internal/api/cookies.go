package api

import (
	"net/http"
	"time"
)

const tokenCookieName = "token"

// setTokenCookie stores the session token as an HttpOnly cookie. Cross-site
// delivery (SameSite=None) requires Secure, so it is only enabled for
// production deployments served over TLS.
func (s *Server) setTokenCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	sameSite := http.SameSiteLaxMode
	if s.serverConfig.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: sameSite,
		Secure:   s.serverConfig.IsProduction(),
		MaxAge:   int(ttl.Seconds()),
	})
}

func getTokenCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// clearTokenCookie overwrites the cookie with an already-expired empty value.
// Tokens delivered via bearer header stay valid until expiry.
func (s *Server) clearTokenCookie(w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	if s.serverConfig.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: sameSite,
		Secure:   s.serverConfig.IsProduction(),
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

func (s *Server) authTTL() time.Duration {
	return s.authConfig.TokenTTL
}
