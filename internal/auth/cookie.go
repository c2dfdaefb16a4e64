package auth

import "net/http"

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// NewSessionCookie wraps a signed token in the session cookie. No MaxAge is
// set: the cookie is session-scoped and the server-side expiry lives in the
// token itself. SameSite=None because the frontend is served from a different
// origin.
func NewSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// ClearSessionCookie returns a cookie that removes the session token.
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
