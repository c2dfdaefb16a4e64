package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/sereneHealth/web-api/internal/errors"
)

// Middleware returns the authentication gate for protected routes. A request
// with no session cookie is rejected before any token work is attempted; a
// request with a cookie whose token fails signature or expiry checks is
// rejected as invalid. Valid requests proceed with the decoded claims
// available via CurrentUserID.
func (s *TokenService) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  s.secret,
		TokenLookup: "cookie:" + CookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if _, cookieErr := c.Cookie(CookieName); cookieErr != nil {
				return c.JSON(http.StatusUnauthorized, errors.MessageResponse{Message: "Unauthorized"})
			}
			return c.JSON(http.StatusForbidden, errors.MessageResponse{Message: "Invalid token"})
		},
	})
}

// CurrentUserID returns the user id carried by the validated session token.
func CurrentUserID(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
