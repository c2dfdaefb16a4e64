package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sereneHealth/web-api/internal/auth"
	"github.com/sereneHealth/web-api/internal/handler"
)

// Register wires routes and middleware. Paths are kept exactly as the site
// frontend calls them.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	eventHandler *handler.EventHandler,
	newsletterHandler *handler.NewsletterHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		// reflect any origin; the cookie needs credentialed CORS
		AllowOriginFunc: func(origin string) (bool, error) {
			return true, nil
		},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	sessionGate := tokens.Middleware()

	// Auth
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// Blog posts. Only creation sits behind the session gate; the edit and
	// delete routes are open, as the site has always had them.
	e.POST("/create/posts", postHandler.Create, sessionGate)
	e.GET("/blog/post", postHandler.List)
	e.GET("/post/details/:id", postHandler.Get)
	e.PUT("/edit-blog/:id", postHandler.Update)
	e.DELETE("/delete-blog/:id", postHandler.Delete)

	// Events
	e.POST("/create/events", eventHandler.Create, sessionGate)
	e.GET("/event/posts", eventHandler.List)
	e.GET("/event/details/:id", eventHandler.Get)
	e.PUT("/edit-event/:id", eventHandler.Update)
	e.DELETE("/delete-event/:id", eventHandler.Delete)

	// Newsletter and contact mail
	e.POST("/newsletter", newsletterHandler.Subscribe)
	e.POST("/sendmail", newsletterHandler.Broadcast)
	e.POST("/send", contactHandler.Send)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
