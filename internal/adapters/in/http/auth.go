package http

import (
	"net/http"
	"strings"
	"time"

	"parcelshift/internal/core/domain/model/account"
	"parcelshift/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated caller's identity is stored.
const (
	ContextKeyEmail = "callerEmail"
	ContextKeyRole  = "callerRole"
)

const tokenLifetime = 7 * 24 * time.Hour

// Auth issues and verifies the bearer tokens that carry caller identity.
// Tokens are HS256-signed with the service secret and carry the account's
// email and role.
type Auth struct {
	secret []byte
}

// NewAuth creates an authenticator with the given signing secret.
func NewAuth(secret string) (*Auth, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &Auth{secret: []byte(secret)}, nil
}

// IssueToken creates a signed bearer token for the given account identity.
func (a *Auth) IssueToken(email string, role account.Role) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  string(role),
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Authenticate verifies the bearer token and stores the caller's email and
// role on the request context. Requests without a valid token get 401.
func (a *Auth) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Success: false,
				Message: "authorization required",
			})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Success: false,
				Message: "invalid token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Success: false,
				Message: "invalid token claims",
			})
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		c.Set(ContextKeyEmail, email)
		c.Set(ContextKeyRole, role)

		return next(c)
	}
}

// RequireAdmin rejects authenticated callers whose role is not admin.
// Must run after Authenticate.
func (a *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(ContextKeyRole).(string)
		if role != string(account.RoleAdmin) {
			return c.JSON(http.StatusForbidden, errorResponse{
				Success: false,
				Message: "admin access required",
			})
		}
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// callerEmail returns the authenticated caller's email, empty on public routes.
func callerEmail(c echo.Context) string {
	email, _ := c.Get(ContextKeyEmail).(string)
	return email
}
