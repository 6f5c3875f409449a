package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ebdapp/cadastro/internal/app/models/dto"
	"github.com/ebdapp/cadastro/internal/pkg/auth"
)

// SessionCookieName is the cookie the session token travels in for browser clients
const SessionCookieName = "sessao"

// SessionValidateFunc checks the server-side session row for a jti
type SessionValidateFunc func(c *gin.Context, jti string) error

// AuthMiddleware guards protected routes. A request is either Anonymous or
// Authenticated: authenticated requests carry a valid signed session token
// whose server-side session row is still live.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	validate   SessionValidateFunc
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, validate SessionValidateFunc) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		validate:   validate,
	}
}

// extractToken pulls the session token from the sessao cookie or the
// Authorization header
func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	token, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return strings.Trim(authHeader, "\"'")
	}
	return token
}

// RequireAuth refuses anonymous callers. Browser clients are redirected to
// the login entry point with a notice; API clients get a 401 envelope.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			m.refuse(c, "Você precisa estar logado para acessar esta página.")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			notice := "Você precisa estar logado para acessar esta página."
			if errors.Is(err, auth.ErrExpiredToken) {
				notice = "Sua sessão expirou. Entre novamente."
			}
			m.refuse(c, notice)
			return
		}

		if err := m.validate(c, claims.ID); err != nil {
			m.refuse(c, "Sua sessão foi encerrada. Entre novamente.")
			return
		}

		c.Set("usuarioID", claims.UsuarioID)
		c.Set("login", claims.Login)
		c.Set("jti", claims.ID)

		c.Next()
	}
}

func (m *AuthMiddleware) refuse(c *gin.Context, notice string) {
	if WantsHTML(c) {
		SetNotice(c, notice)
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
