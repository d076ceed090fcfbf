package middleware

import (
	"net/http"
	"strings"

	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/internal/domain"
	"hrms-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// bearerToken pulls the token out of the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// AuthSuperAdmin gates the /api/superadmin surface: verifies the token,
// requires the superadmin role claim and resolves the live account.
func AuthSuperAdmin(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c, tokens)
		if !ok {
			return
		}

		if claims.Role != domain.RoleClaimSuperAdmin {
			response.Error(c, http.StatusForbidden, "Forbidden: SuperAdmin role required.", nil)
			c.Abort()
			return
		}

		admin, err := authUC.GetSuperAdmin(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized: User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeySuperAdmin), admin)
		c.Next()
	}
}

// AuthHR gates the /api/hr surface and accepts both HR roles.
func AuthHR(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c, tokens)
		if !ok {
			return
		}

		if !domain.HRRole(claims.Role).Valid() {
			response.Error(c, http.StatusForbidden, "Forbidden: Not an HR", nil)
			c.Abort()
			return
		}

		hr, err := authUC.GetHR(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized: User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyHR), hr)
		c.Next()
	}
}

// ManagerOnly is a secondary check layered on AuthHR for manager-restricted
// operations.
func ManagerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		hr, ok := HRFromContext(c)
		if !ok || hr.Role != domain.RoleManager {
			response.Error(c, http.StatusForbidden, "Forbidden: Manager role required.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthClient gates the /api/client surface.
func AuthClient(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c, tokens)
		if !ok {
			return
		}

		if claims.Role != domain.RoleClaimClient {
			response.Error(c, http.StatusForbidden, "Forbidden: Client role required.", nil)
			c.Abort()
			return
		}

		client, err := authUC.GetClient(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized: User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyClient), client)
		c.Next()
	}
}

func parseClaims(c *gin.Context, tokens *auth.TokenManager) (*auth.Claims, bool) {
	tokenStr, ok := bearerToken(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized: No token provided", nil)
		c.Abort()
		return nil, false
	}

	claims, err := tokens.Parse(tokenStr)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized: Invalid token", nil)
		c.Abort()
		return nil, false
	}
	return claims, true
}

// Context accessors for handlers.

func SuperAdminFromContext(c *gin.Context) (*domain.SuperAdmin, bool) {
	value, exists := c.Get(string(domain.KeySuperAdmin))
	if !exists {
		return nil, false
	}
	admin, ok := value.(*domain.SuperAdmin)
	return admin, ok
}

func HRFromContext(c *gin.Context) (*domain.HR, bool) {
	value, exists := c.Get(string(domain.KeyHR))
	if !exists {
		return nil, false
	}
	hr, ok := value.(*domain.HR)
	return hr, ok
}

func ClientFromContext(c *gin.Context) (*domain.Client, bool) {
	value, exists := c.Get(string(domain.KeyClient))
	if !exists {
		return nil, false
	}
	client, ok := value.(*domain.Client)
	return client, ok
}
